package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/domain/user"
	"resume-evaluator-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByID, int64(id))
}

func (r *Repository) FetchUserByExternalID(ctx context.Context, externalID string) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByExternalID, externalID)
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByEmail, email)
}

func (r *Repository) FetchUserByStripeCustomerID(ctx context.Context, customerID string) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByStripeCustomerID, customerID)
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	p := req.Plan
	if p == "" {
		p = plan.Free
	}

	u, err := scanUser(r.db.QueryRow(
		ctx,
		InsertUser,
		req.ExternalID, req.Email, req.FirstName, req.MiddleName, req.LastName,
		req.PositionLevel, req.JobCategory, string(p),
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdateProfile(ctx context.Context, id user.ID, p user.Profile) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, UpdateUserProfile,
		p.Email, p.FirstName, p.MiddleName, p.LastName, p.PositionLevel, p.JobCategory, int64(id),
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) AttachExternalID(ctx context.Context, id user.ID, externalID string) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, UpdateUserExternalID, externalID, int64(id)))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdatePlan(ctx context.Context, id user.ID, p plan.Plan) (*user.User, error) {
	return r.fetchOne(ctx, UpdateUserPlan, string(p), int64(id))
}

func (r *Repository) SetStripeCustomerID(ctx context.Context, id user.ID, customerID string) error {
	_, err := r.db.Exec(ctx, UpdateUserStripeCustomer, customerID, int64(id))
	return err
}

func (r *Repository) SetCurrentResume(ctx context.Context, id user.ID, fileID *int64) (*user.User, error) {
	return r.fetchOne(ctx, UpdateUserCurrentResume, fileID, int64(id))
}

func (r *Repository) DeleteUser(ctx context.Context, id user.ID) (*user.User, error) {
	return r.fetchOne(ctx, DeleteUserByID, int64(id))
}

func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	if err := row.Scan(
		&u.ID,
		&u.ExternalID,
		&u.Email,
		&u.FirstName,
		&u.MiddleName,
		&u.LastName,
		&u.PositionLevel,
		&u.JobCategory,
		&u.Plan,
		&u.StripeCustomerID,
		&u.CurrentResumeID,

		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return u, nil
}
