package tracking

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "resume-evaluator-api/internal/domain/tracking"
	"resume-evaluator-api/internal/domain/user"
	"resume-evaluator-api/internal/infrastructure/db/postgres"
)

// Repository backs all three tracking stores with one connection pool.
type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) *Repository {
	return &Repository{db: db}
}

var (
	_ domain.JobApplicationRepository       = (*Repository)(nil)
	_ domain.OptimizedResumeRepository      = (*Repository)(nil)
	_ domain.InterviewPreparationRepository = (*Repository)(nil)
)

func (r *Repository) FetchJobApplications(ctx context.Context, userID user.ID) (domain.JobApplications, error) {
	return fetchAll(ctx, r.db, SelectJobApplications, userID, scanJobApplication, applicationFromDB)
}

func (r *Repository) CreateJobApplication(ctx context.Context, req *domain.JobApplication) (*domain.JobApplication, error) {
	status := req.Status
	if status == "" {
		status = domain.StatusSaved
	}

	a, err := scanJobApplication(r.db.QueryRow(ctx, InsertJobApplication,
		int64(req.UserID), req.ResumeAnalysisID, req.JobTitle, req.Company, req.JobURL,
		string(status), req.Notes, req.AppliedAt,
	))
	if err != nil {
		return nil, err
	}
	return applicationFromDB(a), nil
}

func (r *Repository) UpdateJobApplication(ctx context.Context, req *domain.JobApplication) (*domain.JobApplication, error) {
	a, err := scanJobApplication(r.db.QueryRow(ctx, UpdateJobApplication,
		req.JobTitle, req.Company, req.JobURL, string(req.Status), req.Notes, req.AppliedAt,
		req.ResumeAnalysisID, req.ID, int64(req.UserID),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return applicationFromDB(a), nil
}

func (r *Repository) DeleteJobApplication(ctx context.Context, userID user.ID, id int64) (bool, error) {
	return r.delete(ctx, DeleteJobApplication, userID, id)
}

func (r *Repository) FetchOptimizedResumes(ctx context.Context, userID user.ID) (domain.OptimizedResumes, error) {
	return fetchAll(ctx, r.db, SelectOptimizedResumes, userID, scanOptimizedResume, optimizedFromDB)
}

func (r *Repository) CreateOptimizedResume(ctx context.Context, req *domain.OptimizedResume) (*domain.OptimizedResume, error) {
	o, err := scanOptimizedResume(r.db.QueryRow(ctx, InsertOptimizedResume,
		int64(req.UserID), req.OriginalFileID, req.JobTitle, req.Company, req.JobDescription, req.Content,
	))
	if err != nil {
		return nil, err
	}
	return optimizedFromDB(o), nil
}

func (r *Repository) DeleteOptimizedResume(ctx context.Context, userID user.ID, id int64) (bool, error) {
	return r.delete(ctx, DeleteOptimizedResume, userID, id)
}

func (r *Repository) FetchInterviewPreparations(ctx context.Context, userID user.ID) (domain.InterviewPreparations, error) {
	return fetchAll(ctx, r.db, SelectInterviewPreparations, userID, scanInterviewPreparation, preparationFromDB)
}

func (r *Repository) CreateInterviewPreparation(
	ctx context.Context,
	req *domain.InterviewPreparation,
) (*domain.InterviewPreparation, error) {
	questions, err := encodeQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	p, err := scanInterviewPreparation(r.db.QueryRow(ctx, InsertInterviewPreparation,
		int64(req.UserID), req.JobApplicationID, req.JobTitle, req.Company, questions, req.Notes,
	))
	if err != nil {
		return nil, err
	}
	return preparationFromDB(p), nil
}

func (r *Repository) UpdateInterviewPreparation(
	ctx context.Context,
	req *domain.InterviewPreparation,
) (*domain.InterviewPreparation, error) {
	questions, err := encodeQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	p, err := scanInterviewPreparation(r.db.QueryRow(ctx, UpdateInterviewPreparation,
		req.JobTitle, req.Company, questions, req.Notes, req.JobApplicationID, req.ID, int64(req.UserID),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return preparationFromDB(p), nil
}

func (r *Repository) DeleteInterviewPreparation(ctx context.Context, userID user.ID, id int64) (bool, error) {
	return r.delete(ctx, DeleteInterviewPreparation, userID, id)
}

func (r *Repository) delete(ctx context.Context, query string, userID user.ID, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, query, id, int64(userID))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func fetchAll[M any, D any](
	ctx context.Context,
	db postgres.DB,
	query string,
	userID user.ID,
	scan func(pgx.Row) (*M, error),
	conv func(*M) *D,
) ([]*D, error) {
	rows, err := db.Query(ctx, query, int64(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*D, 0)
	for rows.Next() {
		m, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, conv(m))
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
