package user

import (
	"context"
	"errors"

	"resume-evaluator-api/internal/domain/plan"
)

var (
	ErrAlreadyExists = errors.New("user with this email or external id already exists")
	ErrEmailTaken    = errors.New("email already in use")
)

type Repository interface {
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	FetchUserByExternalID(ctx context.Context, externalID string) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	FetchUserByStripeCustomerID(ctx context.Context, customerID string) (*User, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateProfile(ctx context.Context, id ID, p Profile) (*User, error)
	AttachExternalID(ctx context.Context, id ID, externalID string) (*User, error)
	UpdatePlan(ctx context.Context, id ID, p plan.Plan) (*User, error)
	SetStripeCustomerID(ctx context.Context, id ID, customerID string) error
	SetCurrentResume(ctx context.Context, id ID, fileID *int64) (*User, error)
	DeleteUser(ctx context.Context, id ID) (*User, error)
}
