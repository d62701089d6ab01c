package usage

import (
	"context"

	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/domain/user"
)

type Repository interface {
	// GetOrCreate is idempotent by (userID, month).
	GetOrCreate(ctx context.Context, userID user.ID, month string) (*Record, error)
	// Increment adds one to the counter for a in a single statement.
	Increment(ctx context.Context, userID user.ID, month string, a plan.Action) (*Record, error)
	FetchHistory(ctx context.Context, userID user.ID, limit int) ([]*Record, error)
}
