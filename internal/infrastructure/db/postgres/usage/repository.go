package usage

import (
	"context"
	"fmt"

	"resume-evaluator-api/internal/domain/plan"
	domain "resume-evaluator-api/internal/domain/usage"
	"resume-evaluator-api/internal/domain/user"
	"resume-evaluator-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) GetOrCreate(ctx context.Context, userID user.ID, month string) (*domain.Record, error) {
	rec, err := scanRecord(r.db.QueryRow(ctx, UpsertUsageRecord, int64(userID), month))
	if err != nil {
		return nil, err
	}

	return fromDBModel(rec), nil
}

func (r *Repository) Increment(ctx context.Context, userID user.ID, month string, a plan.Action) (*domain.Record, error) {
	scans, letters, questions := domain.Deltas(a)
	if scans+letters+questions == 0 {
		return nil, fmt.Errorf("action %q is not metered", a)
	}

	rec, err := scanRecord(r.db.QueryRow(ctx, IncrementUsageRecord,
		int64(userID), month, scans, letters, questions,
	))
	if err != nil {
		return nil, err
	}

	return fromDBModel(rec), nil
}

func (r *Repository) FetchHistory(ctx context.Context, userID user.ID, limit int) ([]*domain.Record, error) {
	rows, err := r.db.Query(ctx, SelectUsageHistory, int64(userID), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, fromDBModel(rec))
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
