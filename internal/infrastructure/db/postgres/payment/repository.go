package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"resume-evaluator-api/internal/domain/payment"
	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/domain/user"
	"resume-evaluator-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) payment.Repository {
	return &Repository{db: db}
}

func (r *Repository) RecordCheckout(ctx context.Context, req *payment.Payment, p plan.Plan) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, InsertPayment,
		int64(req.UserID), req.StripeEventID, req.StripePaymentIntentID,
		req.Amount, req.Currency, string(p), req.Status,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// event already recorded
			return false, nil
		}
		return false, fmt.Errorf("insert payment: %w", err)
	}

	tag, err := tx.Exec(ctx, UpdateUserPlan, string(p), int64(req.UserID))
	if err != nil {
		return false, fmt.Errorf("update plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, fmt.Errorf("update plan: user %d not found", req.UserID)
	}

	if err = tx.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

func (r *Repository) RecordCancellation(ctx context.Context, eventID string, userID user.ID, p plan.Plan) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var id string
	err = tx.QueryRow(ctx, InsertWebhookEvent, eventID, payment.EventSubscriptionDeleted, int64(userID)).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("insert webhook event: %w", err)
	}

	tag, err := tx.Exec(ctx, UpdateUserPlan, string(p), int64(userID))
	if err != nil {
		return false, fmt.Errorf("update plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, fmt.Errorf("update plan: user %d not found", userID)
	}

	if err = tx.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

func (r *Repository) FetchPayments(ctx context.Context, userID user.ID) ([]*payment.Payment, error) {
	rows, err := r.db.Query(ctx, SelectPayments, int64(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*payment.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, fromDBModel(p))
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
