package payment

import (
	"context"

	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/domain/user"
)

type Repository interface {
	// RecordCheckout stores the payment and moves the user to p in one transaction.
	// It reports false without changing anything when the event was already recorded.
	RecordCheckout(ctx context.Context, req *Payment, p plan.Plan) (bool, error)
	// RecordCancellation marks the cancellation event processed and moves the
	// user to p in one transaction. A redelivered event reports false.
	RecordCancellation(ctx context.Context, eventID string, userID user.ID, p plan.Plan) (bool, error)
	FetchPayments(ctx context.Context, userID user.ID) ([]*Payment, error)
}
