package payment

import (
	"time"

	"github.com/jackc/pgx/v5"

	"resume-evaluator-api/internal/domain/payment"
	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/domain/user"
)

type Payment struct {
	ID                    int64
	UserID                int64
	StripeEventID         string
	StripePaymentIntentID *string
	Amount                int64
	Currency              string
	Plan                  string
	Status                string

	CreatedAt time.Time
}

func scanPayment(row pgx.Row) (*Payment, error) {
	p := new(Payment)
	if err := row.Scan(
		&p.ID, &p.UserID, &p.StripeEventID, &p.StripePaymentIntentID,
		&p.Amount, &p.Currency, &p.Plan, &p.Status,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return p, nil
}

func fromDBModel(m *Payment) *payment.Payment {
	p, ok := plan.Parse(m.Plan)
	if !ok {
		p = plan.Free
	}

	return &payment.Payment{
		ID:                    m.ID,
		UserID:                user.ID(m.UserID),
		StripeEventID:         m.StripeEventID,
		StripePaymentIntentID: m.StripePaymentIntentID,
		Amount:                m.Amount,
		Currency:              m.Currency,
		Plan:                  p,
		Status:                m.Status,
		CreatedAt:             m.CreatedAt,
	}
}
