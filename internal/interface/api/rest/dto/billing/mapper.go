package billing

import (
	"resume-evaluator-api/internal/domain/payment"
)

func ToResponseCheckout(s payment.CheckoutSession) Checkout {
	return Checkout{SessionID: s.ID, URL: s.URL}
}

func ToResponsePayments(ps []*payment.Payment) ResponseData {
	out := ResponseData{Data: make([]Payment, len(ps))}
	for idx, p := range ps {
		out.Data[idx] = Payment{
			ID:        p.ID,
			Amount:    p.Amount,
			Currency:  p.Currency,
			Plan:      p.Plan.String(),
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
		}
	}
	return out
}
