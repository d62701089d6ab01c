package ports

import (
	"context"

	"resume-evaluator-api/internal/domain/payment"
)

type BillingProvider interface {
	CreateCustomer(ctx context.Context, email, externalID string) (string, error)
	CreateCheckoutSession(ctx context.Context, req payment.CheckoutRequest) (*payment.CheckoutSession, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)
	ParseWebhook(body []byte, signature string) (*payment.WebhookEvent, error)
}
