package payment

import (
	"errors"
	"time"

	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/domain/user"
)

const (
	EventCheckoutCompleted   = "checkout.session.completed"
	EventSubscriptionDeleted = "customer.subscription.deleted"

	StatusSucceeded = "succeeded"

	// checkout metadata keys, echoed back by the provider on completion
	MetaUserID = "user_id"
	MetaPlan   = "plan"
)

var ErrInvalidSignature = errors.New("webhook signature verification failed")

type (
	Payment struct {
		ID                    int64
		UserID                user.ID
		StripeEventID         string
		StripePaymentIntentID *string
		Amount                int64
		Currency              string
		Plan                  plan.Plan
		Status                string

		CreatedAt time.Time
	}

	CheckoutRequest struct {
		CustomerID     string
		UserExternalID string
		Plan           plan.Plan
		SuccessURL     string
		CancelURL      string
	}

	CheckoutSession struct {
		ID  string
		URL string
	}

	// WebhookEvent is a verified billing notification reduced to the fields
	// the plan state machine needs.
	WebhookEvent struct {
		ID              string
		Type            string
		CustomerID      string
		PaymentIntentID string
		AmountTotal     int64
		Currency        string
		Metadata        map[string]string
	}
)
