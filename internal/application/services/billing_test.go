package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"resume-evaluator-api/internal/application/ports"
	"resume-evaluator-api/internal/domain/payment"
	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/domain/user"
	"resume-evaluator-api/internal/infrastructure/mq"
)

func newBillingService(userRepo *FakeUserRepository, payments *FakePaymentRepository, provider *FakeBilling, pub *FakePublisher) ports.BillingService {
	return NewBillingService(userRepo, payments, provider, "https://app.example.com", pub, zap.NewNop(), newCounter())
}

func TestBillingService_CreateCheckoutCreatesCustomerOnce(t *testing.T) {
	u := &user.User{ID: 1, ExternalID: "ext", Email: "a@b.c", Plan: plan.Free}
	var stored string
	var req payment.CheckoutRequest

	userRepo := &FakeUserRepository{
		FetchUserByExternalIDFunc: usersByExternalID(u),
		SetStripeCustomerIDFunc: func(_ context.Context, id user.ID, customerID string) error {
			stored = customerID
			u.StripeCustomerID = &customerID
			return nil
		},
	}
	customers := 0
	provider := &FakeBilling{
		CreateCustomerFunc: func(context.Context, string, string) (string, error) {
			customers++
			return "cus_1", nil
		},
		CreateCheckoutSessionFunc: func(_ context.Context, r payment.CheckoutRequest) (*payment.CheckoutSession, error) {
			req = r
			return &payment.CheckoutSession{ID: "cs_1", URL: "https://checkout"}, nil
		},
	}
	bs := newBillingService(userRepo, &FakePaymentRepository{}, provider, &FakePublisher{})

	for i := 0; i < 2; i++ {
		sess, err := bs.CreateCheckout(context.Background(), "ext", "premium")
		require.NoError(t, err)
		assert.Equal(t, "cs_1", sess.ID)
	}

	assert.Equal(t, 1, customers)
	assert.Equal(t, "cus_1", stored)
	assert.Equal(t, "cus_1", req.CustomerID)
	assert.Equal(t, plan.Premium, req.Plan)
	assert.Equal(t, "ext", req.UserExternalID)
	assert.Equal(t, "https://app.example.com/dashboard?payment=success", req.SuccessURL)
}

func TestBillingService_CreateCheckoutRejectsUnpaidPlans(t *testing.T) {
	bs := newBillingService(&FakeUserRepository{}, &FakePaymentRepository{}, &FakeBilling{}, &FakePublisher{})

	for _, p := range []string{"free", "elite", "gold", ""} {
		_, err := bs.CreateCheckout(context.Background(), "ext", p)
		assert.ErrorIs(t, err, ErrValidation, p)
	}
}

func TestBillingService_WebhookAppliesOncePerEvent(t *testing.T) {
	u := &user.User{ID: 7, ExternalID: "ext", Plan: plan.Free}
	seen := map[string]bool{}
	var recorded []*payment.Payment

	payments := &FakePaymentRepository{
		RecordCheckoutFunc: func(_ context.Context, req *payment.Payment, p plan.Plan) (bool, error) {
			if seen[req.StripeEventID] {
				return false, nil
			}
			seen[req.StripeEventID] = true
			recorded = append(recorded, req)
			return true, nil
		},
	}
	provider := &FakeBilling{
		ParseWebhookFunc: func([]byte, string) (*payment.WebhookEvent, error) {
			return &payment.WebhookEvent{
				ID:              "evt_1",
				Type:            payment.EventCheckoutCompleted,
				CustomerID:      "cus_7",
				PaymentIntentID: "pi_1",
				AmountTotal:     1900,
				Currency:        "usd",
				Metadata:        map[string]string{payment.MetaUserID: "ext", payment.MetaPlan: "premium"},
			}, nil
		},
	}
	pub := &FakePublisher{}
	bs := newBillingService(&FakeUserRepository{FetchUserByExternalIDFunc: usersByExternalID(u)}, payments, provider, pub)

	require.NoError(t, bs.HandleWebhook(context.Background(), []byte("{}"), "sig"))
	require.NoError(t, bs.HandleWebhook(context.Background(), []byte("{}"), "sig"))

	require.Len(t, recorded, 1)
	assert.Equal(t, user.ID(7), recorded[0].UserID)
	assert.Equal(t, plan.Premium, recorded[0].Plan)
	assert.Equal(t, "pi_1", *recorded[0].StripePaymentIntentID)
	assert.Equal(t, []string{mq.EventPlanChanged}, pub.types())
}

func TestBillingService_WebhookFallsBackToCustomer(t *testing.T) {
	u := &user.User{ID: 7, ExternalID: "ext", Plan: plan.Free}
	var recordedFor user.ID

	userRepo := &FakeUserRepository{
		FetchUserByExternalIDFunc: usersByExternalID(),
		FetchUserByStripeCustomerIDFunc: func(_ context.Context, customerID string) (*user.User, error) {
			if customerID == "cus_7" {
				return u, nil
			}
			return nil, nil
		},
	}
	payments := &FakePaymentRepository{RecordCheckoutFunc: func(_ context.Context, req *payment.Payment, _ plan.Plan) (bool, error) {
		recordedFor = req.UserID
		return true, nil
	}}
	provider := &FakeBilling{ParseWebhookFunc: func([]byte, string) (*payment.WebhookEvent, error) {
		return &payment.WebhookEvent{
			ID:         "evt_2",
			Type:       payment.EventCheckoutCompleted,
			CustomerID: "cus_7",
			Metadata:   map[string]string{payment.MetaUserID: "reissued", payment.MetaPlan: "starter"},
		}, nil
	}}

	require.NoError(t, newBillingService(userRepo, payments, provider, &FakePublisher{}).
		HandleWebhook(context.Background(), nil, "sig"))
	assert.Equal(t, user.ID(7), recordedFor)
}

func TestBillingService_WebhookBadSignature(t *testing.T) {
	provider := &FakeBilling{ParseWebhookFunc: func([]byte, string) (*payment.WebhookEvent, error) {
		return nil, fmt.Errorf("%w: bad v1", payment.ErrInvalidSignature)
	}}

	err := newBillingService(&FakeUserRepository{}, &FakePaymentRepository{}, provider, &FakePublisher{}).
		HandleWebhook(context.Background(), []byte("{}"), "t=1,v1=00")
	assert.ErrorIs(t, err, ErrValidation)
}

// cancellations remembers processed event ids the way the webhook_events
// table does and applies the plan change to u.
func cancellations(u *user.User) *FakePaymentRepository {
	seen := map[string]bool{}
	return &FakePaymentRepository{
		RecordCancellationFunc: func(_ context.Context, eventID string, userID user.ID, p plan.Plan) (bool, error) {
			if seen[eventID] {
				return false, nil
			}
			seen[eventID] = true
			if userID == u.ID {
				u.Plan = p
			}
			return true, nil
		},
	}
}

func cancelEvent(eventID, customerID string) *FakeBilling {
	return &FakeBilling{ParseWebhookFunc: func([]byte, string) (*payment.WebhookEvent, error) {
		return &payment.WebhookEvent{ID: eventID, Type: payment.EventSubscriptionDeleted, CustomerID: customerID}, nil
	}}
}

func TestBillingService_SubscriptionDeletedDowngrades(t *testing.T) {
	u := &user.User{ID: 3, ExternalID: "ext", Plan: plan.Premium}
	userRepo := &FakeUserRepository{
		FetchUserByStripeCustomerIDFunc: func(_ context.Context, customerID string) (*user.User, error) {
			if customerID == "cus_3" {
				out := *u
				return &out, nil
			}
			return nil, nil
		},
	}
	payments := cancellations(u)
	pub := &FakePublisher{}

	require.NoError(t, newBillingService(userRepo, payments, cancelEvent("evt_3", "cus_3"), pub).
		HandleWebhook(context.Background(), nil, "sig"))
	assert.Equal(t, plan.Free, u.Plan)
	require.Len(t, pub.Events, 1)
	assert.Equal(t, mq.EventPlanChanged, pub.Events[0].Type)
	assert.Equal(t, "free", pub.Events[0].Payload.(map[string]string)["to"])

	require.NoError(t, newBillingService(userRepo, payments, cancelEvent("evt_4", "cus_unknown"), pub).
		HandleWebhook(context.Background(), nil, "sig"))
	assert.Len(t, pub.Events, 1)
}

func TestBillingService_RedeliveredCancellationKeepsNewPlan(t *testing.T) {
	u := &user.User{ID: 3, ExternalID: "ext", Plan: plan.Premium}
	userRepo := &FakeUserRepository{
		FetchUserByStripeCustomerIDFunc: func(context.Context, string) (*user.User, error) {
			out := *u
			return &out, nil
		},
	}
	payments := cancellations(u)
	pub := &FakePublisher{}
	bs := newBillingService(userRepo, payments, cancelEvent("evt_cancel", "cus_3"), pub)

	require.NoError(t, bs.HandleWebhook(context.Background(), nil, "sig"))
	assert.Equal(t, plan.Free, u.Plan)

	// user subscribes again before the provider retries the same cancellation
	u.Plan = plan.Premium

	require.NoError(t, bs.HandleWebhook(context.Background(), nil, "sig"))
	assert.Equal(t, plan.Premium, u.Plan)
	assert.Len(t, pub.Events, 1)
}

func TestBillingService_CancellationStoreFailureIsRetried(t *testing.T) {
	u := &user.User{ID: 3, ExternalID: "ext", Plan: plan.Starter}
	userRepo := &FakeUserRepository{
		FetchUserByStripeCustomerIDFunc: func(context.Context, string) (*user.User, error) { return u, nil },
	}
	payments := &FakePaymentRepository{
		RecordCancellationFunc: func(context.Context, string, user.ID, plan.Plan) (bool, error) {
			return false, fmt.Errorf("connection reset")
		},
	}

	err := newBillingService(userRepo, payments, cancelEvent("evt_5", "cus_3"), &FakePublisher{}).
		HandleWebhook(context.Background(), nil, "sig")
	assert.ErrorContains(t, err, "record cancellation")
}

func TestBillingService_PortalNeedsCustomer(t *testing.T) {
	u := &user.User{ID: 1, ExternalID: "ext"}
	bs := newBillingService(&FakeUserRepository{FetchUserByExternalIDFunc: usersByExternalID(u)},
		&FakePaymentRepository{}, &FakeBilling{}, &FakePublisher{})

	_, err := bs.Portal(context.Background(), "ext")
	assert.ErrorIs(t, err, ErrValidation)
}
