package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"resume-evaluator-api/internal/application/ports"
	domain "resume-evaluator-api/internal/domain/payment"
	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/domain/user"
	"resume-evaluator-api/internal/infrastructure/metrics"
	"resume-evaluator-api/internal/infrastructure/mq"
)

type BillingService struct {
	userRepository    user.Repository
	paymentRepository domain.Repository
	provider          ports.BillingProvider
	frontendURL       string
	mq                ports.EventPublisher
	logger            *zap.Logger
	mCounter          *prometheus.CounterVec
}

func NewBillingService(
	userRepository user.Repository,
	paymentRepository domain.Repository,
	provider ports.BillingProvider,
	frontendURL string,
	mq ports.EventPublisher,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.BillingService {
	return &BillingService{
		userRepository:    userRepository,
		paymentRepository: paymentRepository,
		provider:          provider,
		frontendURL:       frontendURL,
		mq:                mq,
		logger:            logger,
		mCounter:          mCounter,
	}
}

// CreateCheckout starts a subscription checkout for a paid plan, creating the
// provider customer on first use.
func (bs *BillingService) CreateCheckout(ctx context.Context, externalID, planName string) (*domain.CheckoutSession, error) {
	p, ok := plan.Parse(planName)
	if !ok || (p != plan.Starter && p != plan.Premium) {
		return nil, validationError("plan must be %s or %s", plan.Starter, plan.Premium)
	}

	u, err := findUser(ctx, bs.userRepository, externalID)
	if err != nil {
		return nil, err
	}

	customerID, err := bs.customerID(ctx, u)
	if err != nil {
		return nil, err
	}

	sess, err := bs.provider.CreateCheckoutSession(ctx, domain.CheckoutRequest{
		CustomerID:     customerID,
		UserExternalID: u.ExternalID,
		Plan:           p,
		SuccessURL:     bs.frontendURL + "/dashboard?payment=success",
		CancelURL:      bs.frontendURL + "/pricing?payment=cancelled",
	})
	if err != nil {
		return nil, upstreamError("create checkout session", err)
	}

	return sess, nil
}

func (bs *BillingService) Portal(ctx context.Context, externalID string) (string, error) {
	u, err := findUser(ctx, bs.userRepository, externalID)
	if err != nil {
		return "", err
	}
	if u.StripeCustomerID == nil || *u.StripeCustomerID == "" {
		return "", validationError("no billing account, start a checkout first")
	}

	url, err := bs.provider.CreatePortalSession(ctx, *u.StripeCustomerID, bs.frontendURL+"/dashboard")
	if err != nil {
		return "", upstreamError("create portal session", err)
	}
	return url, nil
}

func (bs *BillingService) Payments(ctx context.Context, externalID string) ([]*domain.Payment, error) {
	u, err := findUser(ctx, bs.userRepository, externalID)
	if err != nil {
		return nil, err
	}
	return bs.paymentRepository.FetchPayments(ctx, u.ID)
}

// HandleWebhook verifies and applies a provider notification. Notifications
// that cannot be matched to a user are logged and acknowledged; retrying them
// would not help.
func (bs *BillingService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	ev, err := bs.provider.ParseWebhook(body, signature)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSignature) {
			return validationError("invalid webhook signature")
		}
		return err
	}

	switch ev.Type {
	case domain.EventCheckoutCompleted:
		return bs.checkoutCompleted(ctx, ev)
	case domain.EventSubscriptionDeleted:
		return bs.subscriptionDeleted(ctx, ev)
	default:
		return nil
	}
}

func (bs *BillingService) checkoutCompleted(ctx context.Context, ev *domain.WebhookEvent) error {
	log := bs.logger.With(zap.String("event_id", ev.ID), zap.String("customer_id", ev.CustomerID))

	p, ok := plan.Parse(ev.Metadata[domain.MetaPlan])
	if !ok {
		log.Warn("checkout without a known plan", zap.String("plan", ev.Metadata[domain.MetaPlan]))
		return nil
	}

	u, err := bs.webhookUser(ctx, ev)
	if err != nil {
		return err
	}
	if u == nil {
		log.Warn("checkout for unknown user", zap.String("user_id", ev.Metadata[domain.MetaUserID]))
		return nil
	}

	pay := &domain.Payment{
		UserID:        u.ID,
		StripeEventID: ev.ID,
		Amount:        ev.AmountTotal,
		Currency:      ev.Currency,
		Plan:          p,
		Status:        domain.StatusSucceeded,
	}
	if ev.PaymentIntentID != "" {
		pay.StripePaymentIntentID = &ev.PaymentIntentID
	}

	applied, err := bs.paymentRepository.RecordCheckout(ctx, pay, p)
	if err != nil {
		return fmt.Errorf("record checkout: %w", err)
	}
	if !applied {
		bs.mCounter.WithLabelValues(metrics.WebhookDuplicate).Inc()
		log.Info("duplicate checkout notification ignored")
		return nil
	}

	bs.mCounter.WithLabelValues(metrics.WebhookApplied).Inc()
	if u.Plan != p {
		bs.mCounter.WithLabelValues(metrics.PlanChanged).Inc()
	}
	bs.mq.Publish(mq.NewEvent(mq.EventPlanChanged, u.ExternalID, map[string]string{
		"from":     u.Plan.String(),
		"to":       p.String(),
		"event_id": ev.ID,
	}))
	log.Info("plan upgraded", zap.Int64("user_id", int64(u.ID)), zap.String("plan", p.String()))

	return nil
}

func (bs *BillingService) subscriptionDeleted(ctx context.Context, ev *domain.WebhookEvent) error {
	if ev.CustomerID == "" {
		return nil
	}
	log := bs.logger.With(zap.String("event_id", ev.ID), zap.String("customer_id", ev.CustomerID))

	u, err := bs.userRepository.FetchUserByStripeCustomerID(ctx, ev.CustomerID)
	if err != nil {
		return err
	}
	if u == nil {
		log.Warn("subscription cancelled for unknown customer")
		return nil
	}

	applied, err := bs.paymentRepository.RecordCancellation(ctx, ev.ID, u.ID, plan.Free)
	if err != nil {
		return fmt.Errorf("record cancellation: %w", err)
	}
	if !applied {
		bs.mCounter.WithLabelValues(metrics.WebhookDuplicate).Inc()
		log.Info("duplicate cancellation notification ignored")
		return nil
	}

	bs.mCounter.WithLabelValues(metrics.WebhookApplied).Inc()
	if u.Plan != plan.Free {
		bs.mCounter.WithLabelValues(metrics.PlanChanged).Inc()
		bs.mq.Publish(mq.NewEvent(mq.EventPlanChanged, u.ExternalID, map[string]string{
			"from":     u.Plan.String(),
			"to":       plan.Free.String(),
			"event_id": ev.ID,
		}))
	}
	log.Info("plan downgraded", zap.Int64("user_id", int64(u.ID)))

	return nil
}

// webhookUser prefers the user id stamped on the checkout, then the customer id.
func (bs *BillingService) webhookUser(ctx context.Context, ev *domain.WebhookEvent) (*user.User, error) {
	if id := ev.Metadata[domain.MetaUserID]; id != "" {
		u, err := bs.userRepository.FetchUserByExternalID(ctx, id)
		if err != nil || u != nil {
			return u, err
		}
	}
	if ev.CustomerID == "" {
		return nil, nil
	}
	return bs.userRepository.FetchUserByStripeCustomerID(ctx, ev.CustomerID)
}

func (bs *BillingService) customerID(ctx context.Context, u *user.User) (string, error) {
	if u.StripeCustomerID != nil && *u.StripeCustomerID != "" {
		return *u.StripeCustomerID, nil
	}

	id, err := bs.provider.CreateCustomer(ctx, u.Email, u.ExternalID)
	if err != nil {
		return "", upstreamError("create customer", err)
	}
	if err = bs.userRepository.SetStripeCustomerID(ctx, u.ID, id); err != nil {
		return "", err
	}

	return id, nil
}
