package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
	"go.uber.org/zap"

	"resume-evaluator-api/config"
	"resume-evaluator-api/internal/domain/payment"
	"resume-evaluator-api/internal/domain/plan"
)

var (
	ErrInvalidSignature = payment.ErrInvalidSignature
	ErrNotConfigured    = errors.New("billing is not configured")
)

// monthly prices in cents, used when no price id is configured
var inlinePrices = map[plan.Plan]int64{
	plan.Starter: 900,
	plan.Premium: 1900,
}

type Stripe struct {
	logger        *zap.Logger
	api           *client.API
	webhookSecret string
	priceIDs      map[plan.Plan]string
	currency      string
}

func NewStripe(logger *zap.Logger, cfg config.Stripe) *Stripe {
	var api *client.API
	if cfg.SecretKey != "" {
		api = &client.API{}
		api.Init(cfg.SecretKey, nil)
	}

	return &Stripe{
		logger:        logger,
		api:           api,
		webhookSecret: cfg.WebhookSecret,
		priceIDs: map[plan.Plan]string{
			plan.Starter: cfg.PriceIDStarter,
			plan.Premium: cfg.PriceIDPremium,
		},
		currency: string(stripe.CurrencyUSD),
	}
}

func (s *Stripe) CreateCustomer(ctx context.Context, email, externalID string) (string, error) {
	if s.api == nil {
		return "", ErrNotConfigured
	}

	params := &stripe.CustomerParams{
		Email:    stripe.String(email),
		Metadata: map[string]string{payment.MetaUserID: externalID},
	}
	params.Context = ctx

	cust, err := s.api.Customers.New(params)
	if err != nil {
		return "", fmt.Errorf("create stripe customer: %w", err)
	}
	return cust.ID, nil
}

func (s *Stripe) CreateCheckoutSession(ctx context.Context, req payment.CheckoutRequest) (*payment.CheckoutSession, error) {
	if s.api == nil {
		return nil, ErrNotConfigured
	}

	item, err := s.lineItem(req.Plan)
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer:   stripe.String(req.CustomerID),
		LineItems:  []*stripe.CheckoutSessionLineItemParams{item},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		Metadata: map[string]string{
			payment.MetaUserID: req.UserExternalID,
			payment.MetaPlan:   string(req.Plan),
		},
	}
	params.Context = ctx

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return &payment.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

func (s *Stripe) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	if s.api == nil {
		return "", ErrNotConfigured
	}

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}
	params.Context = ctx

	sess, err := s.api.BillingPortalSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("create portal session: %w", err)
	}
	return sess.URL, nil
}

func (s *Stripe) lineItem(p plan.Plan) (*stripe.CheckoutSessionLineItemParams, error) {
	if id := strings.TrimSpace(s.priceIDs[p]); id != "" {
		return &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(id),
			Quantity: stripe.Int64(1),
		}, nil
	}

	amount, ok := inlinePrices[p]
	if !ok {
		return nil, fmt.Errorf("plan %q is not purchasable", p)
	}

	return &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency: stripe.String(s.currency),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(fmt.Sprintf("Resume Evaluator %s", strings.ToUpper(string(p[:1]))+string(p[1:]))),
			},
			UnitAmount: stripe.Int64(amount),
			Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
				Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
			},
		},
		Quantity: stripe.Int64(1),
	}, nil
}

// ParseWebhook verifies the signature and reduces the event to the fields the
// plan transitions use. Unhandled event types come back with only ID and Type.
func (s *Stripe) ParseWebhook(body []byte, signature string) (*payment.WebhookEvent, error) {
	if s.webhookSecret == "" {
		return nil, ErrNotConfigured
	}

	event, err := webhook.ConstructEventWithOptions(body, signature, s.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	out := &payment.WebhookEvent{ID: event.ID, Type: string(event.Type)}

	switch out.Type {
	case payment.EventCheckoutCompleted:
		var sess stripe.CheckoutSession
		if err = json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("decode checkout session: %w", err)
		}
		if sess.Customer != nil {
			out.CustomerID = sess.Customer.ID
		}
		if sess.PaymentIntent != nil {
			out.PaymentIntentID = sess.PaymentIntent.ID
		}
		out.AmountTotal = sess.AmountTotal
		out.Currency = string(sess.Currency)
		out.Metadata = sess.Metadata
	case payment.EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err = json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, fmt.Errorf("decode subscription: %w", err)
		}
		if sub.Customer != nil {
			out.CustomerID = sub.Customer.ID
		}
		out.Metadata = sub.Metadata
	default:
		s.logger.Debug("ignoring stripe event", zap.String("type", out.Type), zap.String("id", out.ID))
	}

	return out, nil
}
