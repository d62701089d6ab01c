package rest

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume-evaluator-api/internal/application/ports"
	"resume-evaluator-api/internal/interface/api/rest/dto/billing"
	"resume-evaluator-api/internal/interface/api/rest/middleware"
)

const (
	stripeSignatureHeader = "Stripe-Signature"
	maxWebhookBytes       = 64 << 10
)

type BillingController struct {
	billingService ports.BillingService
	logger         *zap.Logger
}

func NewBillingController(
	r *gin.Engine,
	billingService ports.BillingService,
	logger *zap.Logger,
	tokens ports.TokenValidator,
) *BillingController {
	bc := &BillingController{
		billingService: billingService,
		logger:         logger,
	}

	auth := middleware.AuthMiddleware(tokens)
	r.POST(RouteBillingCheckout, auth, bc.CheckoutHandler)
	r.POST(RouteBillingPortal, auth, bc.PortalHandler)
	r.GET(RouteBillingPayments, auth, bc.PaymentsHandler)

	// signed by the provider, not by a user token
	r.POST(RouteBillingWebhook, bc.WebhookHandler)

	return bc
}

func (bc *BillingController) CheckoutHandler(c *gin.Context) {
	var req billing.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	s, err := bc.billingService.CreateCheckout(c.Request.Context(), middleware.UserID(c), req.Plan)
	if err != nil {
		respondError(c, bc.logger, "CreateCheckout()", "failed to create checkout session", err)
		return
	}

	c.JSON(http.StatusOK, billing.ToResponseCheckout(*s))
}

func (bc *BillingController) PortalHandler(c *gin.Context) {
	url, err := bc.billingService.Portal(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, bc.logger, "Portal()", "failed to create portal session", err)
		return
	}

	c.JSON(http.StatusOK, billing.Portal{URL: url})
}

func (bc *BillingController) PaymentsHandler(c *gin.Context) {
	ps, err := bc.billingService.Payments(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, bc.logger, "Payments()", "failed to get payments", err)
		return
	}

	c.JSON(http.StatusOK, billing.ToResponsePayments(ps))
}

// WebhookHandler verifies the raw body against the signature header, so the
// body must not pass through a JSON binder first.
func (bc *BillingController) WebhookHandler(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	if err = bc.billingService.HandleWebhook(c.Request.Context(), body, c.GetHeader(stripeSignatureHeader)); err != nil {
		respondError(c, bc.logger, "HandleWebhook()", "failed to process webhook", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
