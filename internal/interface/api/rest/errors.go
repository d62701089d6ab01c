package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume-evaluator-api/internal/application/services"
)

// respondError maps service errors onto statuses. Expected conditions carry
// their message; anything else is logged and answered with fallback.
func respondError(c *gin.Context, logger *zap.Logger, op, fallback string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrQuotaExceeded), errors.Is(err, services.ErrFeatureLocked):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrUpstream):
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		logger.Error(op+" error", zap.Error(err))
		c.JSON(status, gin.H{"error": fallback})
		return
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, details any) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid request body",
		"details": details,
	})
}
