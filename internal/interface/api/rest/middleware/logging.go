package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const maxLogBodySize = 1 << 12 // 4 KB

// bodies under these paths carry resumes or signed payloads and are never logged
var redactedPaths = []string{"/files", "/billing/webhook", "/analyses", "/generate", "/jobs/match"}

func RequestLogGin(logger *zap.Logger, mCounter *prometheus.CounterVec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions ||
			strings.HasSuffix(c.Request.URL.Path, "/metrics") ||
			strings.HasSuffix(c.Request.URL.Path, "/healthz") {
			c.Next()
			return
		}

		start := time.Now()

		var body string
		switch {
		case c.Request.Body == nil:
		case isRedacted(c.Request.URL.Path):
			body = "<redacted>"
		default:
			var buf bytes.Buffer
			if _, err := io.Copy(&buf, io.LimitReader(c.Request.Body, maxLogBodySize)); err != nil {
				logger.Debug("read request body", zap.Error(err))
			}
			body = buf.String()
			// the rest of the body streams straight to the handler
			c.Request.Body = replayBody{
				Reader: io.MultiReader(bytes.NewReader(buf.Bytes()), c.Request.Body),
				Closer: c.Request.Body,
			}
		}

		c.Next()

		if mCounter != nil {
			mCounter.WithLabelValues("app_requests_total").Inc()
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("url", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("user_id", UserID(c)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		if body != "" {
			fields = append(fields, zap.String("body", body))
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Warn("HTTP request", fields...)
			return
		}
		logger.Info("HTTP request", fields...)
	}
}

func isRedacted(path string) bool {
	for _, p := range redactedPaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

// replayBody puts the logged prefix back in front of the unread body.
type replayBody struct {
	io.Reader
	io.Closer
}
