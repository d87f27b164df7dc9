package middleware

import (
	"bytes"
	"io"
	"strings"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the gin context key holding the per-request id.
const RequestIDKey = "requestID"

// RequestLogger tags each request with an id and logs method, path,
// status and latency.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(RequestIDKey, reqID)
		c.Writer.Header().Set("X-Request-ID", reqID)

		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"request_id": reqID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"ip":         c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry.Error(c.Errors.String())
			return
		}
		entry.Info("request")
	}
}

// maxAuditBody caps how much of a request body lands in the audit trail.
const maxAuditBody = 2000

// Audit records mutating requests of authenticated users.
func Audit(logs *store.Logs, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bodyBytes []byte
		if mutating(c.Request.Method) && c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		c.Next()

		if !mutating(c.Request.Method) {
			return
		}

		var userID uint
		if v, ok := c.Get(UserKey); ok {
			if user, ok := v.(*models.User); ok && user != nil {
				userID = user.ID
			}
		}
		if userID == 0 {
			return
		}

		action := c.Request.Method + " " + c.Request.URL.Path
		// never store credential payloads
		if len(bodyBytes) > 0 && len(bodyBytes) < maxAuditBody &&
			!strings.Contains(c.Request.URL.Path, "password") {
			action += " " + string(bodyBytes)
		}

		err := logs.Create(c.Request.Context(), &models.AuditLog{
			UserID:    userID,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Action:    action,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		})
		if err != nil {
			log.WithError(err).Warn("audit log write failed")
		}
	}
}

func mutating(method string) bool {
	switch method {
	case "POST", "PUT", "PATCH", "DELETE":
		return true
	}
	return false
}
