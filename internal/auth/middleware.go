package auth

import (
	"net/http"

	"deployment-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// HeaderName is the request header carrying the credential
const HeaderName = "X-API-Key"

// QueryParam is the fallback query parameter carrying the credential
const QueryParam = "apikey"

// KeyValidator validates a presented API key against persisted state
type KeyValidator interface {
	Validate(key string) bool
}

// APIKeyMiddleware gates inbound requests on a valid API key
type APIKeyMiddleware struct {
	validator KeyValidator
	policy    *GatePolicy
}

// NewAPIKeyMiddleware creates a new API key middleware
func NewAPIKeyMiddleware(validator KeyValidator, policy *GatePolicy) *APIKeyMiddleware {
	return &APIKeyMiddleware{validator: validator, policy: policy}
}

// RequireAPIKey validates the credential on every non-exempt request. The
// rejection body is identical for missing, unknown and inactive keys, and no
// validation result is cached between requests.
func (m *APIKeyMiddleware) RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if m.policy.IsExempt(path) {
			c.Next()
			return
		}

		key := c.GetHeader(HeaderName)
		if key == "" {
			key = c.Query(QueryParam)
		}

		if !m.validator.Validate(key) {
			logger.ForRequest(c.GetString("request_id")).
				WithField("path", path).
				Debug("authentication failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthorized",
				"message": "Invalid or missing API key",
			})
			return
		}

		c.Next()
	}
}
