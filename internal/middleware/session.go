package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tbcare/screening-api/internal/service"
	appErrors "github.com/tbcare/screening-api/pkg/errors"
	"github.com/tbcare/screening-api/pkg/response"
)

// ContextSessionKey is the gin context key storing validated session claims.
const ContextSessionKey = "session"

// Session requires a valid bearer session token when sessions are enabled.
// With sessions disabled every request passes through untouched.
func Session(sessions *service.SessionService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.Enabled() {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, logger, appErrors.Clone(appErrors.ErrUnauthenticated, "missing session token"))
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, logger, appErrors.Clone(appErrors.ErrUnauthenticated, "invalid authorization header"))
			return
		}

		claims, err := sessions.Validate(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Error(c, logger, err)
			return
		}

		c.Set(ContextSessionKey, claims)
		c.Next()
	}
}

// SameUser rejects requests whose session belongs to a different user than the
// one named by the path parameter. Requests without a session are not checked.
func SameUser(param string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := SessionClaims(c)
		if !ok {
			c.Next()
			return
		}
		target, err := strconv.ParseInt(c.Param(param), 10, 64)
		if err != nil || target != claims.UserID {
			response.Error(c, logger, appErrors.Clone(appErrors.ErrForbidden, "session does not belong to this user"))
			return
		}
		c.Next()
	}
}

// SessionClaims returns the claims stored by Session, if any.
func SessionClaims(c *gin.Context) (*service.SessionClaims, bool) {
	value, exists := c.Get(ContextSessionKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*service.SessionClaims)
	return claims, ok
}
