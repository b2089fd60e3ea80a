package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"devconnect/internal/config"
	"devconnect/internal/core/user"
	"devconnect/internal/identity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by AuthBinding for downstream handlers.
const (
	ContextSubjectID = "subjectID"
	ContextUserID    = "userID"
	ContextClaims    = "identityClaims"
)

// IdentityResolver maps verified claims to a local directory record,
// provisioning it on first sight.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, claims *identity.Claims) (*user.User, error)
}

// AuthBinding verifies the bearer token and attaches the resolved
// identity to the request context. No wrapped handler runs without a
// valid local user id.
func AuthBinding(verifier identity.Verifier, users IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		// Storage health first: an unreachable database is an
		// infrastructure failure, not a credential one.
		if err := config.PingDB(ctx); err != nil {
			config.Logger.Error("database unavailable", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "database unavailable"})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		if verifier == nil {
			config.Logger.Error("identity verifier not configured")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "identity verifier not configured"})
			return
		}

		claims, err := verifier.Verify(ctx, tokenString)
		if err != nil {
			if errors.Is(err, identity.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if claims.Email == "" {
			config.Logger.Warn("email claim missing", zap.String("subject", claims.Subject))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "email claim missing"})
			return
		}

		u, err := users.ResolveIdentity(ctx, claims)
		if err != nil {
			config.Logger.Error("identity resolution failed",
				zap.String("subject", claims.Subject), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":  "authentication failed",
				"detail": "could not resolve user record",
			})
			return
		}

		c.Set(ContextSubjectID, claims.Subject)
		c.Set(ContextUserID, u.ID)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}
