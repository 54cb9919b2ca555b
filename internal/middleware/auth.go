// internal/middleware/auth.go
package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/inventra/inventory-backend/internal/services"
	"github.com/inventra/inventory-backend/internal/utils"
)

const principalContextKey = "principal"

// Authenticate resolves the caller from the session cookie, then from an
// "Authorization: Bearer" token. Requests without valid credentials pass
// through anonymously; AuthRequired rejects them.
func Authenticate(authService *services.AuthService, sessions *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			principal *services.Principal
			err       error
		)

		if userID, ok := sessions.UserID(c.Request); ok {
			principal, err = authService.ResolveUser(userID)
		} else if token := bearerToken(c.GetHeader("Authorization")); token != "" {
			principal, err = authService.ResolveToken(token)
		}

		if err != nil && !errors.Is(err, services.ErrUnauthenticated) {
			logrus.WithError(err).Warn("Failed to resolve request principal")
		}
		if err == nil && principal != nil {
			c.Set(principalContextKey, principal)
		}
		c.Next()
	}
}

func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentPrincipal(c) == nil {
			utils.UnauthorizedResponse(c, "")
			return
		}
		c.Next()
	}
}

// CurrentPrincipal returns the authenticated caller, or nil.
func CurrentPrincipal(c *gin.Context) *services.Principal {
	if value, exists := c.Get(principalContextKey); exists {
		if principal, ok := value.(*services.Principal); ok {
			return principal
		}
	}
	return nil
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
