package middleware

import (
	"errors"
	"net/http"

	"weddingconsole/models"
	"weddingconsole/services/auth"
	"weddingconsole/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by the auth middlewares.
const (
	ContextAccountID = "accountID"
	ContextRole      = "role"
	ContextToken     = "token"
)

// JWTAuthRoleMiddleware validates the bearer token against its Redis session and
// requires one of roles. With no roles any signed-in account passes.
func JWTAuthRoleMiddleware(authSvc auth.AuthService, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()

		tokenString, ok := bearerToken(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header", "")
			return
		}

		session, err := authSvc.Authenticate(c.Request.Context(), tokenString)
		if errors.Is(err, auth.ErrInvalidSession) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired session", "")
			return
		}
		if errors.Is(err, auth.ErrAccountRejected) {
			utils.JSONError(c, http.StatusForbidden, "Account has been rejected", "")
			return
		}
		if err != nil {
			logger.Error("Session lookup failed", zap.Error(err))
			utils.JSONError(c, http.StatusServiceUnavailable, "Session store unavailable", "")
			return
		}

		role := models.Role(session.Role)
		if len(roles) > 0 && !hasRole(roles, role) {
			utils.JSONError(c, http.StatusForbidden, "This account cannot access this resource", "")
			return
		}

		c.Set(ContextAccountID, session.AccountID)
		c.Set(ContextRole, role)
		c.Set(ContextToken, tokenString)
		c.Next()
	}
}

func hasRole(roles []models.Role, role models.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
