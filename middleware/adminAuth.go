package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"weddingconsole/config"
	"weddingconsole/models"
	"weddingconsole/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware admits requests bearing the configured static admin token.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header", "")
			return
		}

		adminToken := config.AppConfig.AdminToken
		if adminToken == "" || subtle.ConstantTimeCompare([]byte(tokenString), []byte(adminToken)) != 1 {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized admin access", "")
			return
		}

		c.Set(ContextRole, models.RoleAdmin)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}
