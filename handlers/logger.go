package handlers

import (
	"weddingconsole/middleware"
	"weddingconsole/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request logger set by middleware, or the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// accountID returns the signed-in account set by the session middleware.
func accountID(c *gin.Context) string {
	return c.GetString(middleware.ContextAccountID)
}
