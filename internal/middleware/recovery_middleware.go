package middleware

import (
	"net/http"

	"pulse-chat/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware turns any panic escaping a handler into a plain-text
// 500 without leaking the panic value to the client.
func RecoveryMiddleware(l *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		log := l
		if log == nil {
			log = logger.GetGlobalLogger()
		}
		if log != nil {
			log.Errorf("panic recovered: %v", err)
		}
		c.String(http.StatusInternalServerError, "Internal server error")
	})
}
