package middleware

import (
	"github.com/gin-gonic/gin"

	"inventory-management-api/pkg/response"
)

// Recovery turns panics into the 500 envelope.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "panic recovered: %v", recovered)
		response.InternalError(c, nil)
		c.Abort()
	})
}
