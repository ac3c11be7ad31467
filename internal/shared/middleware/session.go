package middleware

import (
	"github.com/gin-gonic/gin"

	"sofa-backend/internal/shared/session"
)

// Session decode session cookie và gắn Identity vào context.
// Không chặn request: route nào cần login tự kiểm tra session.FromContext.
func Session(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.Set(c, m.Load(c))
		c.Next()
	}
}
