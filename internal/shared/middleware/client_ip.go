package middleware

import (
	"github.com/gin-gonic/gin"
)

const clientIPKey = "client_ip"

// ClientIP gắn IP của client vào gin context cho rate limiter và logger.
// Forwarded headers chỉ được tin khi request đi qua proxy trong
// engine.SetTrustedProxies, nên client không tự đổi được key của limiter.
//
// Usage:
//
//	router.Use(middleware.ClientIP())
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(clientIPKey, c.ClientIP())
		c.Next()
	}
}

// GetClientIP trả về IP đã được ClientIP middleware gắn vào context,
// fallback sang c.ClientIP() nếu middleware chưa chạy.
func GetClientIP(c *gin.Context) string {
	if ip := c.GetString(clientIPKey); ip != "" {
		return ip
	}
	return c.ClientIP()
}
