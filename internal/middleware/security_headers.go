package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders 添加安全相关的 HTTP 响应头
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "same-origin")
		// 纯 JSON API，只允许同源图片
		c.Header("Content-Security-Policy", "default-src 'none'; img-src 'self' data:; frame-ancestors 'none'")
		c.Next()
	}
}
