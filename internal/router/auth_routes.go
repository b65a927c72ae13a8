package router

import (
	authhandler "community-server/internal/modules/auth/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter, gate gin.HandlerFunc, h *authhandler.Handler) {
	authGroup := api.Group("/auth")
	authGroup.POST("/signup", authLimiter, h.Signup)
	authGroup.POST("/login", authLimiter, h.Login)
	// 登出时 Cookie 可选，无效会话也返回成功
	authGroup.POST("/logout", h.Logout)
	authGroup.GET("/me", gate, h.Me)
}
