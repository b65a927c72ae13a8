package router

import (
	"community-server/internal/middleware"
	userhandler "community-server/internal/modules/user/handler"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, gate, writeLimiter gin.HandlerFunc, h *userhandler.Handler) {
	userGroup := api.Group("/users")
	userGroup.Use(gate)

	uploadBodyLimit := middleware.UploadBodyLimitMiddleware()

	userGroup.GET("/:id", h.GetUser)
	userGroup.PUT("/:id", h.UpdateUser)
	userGroup.PUT("/:id/password", h.UpdatePassword)
	userGroup.PATCH("/:id/avatar", uploadBodyLimit, writeLimiter, h.UpdateAvatar)
	userGroup.DELETE("/:id", h.DeleteUser)
}
