package router

import (
	"community-server/internal/middleware"
	settingshandler "community-server/internal/modules/settings/handler"
	systemhandler "community-server/internal/modules/system/handler"
	userhandler "community-server/internal/modules/user/handler"

	"github.com/gin-gonic/gin"
)

// 管理接口只认 X-Admin-Token，不走会话鉴权
func registerAdminRoutes(api *gin.RouterGroup, uh *userhandler.Handler, sh *settingshandler.Handler, yh *systemhandler.Handler) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AdminToken())

	adminGroup.PATCH("/users/:id/status", uh.AdminUpdateStatus)

	adminGroup.GET("/stats", yh.GetServerStats)

	adminGroup.GET("/settings", sh.GetSettings)
	adminGroup.PATCH("/settings", sh.UpdateSettings)
}
