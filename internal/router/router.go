package router

import (
	"community-server/internal/consts"
	"community-server/internal/metrics"
	"community-server/internal/middleware"
	"community-server/internal/modules"
	"community-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

type Router struct {
	modules *modules.AppModules
	service *service.AppService
}

func NewRouter(appModules *modules.AppModules, appService *service.AppService) *Router {
	return &Router{
		modules: appModules,
		service: appService,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	r.Use(middleware.RequestLogger())
	r.Use(metrics.GinMiddleware())
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api/v1")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware(rt.service))

	// 同一类接口复用同一个限流实例，保持行为一致
	authLimiter := middleware.RateLimitMiddleware(rt.service, consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitAuthBurst)
	writeLimiter := middleware.RateLimitMiddleware(rt.service, consts.ConfigRateLimitWriteRPS, consts.ConfigRateLimitWriteBurst)

	gate := middleware.SessionAuth(rt.modules.Auth.Service)
	optionalGate := middleware.OptionalSessionAuth(rt.modules.Auth.Service)

	registerPublicRoutes(api)
	registerAuthRoutes(api, authLimiter, gate, rt.modules.Auth.Handler)
	registerUserRoutes(api, gate, writeLimiter, rt.modules.User.Handler)
	registerPostRoutes(api, gate, optionalGate, writeLimiter, rt.modules.Post.Handler, rt.modules.Comment.Handler)
	registerAdminRoutes(api, rt.modules.User.Handler, rt.modules.Settings.Handler, rt.modules.System.Handler)
}
