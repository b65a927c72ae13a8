package middleware

import (
	"community-server/internal/consts"
	"community-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// StaticCacheMiddleware 为头像、帖子图片等静态资源添加 Cache-Control 头
// 缓存策略由 ConfigStaticCacheControl 配置决定
func StaticCacheMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cc := appService.GetString(consts.ConfigStaticCacheControl); cc != "" {
			c.Header("Cache-Control", cc)
		}
		c.Next()
	}
}
