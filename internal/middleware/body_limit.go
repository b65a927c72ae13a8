package middleware

import (
	"net/http"
	"strings"

	"community-server/internal/config"
	"community-server/internal/consts"
	"community-server/internal/modules/common/httpx"
	"community-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// isUploadPath 头像和帖子图片上传由 UploadBodyLimitMiddleware 单独限制
func isUploadPath(path string) bool {
	return strings.HasSuffix(path, "/avatar") || strings.HasSuffix(path, "/posts/images")
}

// BodyLimitMiddleware 限制普通请求体大小
func BodyLimitMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isUploadPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		maxSizeMB := appService.GetInt(consts.ConfigMaxRequestBodySize)
		if maxSizeMB <= 0 {
			// 如果未设置或为0，默认 2MB
			maxSizeMB = 2
		}
		maxBytes := int64(maxSizeMB) * 1024 * 1024

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制上传接口的请求体大小，上限取 upload.max_size_mb 并预留 1MB 表单开销
func UploadBodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := config.Get().Upload.MaxSizeMB
		if maxSizeMB <= 0 {
			maxSizeMB = 10
		}
		maxBytes := int64(maxSizeMB+1) * 1024 * 1024

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			httpx.AbortWithMessage(c, http.StatusRequestEntityTooLarge, consts.MsgFileTooLarge, nil)
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
