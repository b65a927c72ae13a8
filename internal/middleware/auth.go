package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"community-server/internal/config"
	"community-server/internal/consts"
	"community-server/internal/modules/common/httpx"
	platformservice "community-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// Authenticator 把会话 Cookie 解析为身份，由 auth 模块实现。
type Authenticator interface {
	Authenticate(ctx context.Context, cookieValue string) (*platformservice.Identity, error)
}

// SessionAuth 要求请求携带有效会话，失败时按错误类型返回 401/403。
func SessionAuth(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := authenticator.Authenticate(c.Request.Context(), httpx.SessionCookie(c))
		if err != nil {
			httpx.WriteServiceError(c, err, consts.MsgInvalidSession)
			c.Abort()
			return
		}
		httpx.SetIdentity(c, identity)
		c.Next()
	}
}

// OptionalSessionAuth 会话有效时注入身份，否则按匿名请求继续处理。
func OptionalSessionAuth(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie := httpx.SessionCookie(c); cookie != "" {
			if identity, err := authenticator.Authenticate(c.Request.Context(), cookie); err == nil {
				httpx.SetIdentity(c, identity)
			}
		}
		c.Next()
	}
}

// AdminToken 校验 X-Admin-Token 请求头。admin.token 未配置时管理接口整体关闭。
func AdminToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := config.Get().Admin.Token
		if expected == "" {
			httpx.AbortWithMessage(c, http.StatusNotFound, consts.MsgAdminTokenInvalid, nil)
			return
		}
		provided := c.GetHeader("X-Admin-Token")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			httpx.AbortWithMessage(c, http.StatusForbidden, consts.MsgAdminTokenInvalid, nil)
			return
		}
		c.Next()
	}
}
