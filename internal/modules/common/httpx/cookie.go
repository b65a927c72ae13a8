package httpx

import (
	"net/http"
	"time"

	"community-server/internal/config"

	"github.com/gin-gonic/gin"
)

// SetSessionCookie 写入 HttpOnly 会话 Cookie，过期时间与会话一致。
func SetSessionCookie(c *gin.Context, value string, expiresAt time.Time) {
	cfg := config.Get().Session
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = 1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName(), value, maxAge, "/", "", cfg.Secure, true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName(), "", -1, "/", "", config.Get().Session.Secure, true)
}

// SessionCookie 读取会话 Cookie 原始值，不存在时返回空串。
func SessionCookie(c *gin.Context) string {
	value, err := c.Cookie(sessionCookieName())
	if err != nil {
		return ""
	}
	return value
}

func sessionCookieName() string {
	if name := config.Get().Session.CookieName; name != "" {
		return name
	}
	return "session_id"
}
