package httpx

import (
	"community-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

func SetIdentity(c *gin.Context, identity *service.Identity) {
	c.Set(identityKey, identity)
}

// CurrentIdentity 返回鉴权中间件注入的当前用户，未登录时返回 nil。
func CurrentIdentity(c *gin.Context) *service.Identity {
	val, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := val.(*service.Identity)
	return identity
}
