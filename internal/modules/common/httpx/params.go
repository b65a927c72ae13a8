package httpx

import (
	"strconv"

	"community-server/internal/consts"
	"community-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// PathID 解析路径中的正整数 ID。
func PathID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, service.NewValidationError(consts.MsgInvalidRequest)
	}
	return uint(id), nil
}
