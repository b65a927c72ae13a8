package handler

import (
	"net/http"

	"community-server/internal/consts"
	"community-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// GetServerStats 获取社区概览统计信息
func (h *Handler) GetServerStats(c *gin.Context) {
	stats, err := h.systemService.AdminGetServerStats(c.Request.Context())
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.JSON(c, http.StatusOK, consts.MsgStatsSuccess, stats)
}
