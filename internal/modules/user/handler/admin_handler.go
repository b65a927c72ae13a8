package handler

import (
	"net/http"

	"community-server/internal/consts"
	"community-server/internal/modules/common/httpx"
	moduledto "community-server/internal/modules/user/dto"

	"github.com/gin-gonic/gin"
)

// AdminUpdateStatus 管理端修改账号状态（正常 / 临时封禁 / 永久封禁）
func (h *Handler) AdminUpdateStatus(c *gin.Context) {
	id, err := httpx.PathID(c, "id")
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInvalidRequest)
		return
	}

	var req moduledto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.AbortWithMessage(c, http.StatusBadRequest, consts.MsgInvalidRequest, nil)
		return
	}

	if err := h.userService.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), id)
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.JSON(c, http.StatusOK, consts.MsgUserStatusSuccess, profile)
}
