package handler

import (
	"net/http"

	"community-server/internal/consts"
	"community-server/internal/modules/common/httpx"
	moduledto "community-server/internal/modules/settings/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.AdminListSettings()
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}

	httpx.JSON(c, http.StatusOK, consts.MsgSettingsListSuccess, settings)
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var reqs []moduledto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		httpx.AbortWithMessage(c, http.StatusBadRequest, consts.MsgInvalidRequest, nil)
		return
	}

	if err := h.settingsService.AdminUpdateSettings(reqs); err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}

	httpx.JSON(c, http.StatusOK, consts.MsgSettingsUpdateSuccess, moduledto.UpdateSettingsResponse{Count: len(reqs)})
}
