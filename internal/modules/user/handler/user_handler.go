package handler

import (
	"net/http"

	"community-server/internal/consts"
	"community-server/internal/modules/common/httpx"
	moduledto "community-server/internal/modules/user/dto"
	platformservice "community-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// selfID 解析路径中的账号 ID，并要求与当前登录账号一致。
func selfID(c *gin.Context) (uint, bool) {
	id, err := httpx.PathID(c, "id")
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInvalidRequest)
		return 0, false
	}
	if err := platformservice.EnsureOwner(id, httpx.CurrentIdentity(c)); err != nil {
		httpx.WriteServiceError(c, err, consts.MsgPermissionDenied)
		return 0, false
	}
	return id, true
}

// GetUser 获取本人账号信息
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := selfID(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), id)
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.JSON(c, http.StatusOK, consts.MsgUserInfoSuccess, profile)
}

// UpdateUser 修改昵称或头像地址
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := selfID(c)
	if !ok {
		return
	}

	var req moduledto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.AbortWithMessage(c, http.StatusBadRequest, consts.MsgInvalidRequest, nil)
		return
	}

	profile, err := h.userService.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.JSON(c, http.StatusOK, consts.MsgUserUpdateSuccess, profile)
}

// UpdatePassword 校验当前密码后修改密码
func (h *Handler) UpdatePassword(c *gin.Context) {
	id, ok := selfID(c)
	if !ok {
		return
	}

	var req moduledto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.AbortWithMessage(c, http.StatusBadRequest, consts.MsgInvalidRequest, nil)
		return
	}

	if err := h.userService.UpdatePasswordByOldPassword(c.Request.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.JSON(c, http.StatusOK, consts.MsgPasswordChangeSuccess, nil)
}

func (h *Handler) UpdateAvatar(c *gin.Context) {
	id, ok := selfID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		httpx.AbortWithMessage(c, http.StatusBadRequest, consts.MsgFileRequired, nil)
		return
	}

	url, err := h.userService.UpdateAvatar(c.Request.Context(), id, file)
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.JSON(c, http.StatusOK, consts.MsgAvatarUpdateSuccess, moduledto.AvatarResponse{ProfileImage: url})
}

// DeleteUser 注销本人账号并清除会话 Cookie
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := selfID(c)
	if !ok {
		return
	}

	if err := h.userService.Close(c.Request.Context(), id); err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.ClearSessionCookie(c)
	httpx.JSON(c, http.StatusOK, consts.MsgUserDeleteSuccess, nil)
}
