package handler

import (
	"net/http"

	"community-server/internal/consts"
	"community-server/internal/logger"
	moduledto "community-server/internal/modules/auth/dto"
	"community-server/internal/modules/common/httpx"
	"community-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// signSessionCookie 可在测试中替换以模拟签名失败
var signSessionCookie = utils.SignSessionCookie

func (h *Handler) Signup(c *gin.Context) {
	var req moduledto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.AbortWithMessage(c, http.StatusBadRequest, consts.MsgInvalidRequest, nil)
		return
	}

	id, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.JSON(c, http.StatusCreated, consts.MsgSignupSuccess, moduledto.SignupResponse{UserID: id})
}

// Login 登录成功后通过 HttpOnly Cookie 下发签名后的会话令牌
func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.AbortWithMessage(c, http.StatusBadRequest, consts.MsgInvalidRequest, nil)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}

	cookieValue, err := signSessionCookie(result.Token, result.ExpiresAt)
	if err != nil {
		logger.With("auth").Errorf("❌ 签发会话 Cookie 失败: %v", err)
		if revokeErr := h.authService.Sessions().Revoke(c.Request.Context(), result.Token); revokeErr != nil {
			logger.With("auth").Errorf("❌ 回收未下发的会话失败: %v", revokeErr)
		}
		httpx.AbortWithMessage(c, http.StatusInternalServerError, consts.MsgInternalServerError, nil)
		return
	}
	httpx.SetSessionCookie(c, cookieValue, result.ExpiresAt)
	httpx.JSON(c, http.StatusOK, consts.MsgLoginSuccess, moduledto.LoginResponse{
		UserProfileResponse: result.Profile,
		ExpiresAt:           result.ExpiresAt,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), httpx.SessionCookie(c)); err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.ClearSessionCookie(c)
	httpx.JSON(c, http.StatusOK, consts.MsgLogoutSuccess, nil)
}

// Me 返回当前会话对应的身份，需挂在 SessionAuth 之后
func (h *Handler) Me(c *gin.Context) {
	identity := httpx.CurrentIdentity(c)
	if identity == nil {
		httpx.AbortWithMessage(c, http.StatusUnauthorized, consts.MsgLoginRequired, nil)
		return
	}
	httpx.JSON(c, http.StatusOK, consts.MsgAuthCheckSuccess, identity)
}
