package handler

import (
	"net/http"

	"community-server/internal/consts"
	"community-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AddLike(c *gin.Context) {
	id, err := httpx.PathID(c, "id")
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInvalidRequest)
		return
	}

	resp, err := h.postService.AddLike(c.Request.Context(), httpx.CurrentIdentity(c), id)
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.JSON(c, http.StatusCreated, consts.MsgLikeRegisterSuccess, resp)
}

func (h *Handler) RemoveLike(c *gin.Context) {
	id, err := httpx.PathID(c, "id")
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInvalidRequest)
		return
	}

	resp, err := h.postService.RemoveLike(c.Request.Context(), httpx.CurrentIdentity(c), id)
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.JSON(c, http.StatusOK, consts.MsgLikeDeleteSuccess, resp)
}

// ToggleLike 切换点赞状态，返回 LIKE_ADDED 或 LIKE_REMOVED
func (h *Handler) ToggleLike(c *gin.Context) {
	id, err := httpx.PathID(c, "id")
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInvalidRequest)
		return
	}

	resp, err := h.postService.ToggleLike(c.Request.Context(), httpx.CurrentIdentity(c), id)
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	message := consts.MsgLikeRemoved
	if resp.IsLiked {
		message = consts.MsgLikeAdded
	}
	httpx.JSON(c, http.StatusOK, message, resp)
}
