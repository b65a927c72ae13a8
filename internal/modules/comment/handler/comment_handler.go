package handler

import (
	"net/http"

	"community-server/internal/consts"
	moduledto "community-server/internal/modules/comment/dto"
	"community-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// ListComments 获取帖子评论，按创建时间正序
func (h *Handler) ListComments(c *gin.Context) {
	postID, err := httpx.PathID(c, "id")
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInvalidRequest)
		return
	}

	resp, err := h.commentService.List(c.Request.Context(), postID)
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.JSON(c, http.StatusOK, consts.MsgCommentListSuccess, resp)
}

func (h *Handler) CreateComment(c *gin.Context) {
	postID, err := httpx.PathID(c, "id")
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInvalidRequest)
		return
	}

	var req moduledto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.AbortWithMessage(c, http.StatusBadRequest, consts.MsgInvalidRequest, nil)
		return
	}

	id, err := h.commentService.Create(c.Request.Context(), httpx.CurrentIdentity(c), postID, req)
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.JSON(c, http.StatusCreated, consts.MsgCommentCreateSuccess, moduledto.CommentIDResponse{CommentID: id})
}

func (h *Handler) UpdateComment(c *gin.Context) {
	id, err := httpx.PathID(c, "id")
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInvalidRequest)
		return
	}

	var req moduledto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.AbortWithMessage(c, http.StatusBadRequest, consts.MsgInvalidRequest, nil)
		return
	}

	commentID, err := h.commentService.Update(c.Request.Context(), httpx.CurrentIdentity(c), id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.JSON(c, http.StatusOK, consts.MsgCommentUpdateSuccess, moduledto.CommentIDResponse{CommentID: commentID})
}

func (h *Handler) DeleteComment(c *gin.Context) {
	id, err := httpx.PathID(c, "id")
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInvalidRequest)
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), httpx.CurrentIdentity(c), id); err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.JSON(c, http.StatusOK, consts.MsgCommentDeleteSuccess, nil)
}
