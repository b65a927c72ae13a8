package handler

import (
	"net/http"

	"community-server/internal/consts"
	"community-server/internal/modules/common/httpx"
	moduledto "community-server/internal/modules/post/dto"

	"github.com/gin-gonic/gin"
)

// ListPosts 游标分页获取帖子列表
func (h *Handler) ListPosts(c *gin.Context) {
	var query moduledto.ListPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpx.AbortWithMessage(c, http.StatusBadRequest, consts.MsgInvalidRequest, nil)
		return
	}

	resp, err := h.postService.List(c.Request.Context(), query)
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.JSON(c, http.StatusOK, consts.MsgPostRetrievalSuccess, resp)
}

// GetPost 获取帖子详情，浏览数加一
func (h *Handler) GetPost(c *gin.Context) {
	id, err := httpx.PathID(c, "id")
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInvalidRequest)
		return
	}

	detail, err := h.postService.Detail(c.Request.Context(), id, httpx.CurrentIdentity(c))
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.JSON(c, http.StatusOK, consts.MsgPostDetailSuccess, detail)
}

func (h *Handler) CreatePost(c *gin.Context) {
	var req moduledto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.AbortWithMessage(c, http.StatusBadRequest, consts.MsgInvalidRequest, nil)
		return
	}

	id, err := h.postService.Create(c.Request.Context(), httpx.CurrentIdentity(c), req)
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.JSON(c, http.StatusCreated, consts.MsgPostCreateSuccess, moduledto.CreatePostResponse{PostID: id})
}

func (h *Handler) UpdatePost(c *gin.Context) {
	id, err := httpx.PathID(c, "id")
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInvalidRequest)
		return
	}

	var req moduledto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.AbortWithMessage(c, http.StatusBadRequest, consts.MsgInvalidRequest, nil)
		return
	}

	postID, err := h.postService.Update(c.Request.Context(), httpx.CurrentIdentity(c), id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.JSON(c, http.StatusOK, consts.MsgPostUpdateSuccess, moduledto.CreatePostResponse{PostID: postID})
}

func (h *Handler) DeletePost(c *gin.Context) {
	id, err := httpx.PathID(c, "id")
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInvalidRequest)
		return
	}

	if err := h.postService.Delete(c.Request.Context(), httpx.CurrentIdentity(c), id); err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.JSON(c, http.StatusOK, consts.MsgPostDeleteSuccess, nil)
}

// UploadImage 上传帖子配图（multipart 字段 file）
func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		httpx.AbortWithMessage(c, http.StatusBadRequest, consts.MsgFileRequired, nil)
		return
	}

	url, err := h.postService.UploadImage(c.Request.Context(), file)
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgInternalServerError)
		return
	}
	httpx.JSON(c, http.StatusCreated, consts.MsgImageUploadSuccess, moduledto.ImageUploadResponse{Image: url})
}
