package dto

import (
	"time"

	postdto "community-server/internal/modules/post/dto"
)

type CommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

type CommentResponse struct {
	CommentID uint                   `json:"commentId"`
	PostID    uint                   `json:"postId"`
	Author    postdto.AuthorResponse `json:"author"`
	Content   string                 `json:"content"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}

type CommentIDResponse struct {
	CommentID uint `json:"commentId"`
}
