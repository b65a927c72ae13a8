package dto

import "time"

type CreatePostRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=26"`
	Content string `json:"content" binding:"required"`
	Image   string `json:"image" binding:"omitempty,max=512"`
}

// UpdatePostRequest nil 字段保持不变
type UpdatePostRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=26"`
	Content *string `json:"content" binding:"omitempty,min=1"`
	Image   *string `json:"image" binding:"omitempty,max=512"`
}

// ListPostsQuery 参数缺省为 nil，显式传入 0 会被校验拒绝
type ListPostsQuery struct {
	LastSeenID *uint `form:"lastSeenId" binding:"omitempty,min=1"`
	Size       *int  `form:"size" binding:"omitempty,min=1,max=50"`
}

type AuthorResponse struct {
	UserID       uint   `json:"userId"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profileImage"`
}

type PostSummary struct {
	PostID       uint           `json:"postId"`
	Title        string         `json:"title"`
	Author       AuthorResponse `json:"author"`
	LikeCount    int64          `json:"likeCount"`
	CommentCount int64          `json:"commentCount"`
	ViewCount    int64          `json:"viewCount"`
	CreatedAt    time.Time      `json:"createdAt"`
}

type PostDetailResponse struct {
	PostSummary
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	UpdatedAt time.Time `json:"updatedAt"`
	IsLiked   bool      `json:"isLiked"`
}

// PostListResponse NextCursor 仅在本页填满时返回，否则为 null
type PostListResponse struct {
	Posts      []PostSummary `json:"posts"`
	NextCursor *uint         `json:"nextCursor"`
}

type CreatePostResponse struct {
	PostID uint `json:"postId"`
}

type LikeResponse struct {
	IsLiked   bool  `json:"isLiked"`
	LikeCount int64 `json:"likeCount"`
}

type ImageUploadResponse struct {
	Image string `json:"image"`
}
