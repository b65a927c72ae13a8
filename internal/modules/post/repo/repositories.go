package repo

import (
	"context"
	"errors"

	"community-server/internal/model"

	"gorm.io/gorm"
)

var (
	// ErrAlreadyLiked 显式点赞时该账号已点赞过此帖子。
	ErrAlreadyLiked = errors.New("already liked")
	// ErrNotLiked 显式取消点赞时该账号尚未点赞此帖子。
	ErrNotLiked = errors.New("not liked")
)

type ListPostsParams struct {
	LastSeenID uint
	Limit      int
}

type PostStore interface {
	Create(ctx context.Context, post *model.Post) error
	List(ctx context.Context, params ListPostsParams) ([]model.Post, error)
	FindByID(ctx context.Context, id uint) (*model.Post, error)
	IncrementViewAndGet(ctx context.Context, id uint) (*model.Post, error)
	UpdateByID(ctx context.Context, id uint, updates map[string]interface{}) error
	DeleteCascade(ctx context.Context, id uint) error

	LikeExists(ctx context.Context, userID, postID uint) (bool, error)
	AddLike(ctx context.Context, userID, postID uint) (int64, error)
	RemoveLike(ctx context.Context, userID, postID uint) (int64, error)
	ToggleLike(ctx context.Context, userID, postID uint) (bool, int64, error)
}

func NewPostRepository(db *gorm.DB) PostStore {
	return &PostRepository{db: db}
}
