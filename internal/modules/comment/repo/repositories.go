package repo

import (
	"context"

	"community-server/internal/model"

	"gorm.io/gorm"
)

type CommentStore interface {
	PostExists(ctx context.Context, postID uint) (bool, error)
	ListByPost(ctx context.Context, postID uint) ([]model.Comment, error)
	FindByID(ctx context.Context, id uint) (*model.Comment, error)
	CreateAndIncrement(ctx context.Context, comment *model.Comment) error
	UpdateContent(ctx context.Context, id uint, content string) error
	DeleteAndDecrement(ctx context.Context, comment *model.Comment) error
}

func NewCommentRepository(db *gorm.DB) CommentStore {
	return &CommentRepository{db: db}
}
