package repo

import (
	"context"

	"community-server/internal/model"
	postrepo "community-server/internal/modules/post/repo"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func (r *CommentRepository) PostExists(ctx context.Context, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", postID).Count(&count).Error
	return count > 0, err
}

// ListByPost 按创建顺序返回帖子下的评论，并预加载评论者。
func (r *CommentRepository) ListByPost(ctx context.Context, postID uint) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).Preload("User").
		Where("post_id = ?", postID).
		Order("id asc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).Preload("User").First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// CreateAndIncrement 写入评论并给帖子评论数加一。帖子不存在返回 gorm.ErrRecordNotFound。
func (r *CommentRepository) CreateAndIncrement(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := postrepo.IncrementCommentCount(tx, comment.PostID); err != nil {
			return err
		}
		return tx.Create(comment).Error
	})
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id uint, content string) error {
	result := r.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Update("content", content)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAndDecrement 软删评论并给帖子评论数减一，帖子已删除时只删除评论。
func (r *CommentRepository) DeleteAndDecrement(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Comment{}, comment.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return postrepo.DecrementCommentCount(tx, comment.PostID, 1)
	})
}
