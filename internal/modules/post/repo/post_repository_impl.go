package repo

import (
	"context"

	"community-server/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	post.LikeCount, post.CommentCount, post.ViewCount = 0, 0, 0
	return r.db.WithContext(ctx).Create(post).Error
}

// List 按 id 倒序返回帖子，LastSeenID 非零时只返回 id 更小的帖子。
func (r *PostRepository) List(ctx context.Context, params ListPostsParams) ([]model.Post, error) {
	var posts []model.Post
	query := r.db.WithContext(ctx).Model(&model.Post{}).Preload("User")
	if params.LastSeenID > 0 {
		query = query.Where("posts.id < ?", params.LastSeenID)
	}
	if err := query.Order("posts.id desc").Limit(params.Limit).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Preload("User").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// IncrementViewAndGet 浏览数加一后读取帖子，两步在同一事务内完成。
func (r *PostRepository) IncrementViewAndGet(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Post{}).Where("id = ?", id).
			UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Preload("User").First(&post, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) UpdateByID(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCascade 软删帖子，同一事务内软删其评论并物理删除其点赞。
// 帖子行最先软删，并发的评论和点赞写入在计数更新处等待并随后失败。
func (r *PostRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", id).Delete(&model.Like{}).Error
	})
}
