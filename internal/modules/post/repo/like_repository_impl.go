package repo

import (
	"context"
	"errors"

	"community-server/internal/model"

	"gorm.io/gorm"
)

func (r *PostRepository) LikeExists(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

// AddLike 新增点赞并给帖子点赞数加一，已点赞返回 ErrAlreadyLiked。
func (r *PostRepository) AddLike(ctx context.Context, userID, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := insertLike(tx, userID, postID); err != nil {
			return err
		}
		var err error
		count, err = likeCount(tx, postID)
		return err
	})
	return count, err
}

// RemoveLike 删除点赞并给帖子点赞数减一，未点赞返回 ErrNotLiked。
func (r *PostRepository) RemoveLike(ctx context.Context, userID, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteLike(tx, userID, postID); err != nil {
			return err
		}
		var err error
		count, err = likeCount(tx, postID)
		return err
	})
	return count, err
}

// ToggleLike 已点赞则取消，否则点赞，返回操作后的状态和点赞数。
func (r *PostRepository) ToggleLike(ctx context.Context, userID, postID uint) (bool, int64, error) {
	var (
		liked bool
		count int64
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := deleteLike(tx, userID, postID)
		switch {
		case err == nil:
			liked = false
		case errors.Is(err, ErrNotLiked):
			if err := insertLike(tx, userID, postID); err != nil {
				return err
			}
			liked = true
		default:
			return err
		}
		count, err = likeCount(tx, postID)
		return err
	})
	return liked, count, err
}

func ensureLivePost(tx *gorm.DB, postID uint) error {
	var count int64
	if err := tx.Model(&model.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func insertLike(tx *gorm.DB, userID, postID uint) error {
	if err := ensureLivePost(tx, postID); err != nil {
		return err
	}
	var existing int64
	if err := tx.Model(&model.Like{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return ErrAlreadyLiked
	}
	if err := tx.Create(&model.Like{UserID: userID, PostID: postID}).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyLiked
		}
		return err
	}
	return IncrementLikeCount(tx, postID)
}

func deleteLike(tx *gorm.DB, userID, postID uint) error {
	if err := ensureLivePost(tx, postID); err != nil {
		return err
	}
	result := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.Like{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotLiked
	}
	return DecrementLikeCount(tx, postID)
}

func likeCount(tx *gorm.DB, postID uint) (int64, error) {
	var post model.Post
	if err := tx.Select("like_count").First(&post, postID).Error; err != nil {
		return 0, err
	}
	return post.LikeCount, nil
}
