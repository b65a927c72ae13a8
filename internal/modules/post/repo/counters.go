package repo

import (
	"errors"

	"community-server/internal/model"

	"gorm.io/gorm"
)

// ErrCounterUnderflow 派生计数即将变为负数，说明计数与明细行已经不一致。
var ErrCounterUnderflow = errors.New("counter underflow")

// IncrementCommentCount 在同一事务内给帖子评论数加一，帖子必须仍然存在。
func IncrementCommentCount(tx *gorm.DB, postID uint) error {
	result := tx.Model(&model.Post{}).Where("id = ?", postID).
		UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DecrementCommentCount 评论数减 n。帖子已删除时视为已级联处理，直接返回 nil。
func DecrementCommentCount(tx *gorm.DB, postID uint, n int64) error {
	return guardedDecrement(tx, postID, "comment_count", n)
}

func IncrementLikeCount(tx *gorm.DB, postID uint) error {
	result := tx.Model(&model.Post{}).Where("id = ?", postID).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DecrementLikeCount 点赞数减一，计数已为 0 时返回 ErrCounterUnderflow，不做截断。
func DecrementLikeCount(tx *gorm.DB, postID uint) error {
	return guardedDecrement(tx, postID, "like_count", 1)
}

func guardedDecrement(tx *gorm.DB, postID uint, column string, n int64) error {
	if n <= 0 {
		return nil
	}
	result := tx.Model(&model.Post{}).
		Where("id = ? AND "+column+" >= ?", postID, n).
		UpdateColumn(column, gorm.Expr(column+" - ?", n))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var live int64
	if err := tx.Model(&model.Post{}).Where("id = ?", postID).Count(&live).Error; err != nil {
		return err
	}
	if live == 0 {
		return nil
	}
	return ErrCounterUnderflow
}
