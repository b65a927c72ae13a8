package repo

import (
	"context"
	"fmt"

	"community-server/internal/model"
	postrepo "community-server/internal/modules/post/repo"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postCommentCount struct {
	PostID uint
	N      int64
}

// Close 注销账号，整个级联在一个事务内完成：
// 锁定账号行后先软删该账号的帖子，再扣减他人帖子上的评论数和点赞数，
// 软删该账号的评论及其帖子下的评论，硬删相关点赞并删除会话，最后改写唯一字段并软删账号。
func (r *UserRepository) Close(ctx context.Context, userID uint, timestamp int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			return err
		}

		var ownPostIDs []uint
		if err := tx.Model(&model.Post{}).Where("user_id = ?", userID).Pluck("id", &ownPostIDs).Error; err != nil {
			return err
		}
		if len(ownPostIDs) > 0 {
			if err := tx.Where("id IN ?", ownPostIDs).Delete(&model.Post{}).Error; err != nil {
				return err
			}
		}

		if err := releaseCommentCounts(tx, userID, ownPostIDs); err != nil {
			return err
		}
		if err := releaseLikeCounts(tx, userID, ownPostIDs); err != nil {
			return err
		}

		comments := tx.Where("user_id = ?", userID)
		likes := tx.Where("user_id = ?", userID)
		if len(ownPostIDs) > 0 {
			comments = tx.Where("user_id = ? OR post_id IN ?", userID, ownPostIDs)
			likes = tx.Where("user_id = ? OR post_id IN ?", userID, ownPostIDs)
		}
		if err := comments.Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := likes.Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.Session{}).Error; err != nil {
			return err
		}

		email, nickname := buildTombstoneIdentity(user, timestamp)
		if err := tx.Model(&user).Updates(map[string]interface{}{
			"email":    email,
			"nickname": nickname,
		}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

func releaseCommentCounts(tx *gorm.DB, userID uint, ownPostIDs []uint) error {
	query := tx.Model(&model.Comment{}).
		Select("post_id, COUNT(*) AS n").
		Where("user_id = ?", userID)
	if len(ownPostIDs) > 0 {
		query = query.Where("post_id NOT IN ?", ownPostIDs)
	}

	var counts []postCommentCount
	if err := query.Group("post_id").Scan(&counts).Error; err != nil {
		return err
	}
	for _, c := range counts {
		if err := postrepo.DecrementCommentCount(tx, c.PostID, c.N); err != nil {
			return err
		}
	}
	return nil
}

func releaseLikeCounts(tx *gorm.DB, userID uint, ownPostIDs []uint) error {
	query := tx.Model(&model.Like{}).Where("user_id = ?", userID)
	if len(ownPostIDs) > 0 {
		query = query.Where("post_id NOT IN ?", ownPostIDs)
	}

	var likedPostIDs []uint
	if err := query.Pluck("post_id", &likedPostIDs).Error; err != nil {
		return err
	}
	for _, postID := range likedPostIDs {
		if err := postrepo.DecrementLikeCount(tx, postID); err != nil {
			return err
		}
	}
	return nil
}

// buildTombstoneIdentity 改写邮箱和昵称，释放唯一索引供新账号使用。
func buildTombstoneIdentity(user model.User, timestamp int64) (string, string) {
	return fmt.Sprintf("del_%d_%s", timestamp, user.Email), fmt.Sprintf("%s_del_%d", user.Nickname, timestamp)
}
