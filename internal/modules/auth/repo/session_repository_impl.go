package repo

import (
	"context"
	"errors"
	"time"

	"community-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository struct {
	db *gorm.DB
}

// CreateExclusive 在同一事务内检查存活会话并写入新会话，保证每个账号最多一个存活会话。
// 该账号已过期的会话顺带清理。先锁定账号行，同一账号的并发登录在此串行。
func (r *SessionRepository) CreateExclusive(ctx context.Context, session *model.Session, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").First(&model.User{}, session.UserID).Error; err != nil {
			return err
		}
		var live int64
		if err := tx.Model(&model.Session{}).
			Where("user_id = ? AND expires_at > ?", session.UserID, now).
			Count(&live).Error; err != nil {
			return err
		}
		if live > 0 {
			return ErrLiveSessionExists
		}
		if err := tx.Where("user_id = ? AND expires_at <= ?", session.UserID, now).
			Delete(&model.Session{}).Error; err != nil {
			return err
		}
		return tx.Create(session).Error
	})
}

func (r *SessionRepository) HasLive(ctx context.Context, userID uint, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Session{}).
		Where("user_id = ? AND expires_at > ?", userID, now).
		Count(&count).Error
	return count > 0, err
}

// Resolve 按令牌查找会话。已过期的会话视为不存在，并顺带删除。
func (r *SessionRepository) Resolve(ctx context.Context, token string, now time.Time) (*model.Session, error) {
	var session model.Session
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&session).Error; err != nil {
		return nil, err
	}
	if session.ExpiresAt.After(now) {
		return &session, nil
	}
	if err := r.Delete(ctx, token); err != nil {
		return nil, err
	}
	return nil, gorm.ErrRecordNotFound
}

// Delete 删除会话，令牌不存在时不报错。
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	err := r.db.WithContext(ctx).Where("token = ?", token).Delete(&model.Session{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (r *SessionRepository) DeleteByUser(ctx context.Context, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Session{})
	return result.RowsAffected, result.Error
}

func (r *SessionRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.Session{})
	return result.RowsAffected, result.Error
}
