package repo

import (
	"context"
	"time"

	"community-server/internal/consts"
	"community-server/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByNickname(ctx context.Context, nickname string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("nickname = ?", nickname).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FieldExists 只在未注销的账号中检查唯一字段是否被占用。
func (r *UserRepository) FieldExists(ctx context.Context, field consts.UserField, value string, excludeUserID *uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&model.User{})
	if excludeUserID != nil {
		query = query.Where("id != ?", *excludeUserID)
	}

	var count int64
	if err := query.Where(string(field)+" = ?", value).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) UpdateByID(ctx context.Context, userID uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePasswordByID(ctx context.Context, userID uint, hashedPassword string) error {
	return r.UpdateByID(ctx, userID, map[string]interface{}{"password": hashedPassword})
}

// SetStatus 修改账号状态；封禁时在同一事务内删除该账号的全部会话。
func (r *UserRepository) SetStatus(ctx context.Context, userID uint, status int, suspendedAt *time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"status":       status,
			"suspended_at": suspendedAt,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if status == consts.UserStatusActive {
			return nil
		}
		return tx.Where("user_id = ?", userID).Delete(&model.Session{}).Error
	})
}
