package repo

import (
	"context"
	"time"

	"community-server/internal/consts"
	"community-server/internal/model"

	"gorm.io/gorm"
)

type UserStore interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByNickname(ctx context.Context, nickname string) (*model.User, error)
	FieldExists(ctx context.Context, field consts.UserField, value string, excludeUserID *uint) (bool, error)
	Create(ctx context.Context, user *model.User) error
	UpdateByID(ctx context.Context, userID uint, updates map[string]interface{}) error
	UpdatePasswordByID(ctx context.Context, userID uint, hashedPassword string) error
	SetStatus(ctx context.Context, userID uint, status int, suspendedAt *time.Time) error
	Close(ctx context.Context, userID uint, timestamp int64) error
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}
