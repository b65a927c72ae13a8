package repo

import (
	"context"
	"errors"
	"time"

	"community-server/internal/model"

	"gorm.io/gorm"
)

// ErrLiveSessionExists 账号已有未过期会话时，创建新会话被拒绝。
var ErrLiveSessionExists = errors.New("live session exists")

type SessionStore interface {
	CreateExclusive(ctx context.Context, session *model.Session, now time.Time) error
	HasLive(ctx context.Context, userID uint, now time.Time) (bool, error)
	Resolve(ctx context.Context, token string, now time.Time) (*model.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID uint) (int64, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

func NewSessionRepository(db *gorm.DB) SessionStore {
	return &SessionRepository{db: db}
}
