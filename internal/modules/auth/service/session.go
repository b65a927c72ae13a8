package service

import (
	"context"
	"errors"
	"time"

	"community-server/internal/config"
	"community-server/internal/consts"
	"community-server/internal/logger"
	"community-server/internal/model"
	"community-server/internal/modules/auth/repo"
	platformservice "community-server/internal/platform/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultSessionTTL = time.Hour

// SessionManager 负责会话的签发、解析与吊销。
// 会话状态只有 存活 -> 过期 / 已吊销 两种流转，过期在解析时惰性判断。
type SessionManager struct {
	store repo.SessionStore
	now   func() time.Time
}

func NewSessionManager(store repo.SessionStore) *SessionManager {
	return &SessionManager{store: store, now: time.Now}
}

func sessionTTL() time.Duration {
	minutes := config.Get().Session.TTLMinutes
	if minutes <= 0 {
		return defaultSessionTTL
	}
	return time.Duration(minutes) * time.Minute
}

// Create 为账号签发新会话。账号已有存活会话时返回 ALREADY_LOGIN 冲突。
func (m *SessionManager) Create(ctx context.Context, userID uint) (*model.Session, error) {
	now := m.now()
	session := &model.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(sessionTTL()),
	}
	if err := m.store.CreateExclusive(ctx, session, now); err != nil {
		if errors.Is(err, repo.ErrLiveSessionExists) {
			return nil, platformservice.NewConflictError(consts.MsgAlreadyLogin)
		}
		logger.With("auth").Errorf("❌ 创建会话失败: %v", err)
		return nil, platformservice.NewInternalError("创建会话失败")
	}
	return session, nil
}

func (m *SessionManager) HasLiveSession(ctx context.Context, userID uint) (bool, error) {
	live, err := m.store.HasLive(ctx, userID, m.now())
	if err != nil {
		logger.With("auth").Errorf("❌ 查询会话失败: %v", err)
		return false, platformservice.NewInternalError("查询会话失败")
	}
	return live, nil
}

// Resolve 返回会话所属账号 ID；不存在或已过期返回 INVALID_SESSION。
func (m *SessionManager) Resolve(ctx context.Context, token string) (uint, error) {
	session, err := m.store.Resolve(ctx, token, m.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, platformservice.NewUnauthorizedError(consts.MsgInvalidSession)
		}
		logger.With("auth").Errorf("❌ 解析会话失败: %v", err)
		return 0, platformservice.NewInternalError("解析会话失败")
	}
	return session.UserID, nil
}

// Revoke 吊销单个会话，令牌不存在不视为错误。
func (m *SessionManager) Revoke(ctx context.Context, token string) error {
	if err := m.store.Delete(ctx, token); err != nil {
		logger.With("auth").Errorf("❌ 吊销会话失败: %v", err)
		return platformservice.NewInternalError("吊销会话失败")
	}
	return nil
}

func (m *SessionManager) RevokeAll(ctx context.Context, userID uint) error {
	if _, err := m.store.DeleteByUser(ctx, userID); err != nil {
		logger.With("auth").Errorf("❌ 吊销账号会话失败: %v", err)
		return platformservice.NewInternalError("吊销会话失败")
	}
	return nil
}

// PurgeExpired 删除已过期的会话记录，仅用于存储清理。
func (m *SessionManager) PurgeExpired(ctx context.Context) (int64, error) {
	return m.store.PurgeExpired(ctx, m.now())
}
