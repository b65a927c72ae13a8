package service

import (
	"context"
	"time"

	"community-server/internal/model"
	"community-server/internal/modules/auth/repo"
	userdto "community-server/internal/modules/user/dto"
	platformservice "community-server/internal/platform/service"
)

// UserService 认证模块依赖的账号能力，由 user 模块提供。
type UserService interface {
	Create(ctx context.Context, input userdto.CreateAccountInput) (uint, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ToProfile(user *model.User) *userdto.UserProfileResponse
}

type Service struct {
	*platformservice.AppService
	userService UserService
	sessions    *SessionManager
}

func New(appService *platformservice.AppService, sessionStore repo.SessionStore, userService UserService) *Service {
	return &Service{
		AppService:  appService,
		userService: userService,
		sessions:    NewSessionManager(sessionStore),
	}
}

// Sessions 暴露会话管理器，供定时清理任务使用。
func (s *Service) Sessions() *SessionManager {
	return s.sessions
}

// SetClock 替换当前时间来源，测试中用于推进会话过期。
func (s *Service) SetClock(now func() time.Time) {
	s.sessions.now = now
}
