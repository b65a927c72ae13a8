//go:build wireinject
// +build wireinject

package di

import (
	"community-server/internal/modules"
	authrepo "community-server/internal/modules/auth/repo"
	commentrepo "community-server/internal/modules/comment/repo"
	postrepo "community-server/internal/modules/post/repo"
	settingsrepo "community-server/internal/modules/settings/repo"
	systemrepo "community-server/internal/modules/system/repo"
	userrepo "community-server/internal/modules/user/repo"
	"community-server/internal/platform/service"
	"community-server/internal/router"
	"community-server/internal/storage"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication(gormDB *gorm.DB, stores *storage.Stores) (*Application, error) {
	wire.Build(
		userrepo.NewUserRepository,
		authrepo.NewSessionRepository,
		postrepo.NewPostRepository,
		commentrepo.NewCommentRepository,
		settingsrepo.NewSettingRepository,
		systemrepo.NewSystemRepository,
		service.NewAppService,
		modules.New,
		router.NewRouter,
		provideSessionSweeper,
		NewApplication,
	)
	return nil, nil
}
