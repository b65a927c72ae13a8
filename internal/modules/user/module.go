package user

import (
	"community-server/internal/modules/user/handler"
	"community-server/internal/modules/user/repo"
	"community-server/internal/modules/user/service"
	platformservice "community-server/internal/platform/service"
	"community-server/internal/storage"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, userStore repo.UserStore, stores *storage.Stores) *Module {
	moduleService := service.New(appService, userStore, stores.Avatars)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
