package system

import (
	"community-server/internal/modules/system/handler"
	"community-server/internal/modules/system/repo"
	"community-server/internal/modules/system/service"
	platformservice "community-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, systemStore repo.SystemStore) *Module {
	moduleService := service.New(appService, systemStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
