package settings

import (
	"community-server/internal/modules/settings/handler"
	"community-server/internal/modules/settings/repo"
	"community-server/internal/modules/settings/service"
	platformservice "community-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, settingStore repo.SettingStore) *Module {
	moduleService := service.New(appService, settingStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
