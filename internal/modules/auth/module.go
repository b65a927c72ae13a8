package auth

import (
	"community-server/internal/modules/auth/handler"
	"community-server/internal/modules/auth/repo"
	"community-server/internal/modules/auth/service"
	platformservice "community-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, sessionStore repo.SessionStore, userService service.UserService) *Module {
	moduleService := service.New(appService, sessionStore, userService)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
