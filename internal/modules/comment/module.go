package comment

import (
	"community-server/internal/modules/comment/handler"
	"community-server/internal/modules/comment/repo"
	"community-server/internal/modules/comment/service"
	platformservice "community-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, commentStore repo.CommentStore) *Module {
	moduleService := service.New(appService, commentStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
