package post

import (
	"community-server/internal/modules/post/handler"
	"community-server/internal/modules/post/repo"
	"community-server/internal/modules/post/service"
	platformservice "community-server/internal/platform/service"
	"community-server/internal/storage"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, postStore repo.PostStore, stores *storage.Stores) *Module {
	moduleService := service.New(appService, postStore, stores.Posts)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
