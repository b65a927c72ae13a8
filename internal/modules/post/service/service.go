package service

import (
	"community-server/internal/modules/post/repo"
	platformservice "community-server/internal/platform/service"
	"community-server/internal/storage"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

type Service struct {
	*platformservice.AppService
	postStore  repo.PostStore
	imageStore storage.FileStore
}

func New(appService *platformservice.AppService, postStore repo.PostStore, imageStore storage.FileStore) *Service {
	return &Service{
		AppService: appService,
		postStore:  postStore,
		imageStore: imageStore,
	}
}
