package service

import (
	"community-server/internal/modules/user/repo"
	platformservice "community-server/internal/platform/service"
	"community-server/internal/storage"
)

type Service struct {
	*platformservice.AppService
	userStore   repo.UserStore
	avatarStore storage.FileStore
}

func New(appService *platformservice.AppService, userStore repo.UserStore, avatarStore storage.FileStore) *Service {
	return &Service{
		AppService:  appService,
		userStore:   userStore,
		avatarStore: avatarStore,
	}
}
