package service

import (
	"community-server/internal/modules/comment/repo"
	platformservice "community-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	commentStore repo.CommentStore
}

func New(appService *platformservice.AppService, commentStore repo.CommentStore) *Service {
	return &Service{
		AppService:   appService,
		commentStore: commentStore,
	}
}
