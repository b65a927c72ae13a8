package service

import (
	"community-server/internal/modules/settings/repo"
	platformservice "community-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	settingStore repo.SettingStore
}

func New(appService *platformservice.AppService, settingStore repo.SettingStore) *Service {
	return &Service{
		AppService:   appService,
		settingStore: settingStore,
	}
}
