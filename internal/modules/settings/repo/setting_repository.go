package repo

import (
	"community-server/internal/model"

	"gorm.io/gorm"
)

type UpdateSettingItem struct {
	Key   string
	Value string
}

type SettingStore interface {
	InitializeDefaults(defaults []model.Setting) error
	DeleteNotInKeys(allowedKeys []string) error
	FindByKey(key string) (*model.Setting, error)
	Create(setting *model.Setting) error
	FindAll() ([]model.Setting, error)
	UpdateSettings(items []UpdateSettingItem, maskedValue string) error
}

func NewSettingRepository(db *gorm.DB) SettingStore {
	return &SettingRepository{db: db}
}
