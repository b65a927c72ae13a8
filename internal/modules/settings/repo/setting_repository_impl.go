package repo

import (
	"errors"
	"fmt"

	"community-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	db *gorm.DB
}

// keyIs 生成带引号的 key 条件，key 在 MySQL 中是保留字。
func keyIs(key string) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: "key"}, Value: key}
}

func (r *SettingRepository) InitializeDefaults(defaults []model.Setting) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, def := range defaults {
			var count int64
			if err := tx.Model(&model.Setting{}).Where(keyIs(def.Key)).Count(&count).Error; err != nil {
				return fmt.Errorf("count default setting %q failed: %w", def.Key, err)
			}
			if count == 0 {
				row := def
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("create default setting %q failed: %w", def.Key, err)
				}
				continue
			}
			// 已存在的配置只刷新元数据，保留管理员修改过的值
			if err := tx.Model(&model.Setting{}).Where(keyIs(def.Key)).Updates(map[string]interface{}{
				"category":  def.Category,
				"desc":      def.Desc,
				"sensitive": def.Sensitive,
			}).Error; err != nil {
				return fmt.Errorf("update default setting metadata %q failed: %w", def.Key, err)
			}
		}
		return nil
	})
}

func (r *SettingRepository) DeleteNotInKeys(allowedKeys []string) error {
	if len(allowedKeys) == 0 {
		return r.db.Where("1 = 1").Delete(&model.Setting{}).Error
	}
	values := make([]interface{}, 0, len(allowedKeys))
	for _, k := range allowedKeys {
		values = append(values, k)
	}
	notIn := clause.Not(clause.IN{Column: clause.Column{Name: "key"}, Values: values})
	return r.db.Where(notIn).Delete(&model.Setting{}).Error
}

func (r *SettingRepository) FindByKey(key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.Where(keyIs(key)).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) Create(setting *model.Setting) error {
	return r.db.Create(setting).Error
}

func (r *SettingRepository) FindAll() ([]model.Setting, error) {
	var settings []model.Setting
	if err := r.db.Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *SettingRepository) UpdateSettings(items []UpdateSettingItem, maskedValue string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			var current model.Setting
			err := tx.Where(keyIs(item.Key)).First(&current).Error
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				if err := tx.Create(&model.Setting{Key: item.Key, Value: item.Value}).Error; err != nil {
					return err
				}
				continue
			}

			// 敏感配置收到掩码值时视为未修改
			if current.Sensitive && item.Value == maskedValue {
				continue
			}
			if err := tx.Model(&model.Setting{}).Where(keyIs(item.Key)).Update("value", item.Value).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
