package service

import (
	"strconv"
	"sync"

	"community-server/internal/modules/settings/repo"
	settingsruntime "community-server/internal/modules/settings/runtime"
)

// DefaultValueNotFound 缓存未命中标记，避免对不存在的 key 反复查库。
const DefaultValueNotFound = "||__NOT_FOUND__||"

// AppService 为各模块提供带缓存的运行时配置读取能力。
type AppService struct {
	settingStore  repo.SettingStore
	settingsCache sync.Map
}

func NewAppService(settingStore repo.SettingStore) *AppService {
	return &AppService{settingStore: settingStore}
}

// InitializeSettings 写入缺失的默认配置并清理已废弃的配置键。
func (s *AppService) InitializeSettings() error {
	if err := s.settingStore.InitializeDefaults(settingsruntime.DefaultSettings); err != nil {
		return err
	}
	if err := s.settingStore.DeleteNotInKeys(settingsruntime.Keys()); err != nil {
		return err
	}
	s.ClearCache()
	return nil
}

func (s *AppService) ClearCache() {
	s.settingsCache.Range(func(key, value interface{}) bool {
		s.settingsCache.Delete(key)
		return true
	})
}

func (s *AppService) GetString(key string) string {
	if val, ok := s.settingsCache.Load(key); ok {
		strVal, ok := val.(string)
		if !ok {
			s.settingsCache.Delete(key)
		} else {
			if strVal == DefaultValueNotFound {
				return ""
			}
			return strVal
		}
	}

	setting, err := s.settingStore.FindByKey(key)
	if err != nil {
		// 数据库没查到，尝试查找默认配置
		if def, ok := settingsruntime.Default(key); ok {
			// 忽略错误，防止并发写入导致的主键冲突
			_ = s.settingStore.Create(&def)

			s.settingsCache.Store(key, def.Value)
			return def.Value
		}

		s.settingsCache.Store(key, DefaultValueNotFound)
		return ""
	}

	s.settingsCache.Store(key, setting.Value)
	return setting.Value
}

func (s *AppService) GetInt(key string) int {
	valStr := s.GetString(key)
	if valStr == "" {
		return 0
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetFloat64(key string) float64 {
	valStr := s.GetString(key)
	if valStr == "" {
		return 0
	}
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetBool(key string) bool {
	valStr := s.GetString(key)
	if valStr == "" {
		return false
	}
	// ParseBool 支持 "1", "t", "T", "true", "TRUE", "True"
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return false
	}
	return val
}
