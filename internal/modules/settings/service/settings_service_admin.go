package service

import (
	"strconv"
	"strings"

	"community-server/internal/consts"
	"community-server/internal/logger"
	"community-server/internal/model"
	moduledto "community-server/internal/modules/settings/dto"
	settingsrepo "community-server/internal/modules/settings/repo"
	platformservice "community-server/internal/platform/service"
)

// AdminListSettings 获取全部运行时配置。
func (s *Service) AdminListSettings() ([]model.Setting, error) {
	settings, err := s.settingStore.FindAll()
	if err != nil {
		return nil, platformservice.NewInternalError("获取配置失败")
	}

	sortSettingsForAdmin(settings)
	maskSensitiveSettings(settings)
	return settings, nil
}

// AdminUpdateSettings 批量更新运行时配置，并在成功后清理配置缓存。
func (s *Service) AdminUpdateSettings(items []moduledto.UpdateSettingRequest) error {
	for _, item := range items {
		if err := validateSettingUpdate(item); err != nil {
			return err
		}
	}

	repoItems := make([]settingsrepo.UpdateSettingItem, 0, len(items))
	for _, item := range items {
		repoItems = append(repoItems, settingsrepo.UpdateSettingItem{
			Key:   item.Key,
			Value: strings.TrimSpace(item.Value),
		})
	}

	if err := s.settingStore.UpdateSettings(repoItems, maskedSettingValue); err != nil {
		logger.With("settings").Errorf("❌ 更新配置失败: %v", err)
		return platformservice.NewInternalError("更新失败")
	}

	s.ClearCache()
	return nil
}

func validateSettingUpdate(item moduledto.UpdateSettingRequest) error {
	if strings.TrimSpace(item.Key) == "" {
		return platformservice.NewValidationError(consts.MsgInvalidRequest)
	}

	value := strings.TrimSpace(item.Value)
	switch item.Key {
	case consts.ConfigAllowRegister, consts.ConfigRateLimitEnabled:
		if _, err := strconv.ParseBool(value); err != nil {
			return platformservice.NewValidationError(consts.MsgInvalidRequest)
		}
	case consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitWriteRPS:
		rps, err := strconv.ParseFloat(value, 64)
		if err != nil || rps <= 0 {
			return platformservice.NewValidationError(consts.MsgInvalidRequest)
		}
	case consts.ConfigRateLimitAuthBurst, consts.ConfigRateLimitWriteBurst, consts.ConfigMaxRequestBodySize:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return platformservice.NewValidationError(consts.MsgInvalidRequest)
		}
	}

	return nil
}
