package service

import (
	"context"
	"errors"
	"mime/multipart"

	"community-server/internal/config"
	"community-server/internal/consts"
	"community-server/internal/logger"
	platformservice "community-server/internal/platform/service"
	"community-server/internal/storage"
)

// UpdateAvatar 保存上传的头像文件并更新账号头像地址。
func (s *Service) UpdateAvatar(ctx context.Context, id uint, file *multipart.FileHeader) (string, error) {
	if _, err := s.FindByID(ctx, id); err != nil {
		return "", err
	}

	maxBytes := int64(config.Get().Upload.MaxSizeMB) * 1024 * 1024
	url, err := storage.SaveImage(ctx, s.avatarStore, file, s.GetString(consts.ConfigAllowFileExtensions), maxBytes)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			return "", platformservice.NewValidationError(consts.MsgFileTooLarge)
		case errors.Is(err, storage.ErrInvalidFile):
			return "", platformservice.NewValidationError(consts.MsgInvalidFile)
		}
		logger.With("user").Errorf("❌ 保存头像失败: %v", err)
		return "", platformservice.NewInternalError("保存头像失败")
	}

	if err := s.userStore.UpdateByID(ctx, id, map[string]interface{}{"avatar": url}); err != nil {
		return "", s.translateStoreError(err, "更新头像失败")
	}
	return url, nil
}
