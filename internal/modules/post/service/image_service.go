package service

import (
	"context"
	"errors"
	"mime/multipart"

	"community-server/internal/config"
	"community-server/internal/consts"
	"community-server/internal/logger"
	"community-server/internal/metrics"
	platformservice "community-server/internal/platform/service"
	"community-server/internal/storage"
)

// UploadImage 保存帖子配图，返回可写入帖子 image 字段的地址。
func (s *Service) UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	maxBytes := int64(config.Get().Upload.MaxSizeMB) * 1024 * 1024
	url, err := storage.SaveImage(ctx, s.imageStore, file, s.GetString(consts.ConfigAllowFileExtensions), maxBytes)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			return "", platformservice.NewValidationError(consts.MsgFileTooLarge)
		case errors.Is(err, storage.ErrInvalidFile):
			return "", platformservice.NewValidationError(consts.MsgInvalidFile)
		}
		logger.With("post").Errorf("❌ 保存帖子图片失败: %v", err)
		return "", platformservice.NewInternalError("保存图片失败")
	}
	metrics.RecordContentMutation("image", "create")
	return url, nil
}
