package service

import (
	"context"
	"errors"
	"time"

	"community-server/internal/consts"
	"community-server/internal/logger"
	postrepo "community-server/internal/modules/post/repo"
	platformservice "community-server/internal/platform/service"
)

// Close 注销账号并级联清理其内容与会话。
func (s *Service) Close(ctx context.Context, id uint) error {
	err := s.userStore.Close(ctx, id, time.Now().UnixMilli())
	if err == nil {
		logger.With("user").WithField("user_id", id).Info("🗑️ 账号已注销")
		return nil
	}
	if errors.Is(err, postrepo.ErrCounterUnderflow) {
		return platformservice.NewIntegrityError("counter underflow while closing account")
	}
	return s.translateStoreError(err, "注销账号失败")
}

// SetStatus 管理端修改账号状态。封禁会记录开始时间并吊销全部会话，恢复正常则清空开始时间。
func (s *Service) SetStatus(ctx context.Context, id uint, status int) error {
	if !consts.ValidUserStatus(status) {
		return platformservice.NewValidationError(consts.MsgInvalidRequest)
	}

	var suspendedAt *time.Time
	if status != consts.UserStatusActive {
		now := time.Now()
		suspendedAt = &now
	}
	if err := s.userStore.SetStatus(ctx, id, status, suspendedAt); err != nil {
		return s.translateStoreError(err, "修改账号状态失败")
	}
	logger.With("user").WithField("user_id", id).Infof("账号状态已修改为 %d", status)
	return nil
}
