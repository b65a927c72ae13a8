package service

import (
	"context"
	"errors"
	"strings"

	"community-server/internal/consts"
	"community-server/internal/logger"
	"community-server/internal/model"
	moduledto "community-server/internal/modules/user/dto"
	platformservice "community-server/internal/platform/service"
	"community-server/internal/utils"

	"gorm.io/gorm"
)

// Create 注册新账号，邮箱和昵称在未注销账号中必须唯一。
func (s *Service) Create(ctx context.Context, input moduledto.CreateAccountInput) (uint, error) {
	email := normalizeEmail(input.Email)
	nickname := strings.TrimSpace(input.Nickname)

	if err := s.ensureUnique(ctx, consts.UserFieldEmail, email, nil); err != nil {
		return 0, err
	}
	if err := s.ensureUnique(ctx, consts.UserFieldNickname, nickname, nil); err != nil {
		return 0, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		logger.With("user").Errorf("❌ 密码哈希失败: %v", err)
		return 0, platformservice.NewInternalError("密码处理失败")
	}

	user := &model.User{
		Email:    email,
		Nickname: nickname,
		Password: hashed,
		Status:   consts.UserStatusActive,
		Avatar:   strings.TrimSpace(input.Avatar),
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, s.duplicateConflict(ctx, email, nickname)
		}
		logger.With("user").Errorf("❌ 创建账号失败: %v", err)
		return 0, platformservice.NewInternalError("创建账号失败")
	}
	return user.ID, nil
}

func (s *Service) FindByID(ctx context.Context, id uint) (*model.User, error) {
	return s.wrapFind(s.userStore.FindByID(ctx, id))
}

func (s *Service) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.wrapFind(s.userStore.FindByEmail(ctx, normalizeEmail(email)))
}

func (s *Service) FindByNickname(ctx context.Context, nickname string) (*model.User, error) {
	return s.wrapFind(s.userStore.FindByNickname(ctx, strings.TrimSpace(nickname)))
}

// GetProfile 返回账号公开信息，未设置头像时使用默认头像配置。
func (s *Service) GetProfile(ctx context.Context, id uint) (*moduledto.UserProfileResponse, error) {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.ToProfile(user), nil
}

func (s *Service) ToProfile(user *model.User) *moduledto.UserProfileResponse {
	return &moduledto.UserProfileResponse{
		UserID:       user.ID,
		Email:        user.Email,
		Nickname:     user.Nickname,
		ProfileImage: s.AvatarOrDefault(user.Avatar),
		Status:       user.Status,
		SuspendedAt:  user.SuspendedAt,
		CreatedAt:    user.CreatedAt,
	}
}

func (s *Service) AvatarOrDefault(avatar string) string {
	if avatar != "" {
		return avatar
	}
	return s.GetString(consts.ConfigDefaultAvatar)
}

// UpdateProfile 修改昵称和头像，nil 字段保持不变。
func (s *Service) UpdateProfile(ctx context.Context, id uint, req moduledto.UpdateProfileRequest) (*moduledto.UserProfileResponse, error) {
	updates := map[string]interface{}{}
	if req.Nickname != nil {
		nickname := strings.TrimSpace(*req.Nickname)
		if err := s.ensureUnique(ctx, consts.UserFieldNickname, nickname, &id); err != nil {
			return nil, err
		}
		updates["nickname"] = nickname
	}
	if req.ProfileImage != nil {
		updates["avatar"] = strings.TrimSpace(*req.ProfileImage)
	}

	if len(updates) > 0 {
		if err := s.userStore.UpdateByID(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, platformservice.NewConflictError(consts.MsgNicknameAlreadyExists)
			}
			return nil, s.translateStoreError(err, "更新账号失败")
		}
	}
	return s.GetProfile(ctx, id)
}

// ChangePassword 直接重置密码，不校验旧密码，调用方负责身份确认。
func (s *Service) ChangePassword(ctx context.Context, id uint, newPassword string) error {
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return platformservice.NewInternalError("密码处理失败")
	}
	if err := s.userStore.UpdatePasswordByID(ctx, id, hashed); err != nil {
		return s.translateStoreError(err, "修改密码失败")
	}
	return nil
}

// UpdatePasswordByOldPassword 先校验当前密码，再修改为新密码。
func (s *Service) UpdatePasswordByOldPassword(ctx context.Context, id uint, currentPassword, newPassword string) error {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !utils.VerifyPassword(currentPassword, user.Password) {
		return platformservice.NewUnauthorizedError(consts.MsgPasswordMismatch)
	}
	return s.ChangePassword(ctx, id, newPassword)
}

func (s *Service) ensureUnique(ctx context.Context, field consts.UserField, value string, excludeUserID *uint) error {
	exists, err := s.userStore.FieldExists(ctx, field, value, excludeUserID)
	if err != nil {
		logger.With("user").Errorf("❌ 唯一性检查失败: %v", err)
		return platformservice.NewInternalError("唯一性检查失败")
	}
	if !exists {
		return nil
	}
	if field == consts.UserFieldEmail {
		return platformservice.NewConflictError(consts.MsgEmailAlreadyExists)
	}
	return platformservice.NewConflictError(consts.MsgNicknameAlreadyExists)
}

// duplicateConflict 并发注册撞上唯一索引时，重新判断是哪一个字段冲突。
func (s *Service) duplicateConflict(ctx context.Context, email, nickname string) error {
	if err := s.ensureUnique(ctx, consts.UserFieldEmail, email, nil); err != nil {
		return err
	}
	if err := s.ensureUnique(ctx, consts.UserFieldNickname, nickname, nil); err != nil {
		return err
	}
	return platformservice.NewConflictError(consts.MsgEmailAlreadyExists)
}

func (s *Service) wrapFind(user *model.User, err error) (*model.User, error) {
	if err != nil {
		return nil, s.translateStoreError(err, "查询账号失败")
	}
	return user, nil
}

func (s *Service) translateStoreError(err error, internalMessage string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return platformservice.NewNotFoundError(consts.MsgUserNotFound)
	}
	logger.With("user").Errorf("❌ %s: %v", internalMessage, err)
	return platformservice.NewInternalError(internalMessage)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
