package service

import (
	"context"
	"time"

	"community-server/internal/consts"
	"community-server/internal/metrics"
	"community-server/internal/model"
	platformservice "community-server/internal/platform/service"
	"community-server/internal/utils"
)

// Authenticate 把请求携带的会话 Cookie 解析为已认证身份。
//
// 依次检查：Cookie 缺失、签名或会话无效、账号不存在、账号封禁状态。
func (s *Service) Authenticate(ctx context.Context, cookieValue string) (*platformservice.Identity, error) {
	if cookieValue == "" {
		return nil, platformservice.NewUnauthorizedError(consts.MsgLoginRequired)
	}

	token, err := utils.ParseSessionCookie(cookieValue)
	if err != nil {
		metrics.RecordAuthEvent("authenticate", "invalid_cookie")
		return nil, platformservice.NewUnauthorizedError(consts.MsgInvalidSession)
	}

	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.userService.FindByID(ctx, userID)
	if err != nil {
		if platformservice.IsCode(err, platformservice.ErrorCodeNotFound) {
			return nil, platformservice.NewUnauthorizedError(consts.MsgInvalidSession)
		}
		return nil, err
	}

	if err := checkAccountStatus(user); err != nil {
		metrics.RecordAuthEvent("authenticate", "suspended")
		return nil, err
	}

	return &platformservice.Identity{
		ID:       user.ID,
		Email:    user.Email,
		Nickname: user.Nickname,
		Avatar:   s.userService.ToProfile(user).ProfileImage,
		Status:   user.Status,
	}, nil
}

// checkAccountStatus 永久封禁与临时封禁分别返回不同的错误，临时封禁附带开始时间。
func checkAccountStatus(user *model.User) error {
	switch user.Status {
	case consts.UserStatusSuspendedPermanent:
		return platformservice.NewForbiddenError(consts.MsgAccountSuspended)
	case consts.UserStatusSuspendedTemporary:
		data := map[string]any{"suspendedAt": nil}
		if user.SuspendedAt != nil {
			data["suspendedAt"] = user.SuspendedAt.UTC().Format(time.RFC3339)
		}
		return platformservice.NewServiceErrorWithData(platformservice.ErrorCodeForbidden, consts.MsgAccountTemporarilySuspended, data)
	}
	return nil
}
