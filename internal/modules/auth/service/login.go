package service

import (
	"context"

	"community-server/internal/consts"
	"community-server/internal/logger"
	"community-server/internal/metrics"
	authdto "community-server/internal/modules/auth/dto"
	userdto "community-server/internal/modules/user/dto"
	platformservice "community-server/internal/platform/service"
	"community-server/internal/utils"
)

// Signup 注册账号，受 allow_register 设置控制。
func (s *Service) Signup(ctx context.Context, req authdto.SignupRequest) (uint, error) {
	if !s.GetBool(consts.ConfigAllowRegister) {
		return 0, platformservice.NewForbiddenError(consts.MsgRegisterDisabled)
	}

	id, err := s.userService.Create(ctx, userdto.CreateAccountInput{
		Email:    req.Email,
		Password: req.Password,
		Nickname: req.Nickname,
		Avatar:   req.ProfileImage,
	})
	if err != nil {
		metrics.RecordAuthEvent("signup", "failed")
		return 0, err
	}
	metrics.RecordAuthEvent("signup", "success")
	logger.With("auth").WithField("user_id", id).Info("🆕 新账号注册")
	return id, nil
}

// Login 校验邮箱和密码并签发会话。
//
// 账号不存在与密码错误返回同一个 LOGIN_FAILED；封禁账号不能登录；已有存活会话返回 ALREADY_LOGIN。
func (s *Service) Login(ctx context.Context, email, password string) (*authdto.LoginResult, error) {
	user, err := s.userService.FindByEmail(ctx, email)
	if err != nil {
		if platformservice.IsCode(err, platformservice.ErrorCodeNotFound) {
			metrics.RecordAuthEvent("login", "failed")
			return nil, platformservice.NewUnauthorizedError(consts.MsgLoginFailed)
		}
		return nil, err
	}
	if !utils.VerifyPassword(password, user.Password) {
		metrics.RecordAuthEvent("login", "failed")
		return nil, platformservice.NewUnauthorizedError(consts.MsgLoginFailed)
	}

	if err := checkAccountStatus(user); err != nil {
		metrics.RecordAuthEvent("login", "suspended")
		return nil, err
	}

	live, err := s.sessions.HasLiveSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if live {
		metrics.RecordAuthEvent("login", "already_login")
		return nil, platformservice.NewConflictError(consts.MsgAlreadyLogin)
	}

	session, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	metrics.RecordAuthEvent("login", "success")
	return &authdto.LoginResult{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Profile:   s.userService.ToProfile(user),
	}, nil
}

// Logout 吊销 Cookie 对应的会话。Cookie 缺失或无效时什么也不做。
func (s *Service) Logout(ctx context.Context, cookieValue string) error {
	if cookieValue == "" {
		return nil
	}
	token, err := utils.ParseSessionCookie(cookieValue)
	if err != nil {
		return nil
	}
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return err
	}
	metrics.RecordAuthEvent("logout", "success")
	return nil
}
