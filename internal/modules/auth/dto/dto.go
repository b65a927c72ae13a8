package dto

import (
	"time"

	userdto "community-server/internal/modules/user/dto"
)

type SignupRequest struct {
	Email        string `json:"email" binding:"required,email,max=255"`
	Password     string `json:"password" binding:"required,min=8,max=72"`
	Nickname     string `json:"nickname" binding:"required,min=2,max=30"`
	ProfileImage string `json:"profileImage" binding:"omitempty,max=512"`
}

type SignupResponse struct {
	UserID uint `json:"userId"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=72"`
}

// LoginResult 登录成功后由服务层返回，Token 仅用于签发 Cookie，不出现在响应体中。
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Profile   *userdto.UserProfileResponse
}

type LoginResponse struct {
	*userdto.UserProfileResponse
	ExpiresAt time.Time `json:"expiresAt"`
}
