package dto

import "time"

// CreateAccountInput 注册时写入账号所需的字段，Avatar 可为空。
type CreateAccountInput struct {
	Email    string
	Password string
	Nickname string
	Avatar   string
}

type UpdateProfileRequest struct {
	Nickname     *string `json:"nickname" binding:"omitempty,min=2,max=30"`
	ProfileImage *string `json:"profileImage" binding:"omitempty,max=512"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=72"`
}

type UpdateStatusRequest struct {
	Status int `json:"status" binding:"required,oneof=1 2 3"`
}

type UserProfileResponse struct {
	UserID       uint       `json:"userId"`
	Email        string     `json:"email"`
	Nickname     string     `json:"nickname"`
	ProfileImage string     `json:"profileImage"`
	Status       int        `json:"status"`
	SuspendedAt  *time.Time `json:"suspendedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type AvatarResponse struct {
	ProfileImage string `json:"profileImage"`
}
