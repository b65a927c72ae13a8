package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID          uint `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
	Email       string         `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Nickname    string         `json:"nickname" gorm:"uniqueIndex;not null;size:64"`
	Password    string         `json:"-" gorm:"not null"`
	Status      int            `json:"status" gorm:"not null;default:1"` // 1: 正常, 2: 临时封禁, 3: 永久封禁
	SuspendedAt *time.Time     `json:"suspended_at"`
	Avatar      string         `json:"avatar"`
}
