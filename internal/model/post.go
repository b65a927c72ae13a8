package model

import (
	"time"

	"gorm.io/gorm"
)

type Post struct {
	ID           uint `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
	UserID       uint           `json:"user_id" gorm:"not null;index"`
	Title        string         `json:"title" gorm:"not null;size:255"`
	Content      string         `json:"content" gorm:"type:text;not null"`
	Image        string         `json:"image"`
	LikeCount    int64          `json:"like_count" gorm:"not null;default:0"`
	CommentCount int64          `json:"comment_count" gorm:"not null;default:0"`
	ViewCount    int64          `json:"view_count" gorm:"not null;default:0"`
	User         User           `gorm:"foreignKey:UserID;references:ID" json:"-"`
}
