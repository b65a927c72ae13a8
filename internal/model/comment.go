package model

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	PostID    uint           `json:"post_id" gorm:"not null;index"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	User      User           `gorm:"foreignKey:UserID;references:ID" json:"-"`
}
