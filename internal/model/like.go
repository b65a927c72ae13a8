package model

import "time"

// Like 以 (UserID, PostID) 为联合主键，同一用户对同一帖子最多一条。
type Like struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	PostID    uint `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time
}
