package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ContentCounts 只统计未删除的数据，会话只统计未过期的。
type ContentCounts struct {
	Users        int64
	Posts        int64
	Comments     int64
	Likes        int64
	LiveSessions int64
}

type SystemStore interface {
	CountContent(ctx context.Context, now time.Time) (*ContentCounts, error)
}

func NewSystemRepository(db *gorm.DB) SystemStore {
	return &SystemRepository{db: db}
}
