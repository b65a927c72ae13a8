package repo

import (
	"context"
	"time"

	"community-server/internal/model"

	"gorm.io/gorm"
)

type SystemRepository struct {
	db *gorm.DB
}

func (r *SystemRepository) CountContent(ctx context.Context, now time.Time) (*ContentCounts, error) {
	db := r.db.WithContext(ctx)
	counts := &ContentCounts{}

	if err := db.Model(&model.User{}).Count(&counts.Users).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Post{}).Count(&counts.Posts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Comment{}).Count(&counts.Comments).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Like{}).Count(&counts.Likes).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Session{}).Where("expires_at > ?", now).Count(&counts.LiveSessions).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
