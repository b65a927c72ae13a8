package service

import (
	"context"
	"runtime"
	"time"

	"community-server/internal/logger"
	moduledto "community-server/internal/modules/system/dto"
	platformservice "community-server/internal/platform/service"
)

// AdminGetServerStats 获取后台仪表盘统计数据。
func (s *Service) AdminGetServerStats(ctx context.Context) (*moduledto.ServerStatsResponse, error) {
	counts, err := s.systemStore.CountContent(ctx, time.Now())
	if err != nil {
		logger.With("system").Errorf("❌ 统计社区数据失败: %v", err)
		return nil, platformservice.NewInternalError("统计社区数据失败")
	}

	return &moduledto.ServerStatsResponse{
		UserCount:    counts.Users,
		PostCount:    counts.Posts,
		CommentCount: counts.Comments,
		LikeCount:    counts.Likes,
		LiveSessions: counts.LiveSessions,
		SystemInfo: moduledto.SystemInfoResponse{
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
		},
	}, nil
}
