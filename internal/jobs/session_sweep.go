package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"community-server/internal/logger"
	"community-server/internal/metrics"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = 30 * time.Second

// SessionPurger 删除已过期的会话并返回删除条数。
type SessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// SessionSweeper 按 cron 表达式定期清理过期会话。
// 过期会话在读取时已被视为无效，这里只负责回收存储。
type SessionSweeper struct {
	purger SessionPurger
	cron   *cron.Cron
}

func NewSessionSweeper(purger SessionPurger) *SessionSweeper {
	return &SessionSweeper{
		purger: purger,
		cron:   cron.New(cron.WithChain(cron.Recover(cron.PrintfLogger(logger.L())))),
	}
}

// Start 注册并启动任务。spec 为空表示不启用，返回 false。
func (s *SessionSweeper) Start(spec string) (bool, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		logger.With("jobs").Info("ℹ️ 未配置 session.sweep_cron，过期会话清理任务未启用")
		return false, nil
	}
	if _, err := s.cron.AddFunc(spec, func() { _, _ = s.RunOnce(context.Background()) }); err != nil {
		return false, fmt.Errorf("invalid sweep cron %q: %w", spec, err)
	}
	s.cron.Start()
	logger.With("jobs").WithField("cron", spec).Info("⏰ 过期会话清理任务已启动")
	return true, nil
}

// Stop 停止调度，并等待正在执行的任务结束或 ctx 超时。
func (s *SessionSweeper) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		logger.With("jobs").Warn("⚠️ 等待会话清理任务结束超时")
	}
}

// RunOnce 执行一次清理。
func (s *SessionSweeper) RunOnce(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	n, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		logger.With("jobs").Errorf("❌ 清理过期会话失败: %v", err)
		return 0, err
	}
	metrics.RecordSessionsPurged(n)
	if n > 0 {
		logger.With("jobs").WithField("purged", n).Info("🧹 已清理过期会话")
	}
	return n, nil
}
