package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"community-server/internal/config"
	"community-server/internal/logger"

	"github.com/redis/go-redis/v9"
)

var (
	redisMu     sync.Mutex
	redisInited bool
	redisClient *redis.Client
)

// GetRedisClient 获取 Redis 客户端；当未启用或不可用时返回 nil，调用方应降级为内存实现。
func GetRedisClient() *redis.Client {
	redisMu.Lock()
	defer redisMu.Unlock()
	if !redisInited {
		redisClient = connect()
		redisInited = true
	}
	return redisClient
}

// RedisKey 基于配置前缀拼接 Redis 键名。
func RedisKey(parts ...string) string {
	prefix := config.Get().Redis.Prefix
	if prefix == "" {
		prefix = "community"
	}
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ":" + strings.Join(parts, ":")
}

func connect() *redis.Client {
	cfg := config.Get().Redis
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logger.With("redis").Warnf("⚠️ Redis 不可用，降级为内存模式: %v", err)
		return nil
	}

	logger.With("redis").Infof("✅ Redis 已连接: %s (db=%d)", cfg.Addr, cfg.DB)
	return client
}

// SetRedisClient 直接注入客户端，测试中用于替换真实连接。
func SetRedisClient(client *redis.Client) {
	redisMu.Lock()
	defer redisMu.Unlock()
	redisClient = client
	redisInited = true
}

// CloseRedisClient 关闭 Redis 客户端连接，之后再次获取会重新连接。
func CloseRedisClient() error {
	redisMu.Lock()
	defer redisMu.Unlock()
	client := redisClient
	redisClient = nil
	redisInited = false
	if client == nil {
		return nil
	}
	if err := client.Close(); err != nil {
		return fmt.Errorf("close redis failed: %w", err)
	}
	return nil
}
