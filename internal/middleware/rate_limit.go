package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"community-server/internal/consts"
	"community-server/internal/logger"
	"community-server/internal/modules/common/httpx"
	"community-server/internal/platform/cache"
	"community-server/internal/platform/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

// client 的 lastSeen 记录 UnixNano，读写都走原子操作。
type client struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

func (c *client) touch(now time.Time) {
	c.lastSeen.Store(now.UnixNano())
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch(time.Now())
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch(time.Now())
		return c.limiter
	}

	c := &client{limiter: rate.NewLimiter(i.r, i.b)}
	c.touch(time.Now())
	i.ips.Store(ip, c)

	return c.limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for now := range ticker.C {
		i.evictIdle(now, 3*time.Minute)
	}
}

// evictIdle 移除超过 idle 未访问的 IP。
func (i *IPRateLimiter) evictIdle(now time.Time, idle time.Duration) {
	i.ips.Range(func(key, value interface{}) bool {
		lastSeen := time.Unix(0, value.(*client).lastSeen.Load())
		if now.Sub(lastSeen) > idle {
			i.ips.Delete(key)
		}
		return true
	})
}

// tokenBucketScript 在 Redis 中实现令牌桶，多实例共享同一份配额。
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local rate = tonumber(ARGV[1])
local burst = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local data = redis.call('HMGET', key, 'tokens', 'ts')
local tokens = tonumber(data[1])
local ts = tonumber(data[2])
if tokens == nil then
  tokens = burst
  ts = now
end
tokens = math.min(burst, tokens + math.max(0, now - ts) / 1000 * rate)
local allowed = 0
if tokens >= 1 then
  tokens = tokens - 1
  allowed = 1
end
redis.call('HSET', key, 'tokens', tokens, 'ts', now)
local ttl = 60000
if rate > 0 then
  ttl = math.ceil(burst / rate * 1000) + 1000
end
redis.call('PEXPIRE', key, ttl)
return allowed
`)

// allowByRedisRateLimit 使用 Redis 令牌桶判断是否放行。rps 或 burst 非正时不限流。
func allowByRedisRateLimit(client *redis.Client, scope, ip string, rps float64, burst int) (bool, error) {
	if rps < 0 || burst <= 0 {
		return true, nil
	}
	if client == nil {
		return false, fmt.Errorf("redis client unavailable")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	key := cache.RedisKey("rate", scope, ip)
	allowed, err := tokenBucketScript.Run(ctx, client, []string{key}, rps, burst, time.Now().UnixMilli()).Int()
	if err != nil {
		return false, err
	}
	return allowed == 1, nil
}

// RateLimitMiddleware 创建一个动态限流中间件，限流参数每次请求从运行时设置读取。
// Redis 可用时多实例共享配额，否则回退到进程内令牌桶。
func RateLimitMiddleware(appService *service.AppService, rpsKey string, burstKey string) gin.HandlerFunc {
	// 每个 group（auth/write）共用一个 IPRateLimiter 实例
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		if !appService.GetBool(consts.ConfigRateLimitEnabled) {
			c.Next()
			return
		}

		currentRPS := appService.GetFloat64(rpsKey)
		currentBurst := appService.GetInt(burstKey)
		ip := c.ClientIP()

		if redisClient := cache.GetRedisClient(); redisClient != nil {
			allowed, err := allowByRedisRateLimit(redisClient, rpsKey, ip, currentRPS, currentBurst)
			if err == nil {
				if !allowed {
					httpx.AbortWithMessage(c, http.StatusTooManyRequests, consts.MsgTooManyRequests, nil)
					return
				}
				c.Next()
				return
			}
			logger.With("ratelimit").Warnf("⚠️ Redis 限流失败，回退本地限流: %v", err)
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(currentRPS), currentBurst)
		})

		l := limiter.getLimiter(ip)

		// 动态更新 limit 和 burst (如果配置发生变更)
		if l.Limit() != rate.Limit(currentRPS) {
			l.SetLimit(rate.Limit(currentRPS))
		}
		if l.Burst() != currentBurst {
			l.SetBurst(currentBurst)
		}

		if !l.Allow() {
			httpx.AbortWithMessage(c, http.StatusTooManyRequests, consts.MsgTooManyRequests, nil)
			return
		}
		c.Next()
	}
}
