package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitAlgorithm 限流算法类型
type RateLimitAlgorithm string

const (
	// TokenBucket 令牌桶算法
	TokenBucket RateLimitAlgorithm = "token_bucket"
	// FixedWindow 固定窗口算法
	FixedWindow RateLimitAlgorithm = "fixed_window"
)

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	// 请求限制数
	Limit int
	// 窗口大小（秒）
	Window int
	// 限流算法
	Algorithm RateLimitAlgorithm
}

// RateLimiter 限流器接口
type RateLimiter interface {
	Allow(ctx context.Context, key string, config *RateLimitConfig) (*RateLimitResult, error)
}

// RateLimitResult 限流结果
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	// 重置时间（Unix时间戳）
	ResetAt int64
	Limit   int
}

// RedisRateLimiter 基于Redis的限流器
type RedisRateLimiter struct {
	redis *redis.Client
}

// NewRedisRateLimiter 创建Redis限流器
func NewRedisRateLimiter(redis *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{redis: redis}
}

// Allow 检查是否允许请求通过
func (r *RedisRateLimiter) Allow(ctx context.Context, key string, config *RateLimitConfig) (*RateLimitResult, error) {
	switch config.Algorithm {
	case FixedWindow:
		return r.fixedWindow(ctx, key, config)
	default:
		return r.tokenBucket(ctx, key, config)
	}
}

const tokenBucketScript = `
	local bucket = redis.call('HMGET', KEYS[1], 'tokens', 'last_update')
	local capacity = tonumber(ARGV[1])
	local rate = tonumber(ARGV[2])
	local now = tonumber(ARGV[3])

	local tokens = tonumber(bucket[1]) or capacity
	local last_update = tonumber(bucket[2]) or now

	local new_tokens = math.min(capacity, tokens + (now - last_update) * rate)
	local allowed = new_tokens >= 1
	if allowed then
		new_tokens = new_tokens - 1
	end

	redis.call('HSET', KEYS[1], 'tokens', new_tokens, 'last_update', now)
	redis.call('EXPIRE', KEYS[1], math.ceil(capacity / rate) + 1)

	return {allowed and 1 or 0, math.floor(new_tokens), capacity}
`

// tokenBucket 令牌桶算法实现
func (r *RedisRateLimiter) tokenBucket(ctx context.Context, key string, config *RateLimitConfig) (*RateLimitResult, error) {
	now := time.Now().Unix()
	ratePerSecond := float64(config.Limit) / float64(config.Window)

	res, err := r.redis.Eval(ctx, tokenBucketScript, []string{"ratelimit:token:" + key},
		config.Limit, ratePerSecond, now).Result()
	if err != nil {
		return nil, fmt.Errorf("token bucket: %w", err)
	}

	allowed, remaining, limit, err := parseScriptResult(res)
	if err != nil {
		return nil, err
	}
	return &RateLimitResult{
		Allowed:   allowed,
		Remaining: remaining,
		ResetAt:   now + int64(config.Window),
		Limit:     limit,
	}, nil
}

const fixedWindowScript = `
	local current = tonumber(redis.call('GET', KEYS[1]) or 0)
	local limit = tonumber(ARGV[1])
	local allowed = current < limit
	local remaining = -1
	if allowed then
		redis.call('INCR', KEYS[1])
		if current == 0 then
			redis.call('EXPIRE', KEYS[1], tonumber(ARGV[2]))
		end
		remaining = limit - current - 1
	end
	return {allowed and 1 or 0, remaining, limit}
`

// fixedWindow 固定窗口算法实现
func (r *RedisRateLimiter) fixedWindow(ctx context.Context, key string, config *RateLimitConfig) (*RateLimitResult, error) {
	window := time.Now().Unix() / int64(config.Window)
	windowKey := fmt.Sprintf("ratelimit:fixed:%s:%d", key, window)

	res, err := r.redis.Eval(ctx, fixedWindowScript, []string{windowKey}, config.Limit, config.Window+1).Result()
	if err != nil {
		return nil, fmt.Errorf("fixed window: %w", err)
	}

	allowed, remaining, limit, err := parseScriptResult(res)
	if err != nil {
		return nil, err
	}
	return &RateLimitResult{
		Allowed:   allowed,
		Remaining: remaining,
		ResetAt:   (window + 1) * int64(config.Window),
		Limit:     limit,
	}, nil
}

func parseScriptResult(res interface{}) (allowed bool, remaining, limit int, err error) {
	values, ok := res.([]interface{})
	if !ok || len(values) != 3 {
		return false, 0, 0, fmt.Errorf("unexpected rate limit script result %v", res)
	}
	a, _ := values[0].(int64)
	rem, _ := values[1].(int64)
	l, _ := values[2].(int64)
	return a == 1, int(rem), int(l), nil
}

// RateLimit returns a gin middleware limiting requests per client. The key
// is the authenticated user when known, otherwise the client IP.
func RateLimit(limiter RateLimiter, config *RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.FullPath() + ":" + clientKey(c)

		result, err := limiter.Allow(c.Request.Context(), key, config)
		if err != nil {
			// Redis不可用时放行
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": result.ResetAt - time.Now().Unix(),
			})
			return
		}

		c.Next()
	}
}

// clientKey 获取限流主体
func clientKey(c *gin.Context) string {
	if userID, exists := c.Get(UserIDKey); exists {
		return fmt.Sprintf("user:%v", userID)
	}

	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		return "ip:" + strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if ip := c.ClientIP(); ip != "" {
		return "ip:" + ip
	}
	return "ip:unknown"
}
