package middlewares

import (
	"strings"
	"sync"
	"time"

	"oraculo/pkg/app"
	"oraculo/pkg/limiter"
	"oraculo/pkg/logger"
	"oraculo/pkg/redis"
	"oraculo/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"golang.org/x/time/rate"
)

const (
	// DefaultBurst 默认突发请求数量
	DefaultBurst = 100
)

var (
	// 用于存储限流器的并发安全缓存
	limiters sync.Map
	// 限流器最近一次被访问的时间
	lastAccess  sync.Map
	cleanupOnce sync.Once
)

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	Limit string
	Burst int
}

// LimitIP 全局限流中间件，针对 IP 进行限流
//
// 支持的限流格式:
// - 5 reqs/second:   "5-S"
// - 10 reqs/minute:  "10-M"
// - 1000 reqs/hour:  "1000-H"
// - 2000 reqs/day:   "2000-D"
//
// 启用 Redis 时计数保存在 Redis 中，否则使用进程内令牌桶
func LimitIP(limit string) gin.HandlerFunc {
	// 测试环境使用较大限制
	if app.IsTesting() {
		limit = "1000000-H"
	}

	return createLimiterHandler(limiter.GetKeyIP, RateLimitConfig{
		Limit: limit,
		Burst: DefaultBurst,
	})
}

// LimitPerRoute 针对单个路由的限流中间件，基于 IP + 路由路径
func LimitPerRoute(limit string) gin.HandlerFunc {
	if app.IsTesting() {
		limit = "1000000-H"
	}

	return createLimiterHandler(limiter.GetKeyRouteWithIP, RateLimitConfig{
		Limit: limit,
		Burst: DefaultBurst,
	})
}

// createLimiterHandler 创建限流处理器
// keyFunc: 用于生成限流键的函数
// config: 限流配置
func createLimiterHandler(keyFunc func(*gin.Context) string, config RateLimitConfig) gin.HandlerFunc {
	// 定期清理过期的限流器
	cleanupOnce.Do(func() {
		go cleanupLimiters()
	})

	return func(c *gin.Context) {
		key := keyFunc(c)

		if redis.Redis != nil {
			limitWithRedis(c, key, config.Limit)
			return
		}

		// 获取或创建限流器
		lim, err := getLimiter(key, config)
		if err != nil {
			logger.ErrorString("限流器", "创建失败", err.Error())
			// 降级处理：允许请求通过
			c.Next()
			return
		}

		// 尝试获取令牌
		if !lim.Allow() {
			response.Abort429(c)
			return
		}

		// 设置 RateLimit 相关响应头
		c.Header("X-RateLimit-Limit", cast.ToString(float64(lim.Limit())))
		c.Header("X-RateLimit-Remaining", cast.ToString(int(lim.Tokens())))
		c.Header("X-RateLimit-Reset", cast.ToString(time.Now().Add(time.Second).Unix()))

		c.Next()
	}
}

// limitWithRedis 多实例共享计数
func limitWithRedis(c *gin.Context, key, limit string) {
	rate, err := limiter.CheckRate(c, key, limit)
	if err != nil {
		logger.LogIf(err)
		c.Next()
		return
	}

	c.Header("X-RateLimit-Limit", cast.ToString(rate.Limit))
	c.Header("X-RateLimit-Remaining", cast.ToString(rate.Remaining))
	c.Header("X-RateLimit-Reset", cast.ToString(rate.Reset))

	if rate.Reached {
		response.Abort429(c)
		return
	}
	c.Next()
}

// getLimiter 获取或创建限流器
func getLimiter(key string, config RateLimitConfig) (*rate.Limiter, error) {
	lastAccess.Store(key, time.Now())

	// 限流配置不同的中间件各自计数
	cacheKey := config.Limit + "|" + key
	if lim, exists := limiters.Load(cacheKey); exists {
		return lim.(*rate.Limiter), nil
	}

	// 解析限流配置
	r, err := limiter.ParseLimit(config.Limit)
	if err != nil {
		return nil, err
	}

	// 创建新的限流器
	lim := rate.NewLimiter(rate.Limit(r.Rate), config.Burst)

	// 并发安全地存储限流器
	actual, _ := limiters.LoadOrStore(cacheKey, lim)
	return actual.(*rate.Limiter), nil
}

// cleanupLimiters 定期清理超过 24 小时未使用的限流器
func cleanupLimiters() {
	ticker := time.NewTicker(1 * time.Hour)
	for range ticker.C {
		now := time.Now()
		limiters.Range(func(k, value interface{}) bool {
			cacheKey := k.(string)
			_, key, _ := strings.Cut(cacheKey, "|")
			if t, ok := lastAccess.Load(key); ok && now.Sub(t.(time.Time)) <= 24*time.Hour {
				return true
			}
			limiters.Delete(cacheKey)
			lastAccess.Delete(key)
			return true
		})
	}
}
