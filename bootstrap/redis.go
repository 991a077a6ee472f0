package bootstrap

import (
	"fmt"

	"oraculo/pkg/config"
	"oraculo/pkg/logger"
	"oraculo/pkg/redis"
)

// SetupRedis 初始化 Redis，未启用时跳过
func SetupRedis() {
	if !config.GetBool("redis.enabled") {
		logger.InfoString("Redis", "Setup", "Redis 未启用，缓存与限流使用本地模式")
		return
	}

	redis.ConnectRedis(
		fmt.Sprintf("%v:%v", config.GetString("redis.host"), config.GetString("redis.port")),
		config.GetString("redis.username"),
		config.GetString("redis.password"),
		config.GetInt("redis.database"),
	)
	logger.InfoString("Redis", "Setup", "Redis 连接成功")
}
