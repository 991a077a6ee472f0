package config

import (
	"oraculo/pkg/config"
)

func init() {
	config.Add("redis", func() map[string]interface{} {
		return map[string]interface{}{
			// 未启用时卡牌快照直接读数据库，限流使用进程内存
			"enabled": config.Env("REDIS_ENABLED", false),

			"host":     config.Env("REDIS_HOST", "127.0.0.1"),
			"port":     config.Env("REDIS_PORT", "6379"),
			"username": config.Env("REDIS_USERNAME", ""),
			"password": config.Env("REDIS_PASSWORD", ""),

			// 业务类存储使用 1 号库（包括限流和卡牌缓存）
			"database": config.Env("REDIS_MAIN_DB", 1),
		}
	})
}
