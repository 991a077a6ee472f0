package config

import "oraculo/pkg/config"

func init() {
	config.Add("catalog", func() map[string]interface{} {
		return map[string]interface{}{
			// 种子文件（.toml 或 .json），为空时使用内置的大阿卡纳牌组
			"seed_file": config.Env("CATALOG_SEED_FILE", ""),

			// 卡牌快照在 Redis 中的缓存时间（秒）
			"cache_ttl": config.Env("CATALOG_CACHE_TTL", 3600),

			// 定时刷新卡牌快照的 cron 表达式
			"refresh_schedule": config.Env("CATALOG_REFRESH_SCHEDULE", "*/30 * * * *"),

			// 公开塔罗牌数据接口
			"api_url":     config.Env("CATALOG_API_URL", "https://tarotapi.dev/api/v1"),
			"api_timeout": config.Env("CATALOG_API_TIMEOUT", 30),
		}
	})
}
