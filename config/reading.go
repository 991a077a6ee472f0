package config

import "oraculo/pkg/config"

func init() {
	config.Add("reading", func() map[string]interface{} {
		return map[string]interface{}{
			// 未指定张数时的默认抽牌数（三张牌：过去、现在、未来）
			"default_count": config.Env("READING_DEFAULT_COUNT", 3),

			// 历史记录默认条数与上限
			"default_history_limit": config.Env("READING_DEFAULT_HISTORY_LIMIT", 20),
			"max_history_limit":     config.Env("READING_MAX_HISTORY_LIMIT", 100),

			// 身份提供方写入的用户标识请求头
			"identity_header": config.Env("READING_IDENTITY_HEADER", "X-User-ID"),
		}
	})
}
