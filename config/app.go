// Package config 站点配置信息
package config

import "oraculo/pkg/config"

func init() {
	config.Add("app", func() map[string]interface{} {
		return map[string]interface{}{

			// 应用名称
			"name": config.Env("APP_NAME", "Oraculo"),

			// 当前环境，用以区分多环境，一般为 local, stage, production, testing
			"env": config.Env("APP_ENV", "production"),

			// 是否进入调试模式
			"debug": config.Env("APP_DEBUG", false),

			// 应用服务端口
			"port": config.Env("APP_PORT", "3000"),

			// 设置时区，日志记录和每日一牌的默认日期会使用到
			"timezone": config.Env("TIMEZONE", "America/Sao_Paulo"),

			// 优雅关闭的超时时间（秒）
			"shutdown_timeout": config.Env("APP_SHUTDOWN_TIMEOUT", 5),
		}
	})
}
