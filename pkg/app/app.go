// Package app 提供应用程序相关的辅助函数
package app

import (
	"time"

	"oraculo/pkg/config"
)

// IsLocal 判断当前是否运行在本地环境
func IsLocal() bool {
	return config.Get("app.env") == "local"
}

// IsProduction 判断当前是否运行在生产环境
func IsProduction() bool {
	return config.Get("app.env") == "production"
}

// IsTesting 判断当前是否运行在测试环境
func IsTesting() bool {
	return config.Get("app.env") == "testing"
}

// TimenowInTimezone 获取当前时间（支持时区设置）
// 从配置文件读取 app.timezone 配置项来确定时区，时区无效时使用本地时区
func TimenowInTimezone() time.Time {
	loc, err := time.LoadLocation(config.GetString("app.timezone", "UTC"))
	if err != nil {
		loc = time.Local
	}
	return time.Now().In(loc)
}

// Today 返回配置时区下的当天日期，格式 2006-01-02
func Today() string {
	return TimenowInTimezone().Format(time.DateOnly)
}
