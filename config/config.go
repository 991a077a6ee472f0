// Package config 站点配置信息
package config

// Initialize 触发 config 目录下各文件的 init 方法
func Initialize() {}
