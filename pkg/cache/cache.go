// Package cache 缓存存储抽象
package cache

import (
	"time"

	"oraculo/pkg/redis"
)

// Store 缓存存储接口
type Store interface {
	Set(key string, value string, expireTime time.Duration)
	Get(key string) string
	Has(key string) bool
	Forget(key string)
}

// RedisStore 基于 Redis 的缓存实现
type RedisStore struct {
	RedisClient *redis.RedisClient
	KeyPrefix   string
}

// NewRedisStore 使用已连接的 Redis 客户端创建缓存
func NewRedisStore(client *redis.RedisClient, prefix string) *RedisStore {
	return &RedisStore{
		RedisClient: client,
		KeyPrefix:   prefix + ":cache:",
	}
}

// Set 写入缓存
func (s *RedisStore) Set(key string, value string, expireTime time.Duration) {
	s.RedisClient.Set(s.KeyPrefix+key, value, expireTime)
}

// Get 读取缓存，不存在时返回空字符串
func (s *RedisStore) Get(key string) string {
	return s.RedisClient.Get(s.KeyPrefix + key)
}

// Has 判断是否存在
func (s *RedisStore) Has(key string) bool {
	return s.RedisClient.Has(s.KeyPrefix + key)
}

// Forget 删除缓存
func (s *RedisStore) Forget(key string) {
	s.RedisClient.Del(s.KeyPrefix + key)
}
