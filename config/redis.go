package config

import (
	"fmt"

	"github.com/go-redis/redis"
)

// InitRedis 建立 Redis 连接并做一次 Ping 检查
func InitRedis(cfg *Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		Password: cfg.Redis.Password,
	})

	if err := rdb.Ping().Err(); err != nil {
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}

	return rdb, nil
}
