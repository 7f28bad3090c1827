package database

import (
	"clinic-service/internal/app/config"
	"context"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to the Redis instance backing the creation lock.
// Lock calls sit on the request path, so dial and read timeouts stay short.
func NewRedisClient(driverConfig *config.DriverConfig, log *zap.Logger) *redis.Client {
	addr := net.JoinHostPort(driverConfig.Redis.Host, driverConfig.Redis.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     driverConfig.Redis.Password,
		DB:           driverConfig.Redis.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Could not connect to Redis", zap.String("addr", addr), zap.Error(err))
	}

	log.Info("Successfully connected to redis", zap.String("addr", addr), zap.Int("db", driverConfig.Redis.DB))
	return rdb
}
