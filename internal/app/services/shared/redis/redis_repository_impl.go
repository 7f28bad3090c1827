package redis

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// compareAndDeleteScript returns 1 when the key was deleted, 0 when it was
// missing and -1 when another value holds it.
var compareAndDeleteScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if not current then
	return 0
end
if current == ARGV[1] then
	redis.call("DEL", KEYS[1])
	return 1
end
return -1
`)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) SetNX(ctx context.Context, key, value string, expiration time.Duration) (bool, error) {
	acquired, err := r.client.SetNX(ctx, key, value, expiration).Result()
	if err != nil {
		return false, exceptions.ErrRedisSet(err)
	}
	return acquired, nil
}

func (r *redisRepository) CompareAndDelete(ctx context.Context, key, expected string) (contracts.KeyRelease, error) {
	result, err := compareAndDeleteScript.Run(ctx, r.client, []string{key}, expected).Int64()
	if err != nil {
		return 0, exceptions.ErrRedisDelete(err)
	}

	switch result {
	case 1:
		return contracts.KeyReleased, nil
	case 0:
		return contracts.KeyMissing, nil
	default:
		return contracts.KeyHeldByOther, nil
	}
}
