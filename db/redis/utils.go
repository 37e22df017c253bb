package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Set sets a key-value pair in Redis.
func Set(ctx context.Context, client redis.Cmdable, key string, value interface{}, ttl time.Duration) error {
	return client.Set(ctx, key, value, ttl).Err()
}

// Get retrieves the value of a key from Redis.
func Get(ctx context.Context, client redis.Cmdable, key string) ([]byte, error) {
	return client.Get(ctx, key).Bytes()
}

// Del deletes keys from Redis and reports how many existed.
func Del(ctx context.Context, client redis.Cmdable, keys ...string) (int64, error) {
	return client.Del(ctx, keys...).Result()
}

// SAdd adds members to a set in Redis.
func SAdd(ctx context.Context, client redis.Cmdable, key string, members ...interface{}) error {
	return client.SAdd(ctx, key, members...).Err()
}

// SRem removes members from a set in Redis.
func SRem(ctx context.Context, client redis.Cmdable, key string, members ...interface{}) error {
	return client.SRem(ctx, key, members...).Err()
}

// SMembers lists the members of a set in Redis.
func SMembers(ctx context.Context, client redis.Cmdable, key string) ([]string, error) {
	return client.SMembers(ctx, key).Result()
}
