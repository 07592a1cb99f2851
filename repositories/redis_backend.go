// File: /repositories/redis_backend.go
package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend keeps one hash per session and refreshes its TTL on every write.
type RedisBackend struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewRedisBackend(client *redis.Client, ttl time.Duration) *RedisBackend {
	return &RedisBackend{client: client, ttl: ttl}
}

func sessionHash(sessionID string) string {
	return "session:" + sessionID + ":storage"
}

func (r *RedisBackend) Get(ctx context.Context, sessionID, key string) (string, error) {
	v, err := r.client.HGet(ctx, sessionHash(sessionID), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	return v, err
}

func (r *RedisBackend) Set(ctx context.Context, sessionID, key, value string) error {
	hash := sessionHash(sessionID)
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, hash, key, value)
	if r.ttl > 0 {
		pipe.Expire(ctx, hash, r.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *RedisBackend) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.HDel(ctx, sessionHash(sessionID), keys...).Err()
}

func (r *RedisBackend) Clear(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionHash(sessionID)).Err()
}

func (r *RedisBackend) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
