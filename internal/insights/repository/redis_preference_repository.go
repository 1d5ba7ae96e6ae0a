package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const redisPreferencePrefix = "preferences:"

// NewRedisPreferenceRepository creates a PreferenceRepository storing each
// namespace as one Redis hash.
func NewRedisPreferenceRepository(client *redis.Client) PreferenceRepository {
	return &redisPreferenceRepository{client: client}
}

type redisPreferenceRepository struct {
	client *redis.Client
}

func (r *redisPreferenceRepository) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	value, err := r.client.HGet(ctx, redisPreferencePrefix+namespace, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *redisPreferenceRepository) Set(ctx context.Context, namespace, key, value string) error {
	return r.client.HSet(ctx, redisPreferencePrefix+namespace, key, value).Err()
}

func (r *redisPreferenceRepository) Delete(ctx context.Context, namespace, key string) error {
	return r.client.HDel(ctx, redisPreferencePrefix+namespace, key).Err()
}
