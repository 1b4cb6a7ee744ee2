package repositories

import (
	"context"
	"errors"

	apperrors "equipment-admin/pkg/errors"

	"github.com/go-redis/redis/v8"
)

// RedisPreferenceRepository зберігає налаштування у Redis, щоб вони
// переживали перезапуск процесу. Вмикається через REDIS_ADDRESS.
type RedisPreferenceRepository struct {
	client *redis.Client
}

func NewRedisPreferenceRepository(client *redis.Client) PreferenceRepositoryInterface {
	return &RedisPreferenceRepository{client: client}
}

func (r *RedisPreferenceRepository) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperrors.ErrNotFound
	}
	return v, err
}

func (r *RedisPreferenceRepository) Set(ctx context.Context, key string, value string) error {
	// Налаштування живуть без TTL: це не кеш, а збережений стан панелі.
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisPreferenceRepository) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}
