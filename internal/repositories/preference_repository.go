package repositories

import (
	"context"
	"sync"

	apperrors "equipment-admin/pkg/errors"
)

// PreferenceRepositoryInterface — key/value сховище налаштувань
// користувача: період, локація та видимі колонки таблиць.
type PreferenceRepositoryInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Del(ctx context.Context, keys ...string) error
}

// MemoryPreferenceRepository — типова реалізація у пам'яті процесу.
type MemoryPreferenceRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryPreferenceRepository() *MemoryPreferenceRepository {
	return &MemoryPreferenceRepository{values: make(map[string]string)}
}

func (r *MemoryPreferenceRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (r *MemoryPreferenceRepository) Set(ctx context.Context, key string, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

func (r *MemoryPreferenceRepository) Del(ctx context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		delete(r.values, k)
	}
	return nil
}
