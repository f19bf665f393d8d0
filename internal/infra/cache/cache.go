package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss возвращается, когда значения по ключу нет
var ErrCacheMiss = errors.New("cache: miss")

// Cache байтовый кеш с TTL. Сериализация значения остаётся на вызывающем
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Noop заглушка кеша для окружений без Redis
type Noop struct{}

// NewNoop создает кеш-заглушку
func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) Get(_ context.Context, _ string) ([]byte, error) {
	return nil, ErrCacheMiss
}

func (n *Noop) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}

func (n *Noop) Delete(_ context.Context, _ string) error {
	return nil
}
