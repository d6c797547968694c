// Package redisstore stores documents as redis string keys.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/odyssey-erp/registrar/internal/storage"
)

// Backend keeps each document under prefix+name.
type Backend struct {
	client *redis.Client
	prefix string
}

// New wraps an existing client. The backend owns the client from then on.
func New(client *redis.Client, prefix string) *Backend {
	return &Backend{client: client, prefix: prefix}
}

func (b *Backend) key(name string) string {
	return b.prefix + name
}

// Read fetches the document.
func (b *Backend) Read(ctx context.Context, name string) ([]byte, error) {
	raw, err := b.client.Get(ctx, b.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("storage/redis: get %s: %w", name, err)
	}
	return raw, nil
}

// Write stores the document without expiry.
func (b *Backend) Write(ctx context.Context, name string, payload []byte) error {
	if err := b.client.Set(ctx, b.key(name), payload, 0).Err(); err != nil {
		return fmt.Errorf("storage/redis: set %s: %w", name, err)
	}
	return nil
}

// Close closes the client.
func (b *Backend) Close() error {
	return b.client.Close()
}
