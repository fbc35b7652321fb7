package cache

import (
	"context"
	"time"
)

// Cache is the key-addressed persistence contract the deliverable editors
// write through: get a JSON document by key, set one, delete one. Callers
// never touch the underlying store directly.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, parts ...string) string {
	key := prefix
	for _, p := range parts {
		key += ":" + p
	}

	return key
}

const DeliverableKeyPrefix = "entregable"
