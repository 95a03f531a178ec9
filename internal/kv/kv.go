package kv

import (
	"context"
	"errors"
	"time"
)

var ErrKeyNotFound = errors.New("key not found")

// Store is the minimal key-value contract the insight core needs from an
// external store: TTL-scoped values plus an atomic counter for the rate
// limiter. Redis is the authoritative implementation; the in-memory
// implementation exists for single-process and test use only and carries
// no cross-instance guarantees.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// Increment atomically increments the counter at key and returns the
	// new value. A key that does not exist counts from zero.
	Increment(ctx context.Context, key string) (int64, error)

	// Expire sets the TTL on an existing key.
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// TTL returns the remaining lifetime of key, or ErrKeyNotFound.
	TTL(ctx context.Context, key string) (time.Duration, error)
}
