package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/kv"

	"github.com/google/uuid"
)

const generationKeyPrefix = "insights:lastgen:"

// GenerationCache records when a user's insights were last generated. An
// entry disappears when its TTL elapses, so a present entry always means
// "fresh". The cache is advisory: losing it only costs a recomputation.
type GenerationCache interface {
	// LastGeneration returns the recorded generation time for the user.
	// The boolean is false when no fresh entry exists.
	LastGeneration(ctx context.Context, userID uuid.UUID) (time.Time, bool, error)

	// MarkGenerated records at as the user's last generation time.
	MarkGenerated(ctx context.Context, userID uuid.UUID, at time.Time) error

	// Invalidate removes the user's entry.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// kvGenerationCache implements GenerationCache on a kv.Store, storing the
// generation timestamp as RFC 3339 with the configured TTL.
type kvGenerationCache struct {
	store kv.Store
	ttl   time.Duration
}

// NewGenerationCache creates a GenerationCache on the given store with the
// given TTL
func NewGenerationCache(store kv.Store, ttl time.Duration) GenerationCache {
	return &kvGenerationCache{store: store, ttl: ttl}
}

func generationKey(userID uuid.UUID) string {
	return generationKeyPrefix + userID.String()
}

func (c *kvGenerationCache) LastGeneration(ctx context.Context, userID uuid.UUID) (time.Time, bool, error) {
	value, err := c.store.Get(ctx, generationKey(userID))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("failed to read generation cache: %w", err)
	}

	at, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		// A corrupt entry is treated as absent; the next run rewrites it.
		return time.Time{}, false, nil
	}
	return at, true, nil
}

func (c *kvGenerationCache) MarkGenerated(ctx context.Context, userID uuid.UUID, at time.Time) error {
	value := at.UTC().Format(time.RFC3339Nano)
	if err := c.store.SetWithTTL(ctx, generationKey(userID), value, c.ttl); err != nil {
		return fmt.Errorf("failed to write generation cache: %w", err)
	}
	return nil
}

func (c *kvGenerationCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.store.Delete(ctx, generationKey(userID)); err != nil {
		return fmt.Errorf("failed to invalidate generation cache: %w", err)
	}
	return nil
}
