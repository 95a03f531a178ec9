package services

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/config"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/kv"
)

const rateLimitKeyPrefix = "ratelimit:generate:"

// rateLimiter is a counter-based fixed-window limiter: at most
// maxActions per window per key. The KV store is authoritative across
// process instances. When it is unreachable the limiter degrades to a
// process-local timestamp list — explicitly not correctness-bearing
// across instances, it only keeps the feature from failing open or
// closed in degraded environments.
type rateLimiter struct {
	store      kv.Store
	maxActions int64
	window     time.Duration
	now        func() time.Time

	mu       sync.Mutex
	fallback map[string][]time.Time
}

// NewRateLimiter creates the per-actor limiter for the on-demand
// generation path
func NewRateLimiter(store kv.Store, cfg *config.RateLimitConfig) RateLimiterInterface {
	return &rateLimiter{
		store:      store,
		maxActions: int64(cfg.MaxActions),
		window:     cfg.Window,
		now:        time.Now,
		fallback:   map[string][]time.Time{},
	}
}

func rateLimitKey(key string) string {
	return rateLimitKeyPrefix + key
}

// CheckRateLimit reports whether the key may act now. When denied,
// retryAfter is the time remaining until the current window expires.
func (r *rateLimiter) CheckRateLimit(ctx context.Context, key string) (bool, time.Duration) {
	value, err := r.store.Get(ctx, rateLimitKey(key))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return true, 0
		}
		slog.Warn("rate limit store unavailable, using local fallback",
			"key", key,
			"error", err)
		return r.checkFallback(key)
	}

	count, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// A corrupt counter reads as an open window.
		return true, 0
	}
	if count < r.maxActions {
		return true, 0
	}

	retryAfter, err := r.store.TTL(ctx, rateLimitKey(key))
	if err != nil || retryAfter <= 0 {
		retryAfter = r.window
	}
	return false, retryAfter
}

// RecordAction counts one action against the key's current window,
// starting a new window (and its TTL) when none exists
func (r *rateLimiter) RecordAction(ctx context.Context, key string) {
	count, err := r.store.Increment(ctx, rateLimitKey(key))
	if err != nil {
		slog.Warn("rate limit store unavailable, recording locally",
			"key", key,
			"error", err)
		r.recordFallback(key)
		return
	}

	if count == 1 {
		if err := r.store.Expire(ctx, rateLimitKey(key), r.window); err != nil {
			slog.Warn("failed to set rate limit window expiry",
				"key", key,
				"error", err)
		}
	}
}

// Clear resets the key's window in both the store and the fallback
func (r *rateLimiter) Clear(ctx context.Context, key string) {
	if err := r.store.Delete(ctx, rateLimitKey(key)); err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		slog.Warn("failed to clear rate limit window",
			"key", key,
			"error", err)
	}

	r.mu.Lock()
	delete(r.fallback, key)
	r.mu.Unlock()
}

func (r *rateLimiter) checkFallback(key string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	actions := r.pruneLocked(key)
	if int64(len(actions)) < r.maxActions {
		return true, 0
	}

	oldest := actions[0]
	retryAfter := r.window - r.now().Sub(oldest)
	if retryAfter <= 0 {
		retryAfter = time.Second
	}
	return false, retryAfter
}

func (r *rateLimiter) recordFallback(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	actions := r.pruneLocked(key)
	r.fallback[key] = append(actions, r.now())
}

// pruneLocked drops timestamps that have aged out of the window.
// Caller holds r.mu.
func (r *rateLimiter) pruneLocked(key string) []time.Time {
	cutoff := r.now().Add(-r.window)

	actions := r.fallback[key][:0]
	for _, at := range r.fallback[key] {
		if at.After(cutoff) {
			actions = append(actions, at)
		}
	}

	if len(actions) == 0 {
		delete(r.fallback, key)
		return nil
	}
	r.fallback[key] = actions
	return actions
}
