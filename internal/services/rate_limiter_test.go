package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/config"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/kv"

	"github.com/stretchr/testify/suite"
)

// failingStore simulates an unreachable KV backend.
type failingStore struct{}

var errStoreDown = errors.New("store down")

func (failingStore) Get(ctx context.Context, key string) (string, error) { return "", errStoreDown }
func (failingStore) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	return errStoreDown
}
func (failingStore) Delete(ctx context.Context, key string) error { return errStoreDown }
func (failingStore) Increment(ctx context.Context, key string) (int64, error) {
	return 0, errStoreDown
}
func (failingStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return errStoreDown
}
func (failingStore) TTL(ctx context.Context, key string) (time.Duration, error) {
	return 0, errStoreDown
}

// RateLimiterTestSuite defines the test suite for the fixed-window limiter
type RateLimiterTestSuite struct {
	suite.Suite
	clock   time.Time
	limiter *rateLimiter
}

// SetupTest runs before each test
func (s *RateLimiterTestSuite) SetupTest() {
	s.clock = time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)
	store := kv.NewMemoryStoreWithClock(func() time.Time { return s.clock })
	s.limiter = NewRateLimiter(store, &config.RateLimitConfig{
		MaxActions: 10,
		Window:     60 * time.Second,
	}).(*rateLimiter)
	s.limiter.now = func() time.Time { return s.clock }
}

// TestRateLimiterSuite runs the test suite
func TestRateLimiterSuite(t *testing.T) {
	suite.Run(t, new(RateLimiterTestSuite))
}

func (s *RateLimiterTestSuite) advance(d time.Duration) {
	s.clock = s.clock.Add(d)
}

func (s *RateLimiterTestSuite) act(key string) {
	allowed, _ := s.limiter.CheckRateLimit(context.Background(), key)
	s.Require().True(allowed)
	s.limiter.RecordAction(context.Background(), key)
}

func (s *RateLimiterTestSuite) TestAllowsUpToLimitThenDenies() {
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		s.act("user-1")
	}

	allowed, retryAfter := s.limiter.CheckRateLimit(ctx, "user-1")
	s.False(allowed)
	s.Greater(retryAfter, time.Duration(0))
	s.LessOrEqual(retryAfter, 60*time.Second)
}

func (s *RateLimiterTestSuite) TestRetryAfterReflectsRemainingWindow() {
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		s.act("user-1")
	}
	s.advance(20 * time.Second)

	allowed, retryAfter := s.limiter.CheckRateLimit(ctx, "user-1")
	s.False(allowed)
	s.InDelta(float64(40*time.Second), float64(retryAfter), float64(time.Second))
}

func (s *RateLimiterTestSuite) TestWindowExpiryResetsCount() {
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		s.act("user-1")
	}
	allowed, _ := s.limiter.CheckRateLimit(ctx, "user-1")
	s.Require().False(allowed)

	s.advance(61 * time.Second)

	allowed, retryAfter := s.limiter.CheckRateLimit(ctx, "user-1")
	s.True(allowed)
	s.Equal(time.Duration(0), retryAfter)
}

func (s *RateLimiterTestSuite) TestKeysAreIndependent() {
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		s.act("user-1")
	}

	allowed, _ := s.limiter.CheckRateLimit(ctx, "user-2")
	s.True(allowed)
}

func (s *RateLimiterTestSuite) TestClearResetsWindow() {
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		s.act("user-1")
	}
	allowed, _ := s.limiter.CheckRateLimit(ctx, "user-1")
	s.Require().False(allowed)

	s.limiter.Clear(ctx, "user-1")

	allowed, _ = s.limiter.CheckRateLimit(ctx, "user-1")
	s.True(allowed)
}

func (s *RateLimiterTestSuite) TestFallbackEnforcesLimitWhenStoreIsDown() {
	ctx := context.Background()
	s.limiter.store = failingStore{}

	for i := 0; i < 10; i++ {
		allowed, _ := s.limiter.CheckRateLimit(ctx, "user-1")
		s.Require().True(allowed)
		s.limiter.RecordAction(ctx, "user-1")
	}

	allowed, retryAfter := s.limiter.CheckRateLimit(ctx, "user-1")
	s.False(allowed)
	s.Greater(retryAfter, time.Duration(0))

	// The fallback window expires too.
	s.advance(61 * time.Second)
	allowed, _ = s.limiter.CheckRateLimit(ctx, "user-1")
	s.True(allowed)
}
