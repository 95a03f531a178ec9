package cache

import (
	"context"
	"testing"
	"time"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/kv"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// GenerationCacheTestSuite defines the test suite for the generation cache
type GenerationCacheTestSuite struct {
	suite.Suite
	clock  time.Time
	store  kv.Store
	cache  GenerationCache
	userID uuid.UUID
}

// SetupTest runs before each test
func (s *GenerationCacheTestSuite) SetupTest() {
	s.clock = time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)
	s.store = kv.NewMemoryStoreWithClock(func() time.Time { return s.clock })
	s.cache = NewGenerationCache(s.store, time.Hour)
	s.userID = uuid.New()
}

// TestGenerationCacheSuite runs the test suite
func TestGenerationCacheSuite(t *testing.T) {
	suite.Run(t, new(GenerationCacheTestSuite))
}

func (s *GenerationCacheTestSuite) TestLastGeneration_NoEntry() {
	_, fresh, err := s.cache.LastGeneration(context.Background(), s.userID)

	s.NoError(err)
	s.False(fresh)
}

func (s *GenerationCacheTestSuite) TestMarkGeneratedThenRead() {
	ctx := context.Background()
	at := s.clock.Add(-5 * time.Minute)

	s.Require().NoError(s.cache.MarkGenerated(ctx, s.userID, at))

	got, fresh, err := s.cache.LastGeneration(ctx, s.userID)
	s.NoError(err)
	s.True(fresh)
	s.True(got.Equal(at))
}

func (s *GenerationCacheTestSuite) TestEntryExpiresWithTTL() {
	ctx := context.Background()
	s.Require().NoError(s.cache.MarkGenerated(ctx, s.userID, s.clock))

	s.clock = s.clock.Add(time.Hour + time.Second)

	_, fresh, err := s.cache.LastGeneration(ctx, s.userID)
	s.NoError(err)
	s.False(fresh)
}

func (s *GenerationCacheTestSuite) TestCorruptEntryReadsAsAbsent() {
	ctx := context.Background()
	s.Require().NoError(s.store.SetWithTTL(ctx, "insights:lastgen:"+s.userID.String(), "not a timestamp", time.Hour))

	_, fresh, err := s.cache.LastGeneration(ctx, s.userID)
	s.NoError(err)
	s.False(fresh)
}

func (s *GenerationCacheTestSuite) TestInvalidate() {
	ctx := context.Background()
	s.Require().NoError(s.cache.MarkGenerated(ctx, s.userID, s.clock))

	s.Require().NoError(s.cache.Invalidate(ctx, s.userID))

	_, fresh, err := s.cache.LastGeneration(ctx, s.userID)
	s.NoError(err)
	s.False(fresh)
}

func (s *GenerationCacheTestSuite) TestUsersAreIndependent() {
	ctx := context.Background()
	otherUser := uuid.New()
	s.Require().NoError(s.cache.MarkGenerated(ctx, s.userID, s.clock))

	_, fresh, err := s.cache.LastGeneration(ctx, otherUser)
	s.NoError(err)
	s.False(fresh)
}
