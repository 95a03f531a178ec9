package services

import (
	"context"
	"time"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/dto"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/models"

	"github.com/google/uuid"
)

// RuleEngineInterface evaluates every insight rule for a single
// (user, category) input and collects the candidates that fire
type RuleEngineInterface interface {
	Evaluate(input RuleInput) []models.Insight
}

// InsightServiceInterface drives per-user insight generation
type InsightServiceInterface interface {
	// GenerateInsights runs the full generation workflow for a user.
	// With forceRegenerate false, a fresh cache entry short-circuits to
	// the stored insight set.
	GenerateInsights(ctx context.Context, userID uuid.UUID, forceRegenerate bool) ([]models.Insight, error)

	// GetActiveInsights returns the user's non-dismissed insights,
	// priority descending then recency descending
	GetActiveInsights(userID uuid.UUID) ([]models.Insight, error)
}

// GenerationTriggerInterface decides whether a user's insights should be
// regenerated after transaction writes
type GenerationTriggerInterface interface {
	ShouldTriggerGeneration(ctx context.Context, userID uuid.UUID) (bool, error)

	// CheckAndTriggerForTransactionCount runs off the write path.
	// Generation failures are logged and never surfaced to the caller.
	CheckAndTriggerForTransactionCount(userID uuid.UUID)
}

// BatchSchedulerInterface runs the monthly all-users sweep
type BatchSchedulerInterface interface {
	RunMonthlySweep(ctx context.Context) (*dto.SweepReport, error)
}

// RateLimiterInterface is the per-actor fixed-window limiter guarding
// the on-demand generation endpoint. It degrades to a process-local
// fallback when the backing store is unavailable, so its methods do not
// return errors.
type RateLimiterInterface interface {
	// CheckRateLimit reports whether the key may act now; when denied,
	// retryAfter is the time until the window expires
	CheckRateLimit(ctx context.Context, key string) (allowed bool, retryAfter time.Duration)

	// RecordAction counts one action against the key's current window
	RecordAction(ctx context.Context, key string)

	// Clear resets the key's window (administrative/testing use)
	Clear(ctx context.Context, key string)
}

type TokenServiceInterface interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// TransactionSeederInterface generates realistic budgeting data for
// development environments
type TransactionSeederInterface interface {
	SeedForUser(userID uuid.UUID, months, perMonth int) (*dto.SeedTransactionsResponse, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
