package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/cache"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/config"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/repositories"

	"github.com/google/uuid"
)

type generationTrigger struct {
	transactionRepo  repositories.TransactionRepositoryInterface
	generationCache  cache.GenerationCache
	insightService   InsightServiceInterface
	metrics          MetricsRecorderInterface
	triggerThreshold int64
}

// NewGenerationTrigger creates the policy deciding whether a user's
// insights should be regenerated after transaction writes
func NewGenerationTrigger(
	transactionRepo repositories.TransactionRepositoryInterface,
	generationCache cache.GenerationCache,
	insightService InsightServiceInterface,
	metrics MetricsRecorderInterface,
	cfg *config.InsightsConfig,
) GenerationTriggerInterface {
	return &generationTrigger{
		transactionRepo:  transactionRepo,
		generationCache:  generationCache,
		insightService:   insightService,
		metrics:          metrics,
		triggerThreshold: int64(cfg.TriggerThreshold),
	}
}

// ShouldTriggerGeneration is true when the user has never generated
// (no cache entry), or when enough transactions have been created since
// the recorded last generation
func (t *generationTrigger) ShouldTriggerGeneration(ctx context.Context, userID uuid.UUID) (bool, error) {
	lastGeneration, exists, err := t.generationCache.LastGeneration(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check generation cache: %w", err)
	}
	if !exists {
		return true, nil
	}

	count, err := t.transactionRepo.CountCreatedSince(userID, lastGeneration)
	if err != nil {
		return false, fmt.Errorf("failed to count recent transactions: %w", err)
	}
	return count >= t.triggerThreshold, nil
}

// CheckAndTriggerForTransactionCount runs after a transaction write, off
// the request's critical path. A fresh cache entry skips everything: the
// count threshold only meaningfully applies once per TTL window. When the
// threshold is met, generation runs in a detached goroutine; its errors
// are logged and discarded, never surfaced to the originating write.
// There is no guarantee that insights exist by the time the write
// returns.
func (t *generationTrigger) CheckAndTriggerForTransactionCount(userID uuid.UUID) {
	ctx := context.Background()

	_, fresh, err := t.generationCache.LastGeneration(ctx, userID)
	if err != nil {
		slog.Warn("trigger cache check failed",
			"user_id", userID,
			"error", err)
		return
	}
	if fresh {
		// TTL gate holds even when the count would qualify; the next
		// check after expiry picks it up.
		return
	}

	shouldTrigger, err := t.ShouldTriggerGeneration(ctx, userID)
	if err != nil {
		slog.Warn("trigger evaluation failed",
			"user_id", userID,
			"error", err)
		return
	}
	if !shouldTrigger {
		return
	}

	t.metrics.IncrementCounter("insights.trigger.fired", nil)
	go func() {
		if _, err := t.insightService.GenerateInsights(context.Background(), userID, false); err != nil {
			slog.Error("background insight generation failed",
				"user_id", userID,
				"error", err)
			t.metrics.IncrementCounter("insights.trigger.failed", nil)
		}
	}()
}
