package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/cache"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/config"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/models"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/repositories"

	"github.com/google/uuid"
)

type insightService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	insightRepo     repositories.InsightRepositoryInterface
	generationCache cache.GenerationCache
	rules           RuleEngineInterface
	metrics         MetricsRecorderInterface
	trailingMonths  int
	now             func() time.Time
}

// NewInsightService creates the insight generation orchestrator
func NewInsightService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	insightRepo repositories.InsightRepositoryInterface,
	generationCache cache.GenerationCache,
	rules RuleEngineInterface,
	metrics MetricsRecorderInterface,
	cfg *config.InsightsConfig,
) InsightServiceInterface {
	return &insightService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		budgetRepo:      budgetRepo,
		insightRepo:     insightRepo,
		generationCache: generationCache,
		rules:           rules,
		metrics:         metrics,
		trailingMonths:  cfg.TrailingMonths,
		now:             time.Now,
	}
}

// GenerateInsights runs the full per-user generation workflow: cache
// check, data fetch over the trailing window, rule sweep per category,
// stable sort by priority, atomic replace of the stored set, cache
// refresh. The cache is only written after a successful replace, so a
// failed run retries the full computation instead of reusing stale data.
//
// There is no per-user mutual exclusion: two concurrent calls can both
// pass the cache check and both replace; the later replace wins. Insights
// are advisory, so this race is accepted.
func (s *insightService) GenerateInsights(ctx context.Context, userID uuid.UUID, forceRegenerate bool) ([]models.Insight, error) {
	start := s.now()

	if !forceRegenerate {
		if _, fresh, err := s.generationCache.LastGeneration(ctx, userID); err != nil {
			// Cache read failures degrade to a full regeneration.
			slog.Warn("generation cache read failed, regenerating",
				"user_id", userID,
				"error", err)
		} else if fresh {
			s.metrics.IncrementCounter("insights.generation.cache_hit", nil)
			return s.GetActiveInsights(userID)
		}
	}

	insights, err := s.computeInsights(userID)
	if err != nil {
		s.metrics.IncrementCounter("insights.generation.failed", nil)
		return nil, err
	}

	if err := s.insightRepo.ReplaceForUser(userID, insights); err != nil {
		s.metrics.IncrementCounter("insights.generation.failed", nil)
		slog.Error("failed to replace insights",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to store insights: %w", err)
	}

	// An empty result is still a valid, cacheable outcome.
	if err := s.generationCache.MarkGenerated(ctx, userID, s.now()); err != nil {
		slog.Warn("failed to update generation cache",
			"user_id", userID,
			"error", err)
	}

	elapsed := s.now().Sub(start)
	s.metrics.IncrementCounter("insights.generation.success", nil)
	s.metrics.RecordProcessingTime("insights.generation", elapsed)
	s.metrics.RecordGauge("insights.generated_per_run", float64(len(insights)), nil)

	slog.Info("insights generated",
		"user_id", userID,
		"count", len(insights),
		"forced", forceRegenerate,
		"elapsed_ms", elapsed.Milliseconds())

	return insights, nil
}

// GetActiveInsights returns the user's current non-dismissed insights
func (s *insightService) GetActiveInsights(userID uuid.UUID) ([]models.Insight, error) {
	insights, err := s.insightRepo.GetActiveByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read insights: %w", err)
	}
	return insights, nil
}

func (s *insightService) computeInsights(userID uuid.UUID) ([]models.Insight, error) {
	currentMonth := monthStart(s.now())
	windowStart := currentMonth.AddDate(0, -s.trailingMonths, 0)
	windowEnd := currentMonth.AddDate(0, 1, 0).Add(-time.Nanosecond)

	transactions, err := s.transactionRepo.GetByUserKindAndDateRange(
		userID, models.TransactionKindExpense, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	categories, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	if len(transactions) == 0 || len(categories) == 0 {
		return []models.Insight{}, nil
	}

	budgets, err := s.budgetRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budgets: %w", err)
	}

	byCategory := groupByCategory(transactions)
	budgetByCategory := make(map[uuid.UUID]*models.Budget, len(budgets))
	for i := range budgets {
		budgetByCategory[budgets[i].CategoryID] = &budgets[i]
	}

	var insights []models.Insight
	for i := range categories {
		category := &categories[i]
		categoryTxns := byCategory[category.ID]
		if len(categoryTxns) == 0 {
			continue
		}

		insights = append(insights, s.rules.Evaluate(RuleInput{
			UserID:       userID,
			CategoryID:   category.ID,
			CategoryName: category.Name,
			Transactions: categoryTxns,
			CurrentMonth: currentMonth,
			Budget:       budgetByCategory[category.ID],
		})...)
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority > insights[j].Priority
	})

	if insights == nil {
		insights = []models.Insight{}
	}
	return insights, nil
}

// groupByCategory buckets transactions by category; uncategorized rows
// cannot feed a category rule and are skipped
func groupByCategory(transactions []models.Transaction) map[uuid.UUID][]models.Transaction {
	grouped := make(map[uuid.UUID][]models.Transaction)
	for i := range transactions {
		txn := transactions[i]
		if txn.CategoryID == nil {
			continue
		}
		grouped[*txn.CategoryID] = append(grouped[*txn.CategoryID], txn)
	}
	return grouped
}
