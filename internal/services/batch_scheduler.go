package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/config"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/dto"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/repositories"

	"github.com/google/uuid"
)

type batchScheduler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	insightService  InsightServiceInterface
	metrics         MetricsRecorderInterface
	runDayOfMonth   int
	maxUsersPerRun  int
	batchSize       int
	maxErrors       int
	now             func() time.Time
}

// NewBatchScheduler creates the monthly sweep runner
func NewBatchScheduler(
	transactionRepo repositories.TransactionRepositoryInterface,
	insightService InsightServiceInterface,
	metrics MetricsRecorderInterface,
	cfg *config.SchedulerConfig,
) BatchSchedulerInterface {
	return &batchScheduler{
		transactionRepo: transactionRepo,
		insightService:  insightService,
		metrics:         metrics,
		runDayOfMonth:   cfg.RunDayOfMonth,
		maxUsersPerRun:  cfg.MaxUsersPerRun,
		batchSize:       cfg.BatchSize,
		maxErrors:       cfg.MaxReportedErrors,
		now:             time.Now,
	}
}

type userResult struct {
	userID   uuid.UUID
	insights int
	err      error
}

// RunMonthlySweep regenerates insights for every active user. The sweep
// is gated on the configured UTC day of month; off-schedule invocations
// return a skipped report without touching the transaction store.
//
// Active users are discovered by a capped distinct-owner scan. Users are
// processed in fixed-size batches: concurrent within a batch, sequential
// across batches, bounding peak load on the store while racing the
// host's request timeout. Per-user failures are isolated and recorded;
// they never abort the run. No self-imposed deadline is enforced: if the
// host timeout fires mid-batch, in-flight work is truncated by the host.
func (s *batchScheduler) RunMonthlySweep(ctx context.Context) (*dto.SweepReport, error) {
	start := s.now()

	if day := s.now().UTC().Day(); day != s.runDayOfMonth {
		slog.Info("monthly sweep skipped",
			"utc_day", day,
			"run_day", s.runDayOfMonth)
		return &dto.SweepReport{
			Success:   true,
			Skipped:   true,
			Reason:    fmt.Sprintf("scheduled for day %d of month, today is day %d (UTC)", s.runDayOfMonth, day),
			Errors:    []dto.SweepError{},
			ElapsedMs: s.now().Sub(start).Milliseconds(),
		}, nil
	}

	userIDs, err := s.transactionRepo.DistinctUserIDs(s.maxUsersPerRun)
	if err != nil {
		s.metrics.IncrementCounter("insights.sweep.failed", nil)
		return nil, fmt.Errorf("failed to discover active users: %w", err)
	}

	report := &dto.SweepReport{
		Success:    true,
		TotalUsers: len(userIDs),
		Errors:     []dto.SweepError{},
	}

	slog.Info("monthly sweep starting",
		"total_users", len(userIDs),
		"batch_size", s.batchSize)

	for offset := 0; offset < len(userIDs); offset += s.batchSize {
		end := offset + s.batchSize
		if end > len(userIDs) {
			end = len(userIDs)
		}

		for _, result := range s.runBatch(ctx, userIDs[offset:end]) {
			if result.err != nil {
				report.ErrorCount++
				if len(report.Errors) < s.maxErrors {
					report.Errors = append(report.Errors, dto.SweepError{
						UserID: result.userID.String(),
						Error:  result.err.Error(),
					})
				}
				continue
			}
			report.UsersProcessed++
			report.InsightsGenerated += result.insights
		}
	}

	report.ElapsedMs = s.now().Sub(start).Milliseconds()

	s.metrics.IncrementCounter("insights.sweep.completed", nil)
	s.metrics.RecordGauge("insights.sweep.users_processed", float64(report.UsersProcessed), nil)
	s.metrics.RecordGauge("insights.sweep.errors", float64(report.ErrorCount), nil)
	s.metrics.RecordProcessingTime("insights.sweep", s.now().Sub(start))

	slog.Info("monthly sweep completed",
		"users_processed", report.UsersProcessed,
		"insights_generated", report.InsightsGenerated,
		"error_count", report.ErrorCount,
		"elapsed_ms", report.ElapsedMs)

	return report, nil
}

// runBatch generates insights for every user in the batch concurrently
// and waits for all of them before returning
func (s *batchScheduler) runBatch(ctx context.Context, userIDs []uuid.UUID) []userResult {
	results := make([]userResult, len(userIDs))

	var wg sync.WaitGroup
	for i, userID := range userIDs {
		wg.Add(1)
		go func(i int, userID uuid.UUID) {
			defer wg.Done()

			insights, err := s.insightService.GenerateInsights(ctx, userID, true)
			if err != nil {
				slog.Error("sweep generation failed for user",
					"user_id", userID,
					"error", err)
				results[i] = userResult{userID: userID, err: err}
				return
			}
			results[i] = userResult{userID: userID, insights: len(insights)}
		}(i, userID)
	}
	wg.Wait()

	return results
}
