package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/config"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/models"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// BatchSchedulerTestSuite defines the test suite for the monthly sweep
type BatchSchedulerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	metrics         *metricsStub
}

// SetupTest runs before each test
func (s *BatchSchedulerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.metrics = newMetricsStub()
}

// TearDownTest runs after each test
func (s *BatchSchedulerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestBatchSchedulerSuite runs the test suite
func TestBatchSchedulerSuite(t *testing.T) {
	suite.Run(t, new(BatchSchedulerTestSuite))
}

func (s *BatchSchedulerTestSuite) newScheduler(insightService InsightServiceInterface, today time.Time) *batchScheduler {
	scheduler := NewBatchScheduler(s.transactionRepo, insightService, s.metrics, &config.SchedulerConfig{
		RunDayOfMonth:     1,
		MaxUsersPerRun:    1000,
		BatchSize:         20,
		MaxReportedErrors: 10,
	}).(*batchScheduler)
	scheduler.now = func() time.Time { return today }
	return scheduler
}

func (s *BatchSchedulerTestSuite) TestRunMonthlySweep_OffScheduleDaySkips() {
	// Day 15: the sweep reports skipped without touching the store.
	scheduler := s.newScheduler(nil, time.Date(2026, time.August, 15, 3, 0, 0, 0, time.UTC))

	report, err := scheduler.RunMonthlySweep(context.Background())

	s.Require().NoError(err)
	s.True(report.Success)
	s.True(report.Skipped)
	s.Contains(report.Reason, "day 1")
	s.Contains(report.Reason, "day 15")
	s.Equal(0, report.UsersProcessed)
}

func (s *BatchSchedulerTestSuite) TestRunMonthlySweep_ScheduleDayIsUTC() {
	// 2026-09-01 00:30 UTC runs even if the server's local date differs.
	userIDs := []uuid.UUID{uuid.New()}
	s.transactionRepo.EXPECT().DistinctUserIDs(1000).Return(userIDs, nil)

	scheduler := s.newScheduler(&insightServiceStub{
		generateFn: func(ctx context.Context, userID uuid.UUID, force bool) ([]models.Insight, error) {
			return []models.Insight{}, nil
		},
	}, time.Date(2026, time.September, 1, 0, 30, 0, 0, time.UTC))

	report, err := scheduler.RunMonthlySweep(context.Background())

	s.Require().NoError(err)
	s.False(report.Skipped)
	s.Equal(1, report.UsersProcessed)
}

func (s *BatchSchedulerTestSuite) TestRunMonthlySweep_ProcessesAllUsersAcrossBatches() {
	userIDs := make([]uuid.UUID, 45)
	for i := range userIDs {
		userIDs[i] = uuid.New()
	}
	s.transactionRepo.EXPECT().DistinctUserIDs(1000).Return(userIDs, nil)

	var mu sync.Mutex
	seen := make(map[uuid.UUID]bool)
	scheduler := s.newScheduler(&insightServiceStub{
		generateFn: func(ctx context.Context, userID uuid.UUID, force bool) ([]models.Insight, error) {
			s.True(force, "sweep generation must bypass the cache")
			mu.Lock()
			seen[userID] = true
			mu.Unlock()
			return make([]models.Insight, 2), nil
		},
	}, time.Date(2026, time.September, 1, 3, 0, 0, 0, time.UTC))

	report, err := scheduler.RunMonthlySweep(context.Background())

	s.Require().NoError(err)
	s.True(report.Success)
	s.Equal(45, report.TotalUsers)
	s.Equal(45, report.UsersProcessed)
	s.Equal(90, report.InsightsGenerated)
	s.Equal(0, report.ErrorCount)
	s.Len(seen, 45)
	s.Equal(1, s.metrics.counterValue("insights.sweep.completed"))
	s.Equal(45.0, s.metrics.gaugeValue("insights.sweep.users_processed"))
}

func (s *BatchSchedulerTestSuite) TestRunMonthlySweep_UserFailureDoesNotAbortRun() {
	userIDs := make([]uuid.UUID, 5)
	for i := range userIDs {
		userIDs[i] = uuid.New()
	}
	failing := userIDs[2]
	s.transactionRepo.EXPECT().DistinctUserIDs(1000).Return(userIDs, nil)

	scheduler := s.newScheduler(&insightServiceStub{
		generateFn: func(ctx context.Context, userID uuid.UUID, force bool) ([]models.Insight, error) {
			if userID == failing {
				return nil, errors.New("transaction fetch timed out")
			}
			return make([]models.Insight, 1), nil
		},
	}, time.Date(2026, time.September, 1, 3, 0, 0, 0, time.UTC))

	report, err := scheduler.RunMonthlySweep(context.Background())

	s.Require().NoError(err)
	s.True(report.Success)
	s.Equal(5, report.TotalUsers)
	s.Equal(4, report.UsersProcessed)
	s.Equal(1, report.ErrorCount)
	s.Require().Len(report.Errors, 1)
	s.Equal(failing.String(), report.Errors[0].UserID)
	s.Contains(report.Errors[0].Error, "timed out")
}

func (s *BatchSchedulerTestSuite) TestRunMonthlySweep_ErrorReportingIsCapped() {
	userIDs := make([]uuid.UUID, 25)
	for i := range userIDs {
		userIDs[i] = uuid.New()
	}
	s.transactionRepo.EXPECT().DistinctUserIDs(1000).Return(userIDs, nil)

	scheduler := s.newScheduler(&insightServiceStub{
		generateFn: func(ctx context.Context, userID uuid.UUID, force bool) ([]models.Insight, error) {
			return nil, errors.New("store unavailable")
		},
	}, time.Date(2026, time.September, 1, 3, 0, 0, 0, time.UTC))

	report, err := scheduler.RunMonthlySweep(context.Background())

	s.Require().NoError(err)
	// Every failure is counted but only the first few are detailed.
	s.Equal(25, report.ErrorCount)
	s.Len(report.Errors, 10)
	s.Equal(0, report.UsersProcessed)
}

func (s *BatchSchedulerTestSuite) TestRunMonthlySweep_UserDiscoveryFailure() {
	s.transactionRepo.EXPECT().DistinctUserIDs(1000).Return(nil, errors.New("connection refused"))

	scheduler := s.newScheduler(nil, time.Date(2026, time.September, 1, 3, 0, 0, 0, time.UTC))

	report, err := scheduler.RunMonthlySweep(context.Background())

	s.Error(err)
	s.Nil(report)
	s.Equal(1, s.metrics.counterValue("insights.sweep.failed"))
}

func (s *BatchSchedulerTestSuite) TestRunMonthlySweep_NoActiveUsers() {
	s.transactionRepo.EXPECT().DistinctUserIDs(1000).Return([]uuid.UUID{}, nil)

	scheduler := s.newScheduler(nil, time.Date(2026, time.September, 1, 3, 0, 0, 0, time.UTC))

	report, err := scheduler.RunMonthlySweep(context.Background())

	s.Require().NoError(err)
	s.True(report.Success)
	s.Equal(0, report.TotalUsers)
	s.Equal(0, report.UsersProcessed)
}
