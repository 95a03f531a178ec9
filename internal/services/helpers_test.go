package services

import (
	"context"
	"sync"
	"time"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/models"

	"github.com/google/uuid"
)

// metricsStub records metric calls for assertions. Safe for concurrent
// use; the scheduler and trigger record from goroutines.
type metricsStub struct {
	mu       sync.Mutex
	counters map[string]int
	gauges   map[string]float64
}

func newMetricsStub() *metricsStub {
	return &metricsStub{
		counters: make(map[string]int),
		gauges:   make(map[string]float64),
	}
}

func (m *metricsStub) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name]++
}

func (m *metricsStub) RecordProcessingTime(name string, duration time.Duration) {}

func (m *metricsStub) RecordGauge(name string, value float64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[name] = value
}

func (m *metricsStub) counterValue(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[name]
}

func (m *metricsStub) gaugeValue(name string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gauges[name]
}

// insightServiceStub lets trigger and scheduler tests script generation
// outcomes without the full orchestrator.
type insightServiceStub struct {
	generateFn  func(ctx context.Context, userID uuid.UUID, forceRegenerate bool) ([]models.Insight, error)
	getActiveFn func(userID uuid.UUID) ([]models.Insight, error)
}

func (s *insightServiceStub) GenerateInsights(ctx context.Context, userID uuid.UUID, forceRegenerate bool) ([]models.Insight, error) {
	return s.generateFn(ctx, userID, forceRegenerate)
}

func (s *insightServiceStub) GetActiveInsights(userID uuid.UUID) ([]models.Insight, error) {
	if s.getActiveFn == nil {
		return nil, nil
	}
	return s.getActiveFn(userID)
}
