package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	generationTotal     *prometheus.CounterVec
	generationDuration  prometheus.Histogram
	insightsPerRun      prometheus.Histogram
	triggerTotal        *prometheus.CounterVec
	sweepTotal          *prometheus.CounterVec
	sweepDuration       prometheus.Histogram
	sweepUsersProcessed prometheus.Gauge
	sweepErrors         prometheus.Gauge
	throttledTotal      prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		generationTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insight_generation_total",
				Help: "Total number of insight generation runs by outcome",
			},
			[]string{"outcome"},
		),
		generationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "insight_generation_duration_milliseconds",
				Help:    "Insight generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		insightsPerRun: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "insights_generated_per_run",
				Help:    "Number of insights produced by a single generation run",
				Buckets: prometheus.LinearBuckets(0, 2, 10),
			},
		),
		triggerTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insight_trigger_total",
				Help: "Total number of background generation triggers by outcome",
			},
			[]string{"outcome"},
		),
		sweepTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insight_sweep_total",
				Help: "Total number of monthly sweep runs by outcome",
			},
			[]string{"outcome"},
		),
		sweepDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "insight_sweep_duration_milliseconds",
				Help:    "Monthly sweep duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(10, 2, 14),
			},
		),
		sweepUsersProcessed: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "insight_sweep_users_processed",
				Help: "Users successfully processed by the last monthly sweep",
			},
		),
		sweepErrors: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "insight_sweep_errors",
				Help: "Per-user failures in the last monthly sweep",
			},
		),
		throttledTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "insight_generation_throttled_total",
				Help: "On-demand generation requests rejected by the rate limiter",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "insights.generation.success":
		m.generationTotal.WithLabelValues("success").Inc()
	case "insights.generation.failed":
		m.generationTotal.WithLabelValues("failed").Inc()
	case "insights.generation.cache_hit":
		m.generationTotal.WithLabelValues("cache_hit").Inc()
	case "insights.generation.throttled":
		m.throttledTotal.Inc()
	case "insights.trigger.fired":
		m.triggerTotal.WithLabelValues("fired").Inc()
	case "insights.trigger.failed":
		m.triggerTotal.WithLabelValues("failed").Inc()
	case "insights.sweep.completed":
		m.sweepTotal.WithLabelValues("completed").Inc()
	case "insights.sweep.failed":
		m.sweepTotal.WithLabelValues("failed").Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "insights.generation":
		m.generationDuration.Observe(float64(duration.Milliseconds()))
	case "insights.sweep":
		m.sweepDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "insights.generated_per_run":
		m.insightsPerRun.Observe(value)
	case "insights.sweep.users_processed":
		m.sweepUsersProcessed.Set(value)
	case "insights.sweep.errors":
		m.sweepErrors.Set(value)
	}
}
