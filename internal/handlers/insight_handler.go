package handlers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/dto"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/errors"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/services"

	"github.com/labstack/echo/v4"
)

// InsightHandler handles insight read and on-demand generation endpoints
type InsightHandler struct {
	insightService services.InsightServiceInterface
	rateLimiter    services.RateLimiterInterface
	metrics        services.MetricsRecorderInterface
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(
	insightService services.InsightServiceInterface,
	rateLimiter services.RateLimiterInterface,
	metrics services.MetricsRecorderInterface,
) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
		rateLimiter:    rateLimiter,
		metrics:        metrics,
	}
}

// ListInsights returns the authenticated user's non-dismissed insights,
// ordered by priority descending then recency descending
//
// Method: GET /api/v1/insights
// Authentication: Required
func (h *InsightHandler) ListInsights(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	insights, err := h.insightService.GetActiveInsights(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewListInsightsResponse(insights))
}

// GenerateInsights triggers an on-demand generation run for the
// authenticated user, guarded by the per-user rate limiter
//
// Method: POST /api/v1/insights/generate
// Authentication: Required
//
// Request body (optional):
//   - force_regenerate: bypass the generation cache
//
// Error Responses:
//   - 401: Unauthenticated
//   - 429: Rate limit exceeded (body carries retry_after_seconds)
//   - 500: Generation failed
func (h *InsightHandler) GenerateInsights(c echo.Context) error {
	start := time.Now()

	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.GenerateInsightsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	ctx := c.Request().Context()
	key := userID.String()

	allowed, retryAfter := h.rateLimiter.CheckRateLimit(ctx, key)
	if !allowed {
		h.metrics.IncrementCounter("insights.generation.throttled", nil)
		retrySeconds := int64(math.Ceil(retryAfter.Seconds()))
		c.Response().Header().Set("Retry-After", strconv.FormatInt(retrySeconds, 10))
		return c.JSON(http.StatusTooManyRequests, dto.GenerateThrottledResponse{
			Success:           false,
			Error:             string(errors.SystemRateLimitExceeded),
			Message:           "Too many generation requests. Please try again later.",
			RetryAfterSeconds: retrySeconds,
		})
	}

	h.rateLimiter.RecordAction(ctx, key)

	insights, err := h.insightService.GenerateInsights(ctx, userID, req.ForceRegenerate)
	if err != nil {
		return SendError(c, errors.InsightGenerationFailed)
	}

	return c.JSON(http.StatusOK, dto.GenerateInsightsResponse{
		Success:   true,
		Count:     len(insights),
		Message:   "Insights generated successfully",
		ElapsedMs: time.Since(start).Milliseconds(),
	})
}
