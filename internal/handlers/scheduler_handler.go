package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/dto"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/errors"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/services"

	"github.com/labstack/echo/v4"
)

// SchedulerHandler exposes the monthly sweep to the external scheduler.
// Authentication is a single shared-secret bearer token; the platform
// cron is the only intended caller.
type SchedulerHandler struct {
	scheduler services.BatchSchedulerInterface
	secret    string
}

// NewSchedulerHandler creates a new scheduler handler
func NewSchedulerHandler(scheduler services.BatchSchedulerInterface, secret string) *SchedulerHandler {
	return &SchedulerHandler{
		scheduler: scheduler,
		secret:    secret,
	}
}

// RunMonthlySweep triggers the batch sweep
//
// Method: GET /api/v1/scheduler/monthly-insights
// Authentication: Authorization: Bearer <shared secret>
//
// Off-schedule invocations return 200 with skipped:true and touch
// nothing. Any secret mismatch is rejected before any processing.
func (h *SchedulerHandler) RunMonthlySweep(c echo.Context) error {
	start := time.Now()

	if !h.authorized(c.Request().Header.Get(echo.HeaderAuthorization)) {
		return SendError(c, errors.AuthInvalidSecret)
	}

	report, err := h.scheduler.RunMonthlySweep(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.SweepFailureResponse{
			Success:   false,
			Error:     string(errors.SchedulerSweepFailed),
			Details:   err.Error(),
			ElapsedMs: time.Since(start).Milliseconds(),
		})
	}

	return c.JSON(http.StatusOK, report)
}

// authorized compares the bearer token against the shared secret in
// constant time. An unconfigured secret fails closed.
func (h *SchedulerHandler) authorized(authHeader string) bool {
	if h.secret == "" {
		return false
	}

	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return false
	}
	token := strings.TrimSpace(authHeader[len(bearerPrefix):])

	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}
