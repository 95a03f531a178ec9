package handlers

import (
	"net/http"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/dto"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/errors"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSeedMonths   = 3
	defaultSeedPerMonth = 25
)

// DevHandler handles development-only endpoints. Routes are only
// registered in development environments.
type DevHandler struct {
	seeder  services.TransactionSeederInterface
	trigger services.GenerationTriggerInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(seeder services.TransactionSeederInterface, trigger services.GenerationTriggerInterface) *DevHandler {
	return &DevHandler{seeder: seeder, trigger: trigger}
}

// SeedTransactions generates realistic budgeting history for the
// authenticated user so the insight pipeline has data to chew on
//
// Method: POST /api/v1/dev/seed-transactions
// Authentication: Required
// Environment: Development only
//
// Request body (optional):
//   - months: months of history to generate (default 3)
//   - per_month: transactions per month (default 25)
func (h *DevHandler) SeedTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SeedTransactionsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	}

	if req.Months == 0 {
		req.Months = defaultSeedMonths
	}
	if req.PerMonth == 0 {
		req.PerMonth = defaultSeedPerMonth
	}

	result, err := h.seeder.SeedForUser(userID, req.Months, req.PerMonth)
	if err != nil {
		return SendSystemError(c, err)
	}

	// Seeding is a bulk transaction write like any other, so it goes
	// through the same post-write trigger policy.
	h.trigger.CheckAndTriggerForTransactionCount(userID)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    result,
		Message: "test data generated successfully",
	})
}
