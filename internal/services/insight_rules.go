package services

import (
	"fmt"
	"time"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/config"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/models"

	"github.com/google/uuid"
)

// RuleInput is everything a rule may look at for one (user, category)
// pair: the category's expense transactions inside the analysis window,
// the first instant of the current month (UTC), and the category's
// budget if one exists.
type RuleInput struct {
	UserID       uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	Transactions []models.Transaction
	CurrentMonth time.Time
	Budget       *models.Budget
}

// InsightRule maps a rule input to zero or one insight candidate.
// Rules perform no I/O and must be safe for every category, including
// ones with a single transaction.
type InsightRule func(input RuleInput) *models.Insight

type ruleEngine struct {
	significantChangePct float64
	outlierThreshold     float64
	budgetSafetyMargin   float64
	rules                []InsightRule
}

// NewRuleEngine builds the canonical rule set. Priorities are fixed per
// rule and used purely for display ordering; all applicable rules fire
// independently.
func NewRuleEngine(cfg *config.InsightsConfig) RuleEngineInterface {
	engine := &ruleEngine{
		significantChangePct: cfg.SignificantChangePct,
		outlierThreshold:     cfg.OutlierThreshold,
		budgetSafetyMargin:   cfg.BudgetSafetyMargin,
	}
	engine.rules = []InsightRule{
		engine.unusualExpenseRule,
		engine.spendingIncreaseRule,
		engine.budgetRecommendationRule,
		engine.positiveReinforcementRule,
	}
	return engine
}

// Evaluate runs every rule against the input and collects the
// candidates that fired
func (e *ruleEngine) Evaluate(input RuleInput) []models.Insight {
	var insights []models.Insight
	for _, rule := range e.rules {
		if insight := rule(input); insight != nil {
			insights = append(insights, *insight)
		}
	}
	return insights
}

// unusualExpenseRule flags the most deviant transaction whose amount is
// a statistical outlier against the category's mean/stdDev. Highest
// priority: likely an anomaly or a data-entry error.
func (e *ruleEngine) unusualExpenseRule(input RuleInput) *models.Insight {
	amounts := make([]float64, 0, len(input.Transactions))
	for i := range input.Transactions {
		amounts = append(amounts, input.Transactions[i].AmountFloat())
	}

	mean := Mean(amounts)
	stdDev := StdDevWithMean(amounts, mean)

	var outlier *models.Transaction
	maxDeviation := 0.0
	for i := range input.Transactions {
		amount := input.Transactions[i].AmountFloat()
		if !IsOutlier(amount, mean, stdDev, e.outlierThreshold) {
			continue
		}
		deviation := amount - mean
		if deviation < 0 {
			deviation = -deviation
		}
		if deviation > maxDeviation {
			maxDeviation = deviation
			outlier = &input.Transactions[i]
		}
	}

	if outlier == nil {
		return nil
	}

	amount := outlier.AmountFloat()
	return &models.Insight{
		UserID:   input.UserID,
		Type:     models.InsightTypeUnusualExpense,
		Priority: models.PriorityUnusualExpense,
		Title:    fmt.Sprintf("Unusual expense in %s", input.CategoryName),
		Description: fmt.Sprintf(
			"An expense of %.2f in %s stands out against your typical %.2f for this category.",
			amount, input.CategoryName, mean),
		Metadata: models.JSONBMap{
			"category_id":    input.CategoryID.String(),
			"category_name":  input.CategoryName,
			"transaction_id": outlier.ID.String(),
			"amount":         amount,
			"category_mean":  mean,
			"category_sd":    stdDev,
		},
	}
}

// spendingIncreaseRule compares the current month's category total to
// the previous month's and fires above the significance threshold
func (e *ruleEngine) spendingIncreaseRule(input RuleInput) *models.Insight {
	current, previous := monthlyTotals(input)

	change := MonthOverMonth(current, previous)
	if change <= e.significantChangePct {
		return nil
	}

	return &models.Insight{
		UserID:   input.UserID,
		Type:     models.InsightTypeSpendingIncrease,
		Priority: models.PrioritySpendingIncrease,
		Title:    fmt.Sprintf("Spending increase in %s", input.CategoryName),
		Description: fmt.Sprintf(
			"Your %s spending rose %.1f%% compared to last month (%.2f to %.2f).",
			input.CategoryName, change, previous, current),
		Metadata: models.JSONBMap{
			"category_id":          input.CategoryID.String(),
			"category_name":        input.CategoryName,
			"change_pct":           change,
			"current_month_total":  current,
			"previous_month_total": previous,
		},
	}
}

// budgetRecommendationRule proposes a budget from historical mean spend
// when none exists, or an adjustment when the existing one is exceeded
func (e *ruleEngine) budgetRecommendationRule(input RuleInput) *models.Insight {
	current, _ := monthlyTotals(input)

	if input.Budget == nil {
		average := averageMonthlySpend(input)
		if average <= 0 {
			return nil
		}
		recommended := average * (1 + e.budgetSafetyMargin)
		return &models.Insight{
			UserID:   input.UserID,
			Type:     models.InsightTypeBudgetRecommendation,
			Priority: models.PriorityBudgetRecommendation,
			Title:    fmt.Sprintf("Set a budget for %s", input.CategoryName),
			Description: fmt.Sprintf(
				"You spend about %.2f per month on %s. A monthly budget of %.2f would help you keep it in check.",
				average, input.CategoryName, recommended),
			Metadata: models.JSONBMap{
				"category_id":           input.CategoryID.String(),
				"category_name":         input.CategoryName,
				"average_monthly_spend": average,
				"recommended_budget":    recommended,
			},
		}
	}

	limit := input.Budget.LimitFloat()
	if limit <= 0 || current <= limit {
		return nil
	}

	return &models.Insight{
		UserID:   input.UserID,
		Type:     models.InsightTypeBudgetRecommendation,
		Priority: models.PriorityBudgetRecommendation,
		Title:    fmt.Sprintf("Adjust your %s budget", input.CategoryName),
		Description: fmt.Sprintf(
			"This month's %s spending (%.2f) has exceeded your %.2f budget.",
			input.CategoryName, current, limit),
		Metadata: models.JSONBMap{
			"category_id":         input.CategoryID.String(),
			"category_name":       input.CategoryName,
			"budget_limit":        limit,
			"current_month_total": current,
			"overage":             current - limit,
		},
	}
}

// positiveReinforcementRule fires when spending decreased month over
// month, or stayed within an existing budget. Lowest priority so it
// never crowds out actionable insights.
func (e *ruleEngine) positiveReinforcementRule(input RuleInput) *models.Insight {
	current, previous := monthlyTotals(input)

	change := MonthOverMonth(current, previous)
	if previous > 0 && change < 0 {
		return &models.Insight{
			UserID:   input.UserID,
			Type:     models.InsightTypePositiveReinforcement,
			Priority: models.PriorityPositiveReinforcement,
			Title:    fmt.Sprintf("Nice work on %s", input.CategoryName),
			Description: fmt.Sprintf(
				"You spent %.1f%% less on %s than last month. Keep it up!",
				-change, input.CategoryName),
			Metadata: models.JSONBMap{
				"category_id":          input.CategoryID.String(),
				"category_name":        input.CategoryName,
				"change_pct":           change,
				"current_month_total":  current,
				"previous_month_total": previous,
			},
		}
	}

	if input.Budget != nil && input.Budget.LimitFloat() > 0 && current > 0 && current <= input.Budget.LimitFloat() {
		limit := input.Budget.LimitFloat()
		return &models.Insight{
			UserID:   input.UserID,
			Type:     models.InsightTypePositiveReinforcement,
			Priority: models.PriorityPositiveReinforcement,
			Title:    fmt.Sprintf("On track with %s", input.CategoryName),
			Description: fmt.Sprintf(
				"Your %s spending (%.2f) is within your %.2f budget this month.",
				input.CategoryName, current, limit),
			Metadata: models.JSONBMap{
				"category_id":         input.CategoryID.String(),
				"category_name":       input.CategoryName,
				"budget_limit":        limit,
				"current_month_total": current,
			},
		}
	}

	return nil
}

// monthlyTotals sums the category's expenses for the current month and
// the month immediately before it
func monthlyTotals(input RuleInput) (current, previous float64) {
	currentStart := monthStart(input.CurrentMonth)
	previousStart := currentStart.AddDate(0, -1, 0)

	for i := range input.Transactions {
		txn := &input.Transactions[i]
		start := monthStart(txn.Date)
		switch {
		case start.Equal(currentStart):
			current += txn.AmountFloat()
		case start.Equal(previousStart):
			previous += txn.AmountFloat()
		}
	}
	return current, previous
}

// averageMonthlySpend is the mean of the per-month totals across the
// months that actually had spending
func averageMonthlySpend(input RuleInput) float64 {
	totals := make(map[time.Time]float64)
	for i := range input.Transactions {
		txn := &input.Transactions[i]
		totals[monthStart(txn.Date)] += txn.AmountFloat()
	}

	monthly := make([]float64, 0, len(totals))
	for _, total := range totals {
		if total > 0 {
			monthly = append(monthly, total)
		}
	}
	return Mean(monthly)
}

func monthStart(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), 1, 0, 0, 0, 0, time.UTC)
}
