package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type ruleProbe struct {
	Amount      float64 `json:"amount" validate:"omitempty,positive_amount"`
	UserID      string  `json:"user_id" validate:"omitempty,user_id"`
	Kind        string  `json:"kind" validate:"omitempty,transaction_kind"`
	InsightType string  `json:"insight_type" validate:"omitempty,insight_type"`
}

func TestPositiveAmount(t *testing.T) {
	v := GetValidator().GetValidate()

	assert.NoError(t, v.Struct(ruleProbe{Amount: 0.01}))
	assert.Error(t, v.Struct(ruleProbe{Amount: -5}))
}

func TestUserIDRule(t *testing.T) {
	v := GetValidator().GetValidate()

	assert.NoError(t, v.Struct(ruleProbe{UserID: "a3bb1896-2308-4b60-91f1-0d2a5ad063ab"}))
	assert.Error(t, v.Struct(ruleProbe{UserID: "not-a-uuid"}))
}

func TestTransactionKindRule(t *testing.T) {
	v := GetValidator().GetValidate()

	assert.NoError(t, v.Struct(ruleProbe{Kind: "expense"}))
	assert.NoError(t, v.Struct(ruleProbe{Kind: "Income"}))
	assert.Error(t, v.Struct(ruleProbe{Kind: "transfer"}))
}

func TestInsightTypeRule(t *testing.T) {
	v := GetValidator().GetValidate()

	assert.NoError(t, v.Struct(ruleProbe{InsightType: "unusual_expense"}))
	assert.Error(t, v.Struct(ruleProbe{InsightType: "horoscope"}))
}

func TestGetValidatorReturnsSingleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
