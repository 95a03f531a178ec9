package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestInsightValidate(t *testing.T) {
	valid := Insight{
		UserID:   uuid.New(),
		Type:     InsightTypeSpendingIncrease,
		Priority: 4,
		Title:    "Spending increase in Dining",
	}
	assert.NoError(t, valid.Validate())

	missingUser := valid
	missingUser.UserID = uuid.Nil
	assert.Error(t, missingUser.Validate())

	badType := valid
	badType.Type = "horoscope"
	assert.ErrorIs(t, badType.Validate(), ErrInvalidInsightType)

	badPriority := valid
	badPriority.Priority = 0
	assert.ErrorIs(t, badPriority.Validate(), ErrInvalidInsightPriority)

	badPriority.Priority = 6
	assert.ErrorIs(t, badPriority.Validate(), ErrInvalidInsightPriority)

	missingTitle := valid
	missingTitle.Title = ""
	assert.Error(t, missingTitle.Validate())
}

func TestInsightDismiss(t *testing.T) {
	insight := Insight{
		UserID:   uuid.New(),
		Type:     InsightTypeUnusualExpense,
		Priority: 5,
		Title:    "Unusual expense in Dining",
	}

	insight.Dismiss()
	assert.True(t, insight.Dismissed)
	assert.NotNil(t, insight.DismissedAt)

	insight.Undismiss()
	assert.False(t, insight.Dismissed)
	assert.Nil(t, insight.DismissedAt)
}

func TestIsValidInsightType(t *testing.T) {
	for _, insightType := range []string{
		InsightTypeSpendingIncrease,
		InsightTypeBudgetRecommendation,
		InsightTypeUnusualExpense,
		InsightTypePositiveReinforcement,
	} {
		assert.True(t, IsValidInsightType(insightType), insightType)
	}
	assert.False(t, IsValidInsightType("unknown"))
	assert.False(t, IsValidInsightType(""))
}
