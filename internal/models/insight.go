package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InsightTypeSpendingIncrease      = "spending_increase"
	InsightTypeBudgetRecommendation  = "budget_recommendation"
	InsightTypeUnusualExpense        = "unusual_expense"
	InsightTypePositiveReinforcement = "positive_reinforcement"
)

// Insight priorities. Higher is more urgent; used for display ordering
// only, never to suppress other insights.
const (
	PriorityUnusualExpense        = 5
	PrioritySpendingIncrease      = 4
	PriorityBudgetRecommendation  = 3
	PriorityPositiveReinforcement = 2
)

var (
	ErrInvalidInsightType     = errors.New("invalid insight type")
	ErrInvalidInsightPriority = errors.New("insight priority must be between 1 and 5")
)

// Insight is a generated, persisted advisory message derived from a user's
// transaction history. The full set for a user is wholesale replaced on
// every successful generation run; there is no incremental merge.
type Insight struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        string     `gorm:"type:varchar(40);not null" json:"type"`
	Priority    int        `gorm:"not null" json:"priority"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Metadata    JSONBMap   `gorm:"type:jsonb" json:"metadata,omitempty"`
	Dismissed   bool       `gorm:"not null;default:false" json:"dismissed"`
	DismissedAt *time.Time `json:"dismissed_at,omitempty"`
	ViewCount   int        `gorm:"not null;default:0" json:"view_count"`
	CreatedAt   time.Time  `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for Insight
func (i *Insight) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now().UTC()
	}
	return i.Validate()
}

// Validate validates the insight fields
func (i *Insight) Validate() error {
	if i.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if !IsValidInsightType(i.Type) {
		return ErrInvalidInsightType
	}
	if i.Priority < 1 || i.Priority > 5 {
		return ErrInvalidInsightPriority
	}
	if i.Title == "" {
		return errors.New("insight title is required")
	}
	return nil
}

// Dismiss marks the insight as dismissed
func (i *Insight) Dismiss() {
	i.Dismissed = true
	now := time.Now().UTC()
	i.DismissedAt = &now
}

// Undismiss clears the dismissed flag
func (i *Insight) Undismiss() {
	i.Dismissed = false
	i.DismissedAt = nil
}

// TableName returns the table name for Insight
func (i *Insight) TableName() string {
	return "insights"
}

// IsValidInsightType checks if the insight type is valid
func IsValidInsightType(insightType string) bool {
	switch insightType {
	case InsightTypeSpendingIncrease,
		InsightTypeBudgetRecommendation,
		InsightTypeUnusualExpense,
		InsightTypePositiveReinforcement:
		return true
	default:
		return false
	}
}
