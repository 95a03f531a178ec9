package repositories

import (
	"errors"
	"fmt"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInsightNotFound = errors.New("insight not found")

// insightRepository implements InsightRepositoryInterface
type insightRepository struct {
	db *gorm.DB
}

// NewInsightRepository creates a new insight repository
func NewInsightRepository(db *gorm.DB) InsightRepositoryInterface {
	return &insightRepository{
		db: db,
	}
}

// ReplaceForUser deletes all of the user's insights and inserts the new set
// atomically. A mid-sequence failure rolls back, so a user is never left
// with zero insights because of a failed insert.
func (r *insightRepository) ReplaceForUser(userID uuid.UUID, insights []models.Insight) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Insight{}).Error; err != nil {
			return fmt.Errorf("failed to delete existing insights: %w", err)
		}

		if len(insights) == 0 {
			return nil
		}

		if err := tx.Create(&insights).Error; err != nil {
			return fmt.Errorf("failed to insert insights: %w", err)
		}
		return nil
	})
}

// GetActiveByUserID returns the user's non-dismissed insights ordered by
// priority descending, then recency descending
func (r *insightRepository) GetActiveByUserID(userID uuid.UUID) ([]models.Insight, error) {
	var insights []models.Insight
	if err := r.db.Where("user_id = ? AND dismissed = ?", userID, false).
		Order("priority DESC, created_at DESC").
		Find(&insights).Error; err != nil {
		return nil, fmt.Errorf("failed to get insights: %w", err)
	}
	return insights, nil
}

// GetByID retrieves an insight by ID
func (r *insightRepository) GetByID(id uuid.UUID) (*models.Insight, error) {
	insight := &models.Insight{ID: id}
	if err := r.db.First(insight).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInsightNotFound
		}
		return nil, fmt.Errorf("failed to get insight: %w", err)
	}
	return insight, nil
}

// DeleteByUserID deletes all insights owned by a user
func (r *insightRepository) DeleteByUserID(userID uuid.UUID) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.Insight{}).Error; err != nil {
		return fmt.Errorf("failed to delete insights: %w", err)
	}
	return nil
}

// CountByUserID counts all insights owned by a user
func (r *insightRepository) CountByUserID(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Insight{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count insights: %w", err)
	}
	return count, nil
}
