package repositories

import (
	"fmt"
	"time"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByUserKindAndDateRange retrieves a user's transactions of the given
// kind whose date falls within [startDate, endDate]
func (r *transactionRepository) GetByUserKindAndDateRange(userID uuid.UUID, kind string, startDate, endDate time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND kind = ? AND date BETWEEN ? AND ?", userID, kind, startDate, endDate).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// CountCreatedSince counts a user's transactions created after the given timestamp
func (r *transactionRepository) CountCreatedSince(userID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ? AND created_at > ?", userID, since).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions since timestamp: %w", err)
	}
	return count, nil
}

// DistinctUserIDs returns the distinct owners of transaction rows, capped
// at limit. The cap is the batch sweep's explicit scalability ceiling.
func (r *transactionRepository) DistinctUserIDs(limit int) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID
	if err := r.db.Model(&models.Transaction{}).
		Distinct("user_id").
		Limit(limit).
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to scan distinct transaction owners: %w", err)
	}
	return userIDs, nil
}
