package repositories

import (
	"time"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the read surface the insight core
// needs from the transaction store. Transactions are written elsewhere;
// Create/CreateBatch exist for the development seeder and tests.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByUserKindAndDateRange(userID uuid.UUID, kind string, startDate, endDate time.Time) ([]models.Transaction, error)
	CountCreatedSince(userID uuid.UUID, since time.Time) (int64, error)
	DistinctUserIDs(limit int) ([]uuid.UUID, error)
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByUserID(userID uuid.UUID) ([]models.Category, error)
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error
	GetByUserID(userID uuid.UUID) ([]models.Budget, error)
}

// InsightRepositoryInterface defines the contract for insight repository operations
type InsightRepositoryInterface interface {
	// ReplaceForUser deletes all of the user's insights and inserts the new
	// set in a single database transaction.
	ReplaceForUser(userID uuid.UUID, insights []models.Insight) error

	// GetActiveByUserID returns the user's non-dismissed insights ordered
	// by priority descending, then recency descending.
	GetActiveByUserID(userID uuid.UUID) ([]models.Insight, error)

	GetByID(id uuid.UUID) (*models.Insight, error)
	DeleteByUserID(userID uuid.UUID) error
	CountByUserID(userID uuid.UUID) (int64, error)
}
