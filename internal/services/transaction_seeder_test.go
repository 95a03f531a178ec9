package services

import (
	"testing"
	"time"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/database"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/models"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TransactionSeederTestSuite defines the test suite for the development
// data seeder, backed by an in-memory SQLite database
type TransactionSeederTestSuite struct {
	suite.Suite
	db              *database.DB
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	seeder          TransactionSeederInterface
	userID          uuid.UUID
}

// SetupTest runs before each test
func (s *TransactionSeederTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.transactionRepo = repositories.NewTransactionRepository(s.db.DB)
	s.categoryRepo = repositories.NewCategoryRepository(s.db.DB)
	s.seeder = NewTransactionSeeder(s.transactionRepo, s.categoryRepo)
	s.userID = uuid.New()
}

// TearDownTest runs after each test
func (s *TransactionSeederTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestTransactionSeederSuite runs the test suite
func TestTransactionSeederSuite(t *testing.T) {
	suite.Run(t, new(TransactionSeederTestSuite))
}

func (s *TransactionSeederTestSuite) TestSeedForUser_CreatesStandardCategories() {
	result, err := s.seeder.SeedForUser(s.userID, 2, 10)

	s.Require().NoError(err)
	s.Equal(7, result.CategoriesCreated)
	s.Equal(20, result.TransactionsCreated)

	categories, err := s.categoryRepo.GetByUserID(s.userID)
	s.Require().NoError(err)
	s.Len(categories, 7)
	for _, category := range categories {
		s.Equal(models.CategoryKindExpense, category.Kind)
	}
}

func (s *TransactionSeederTestSuite) TestSeedForUser_ReusesExistingCategories() {
	existing := database.CreateTestCategory(s.T(), s.db, s.userID, "Rent")

	result, err := s.seeder.SeedForUser(s.userID, 1, 5)

	s.Require().NoError(err)
	s.Equal(5, result.TransactionsCreated)

	categories, err := s.categoryRepo.GetByUserID(s.userID)
	s.Require().NoError(err)
	s.Require().Len(categories, 1)
	s.Equal(existing.ID, categories[0].ID)
}

func (s *TransactionSeederTestSuite) TestSeedForUser_TransactionsArePlausible() {
	_, err := s.seeder.SeedForUser(s.userID, 3, 20)
	s.Require().NoError(err)

	now := time.Now().UTC()
	start := now.AddDate(0, -4, 0)
	transactions, err := s.transactionRepo.GetByUserKindAndDateRange(
		s.userID, models.TransactionKindExpense, start, now)

	s.Require().NoError(err)
	s.Len(transactions, 60)
	for _, txn := range transactions {
		s.Require().NotNil(txn.CategoryID)
		s.True(txn.Amount.IsPositive())
		s.False(txn.Date.After(now))
	}
}
