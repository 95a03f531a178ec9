package repositories

import (
	"testing"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/database"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BudgetRepositoryTestSuite defines the test suite for BudgetRepository
type BudgetRepositoryTestSuite struct {
	suite.Suite
	db     *database.DB
	repo   BudgetRepositoryInterface
	userID uuid.UUID
}

// SetupTest runs before each test
func (s *BudgetRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBudgetRepository(s.db.DB)
	s.userID = uuid.New()
}

// TearDownTest runs after each test
func (s *BudgetRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestBudgetRepositorySuite runs the test suite
func TestBudgetRepositorySuite(t *testing.T) {
	suite.Run(t, new(BudgetRepositoryTestSuite))
}

func (s *BudgetRepositoryTestSuite) newBudget(userID uuid.UUID, limit float64) *models.Budget {
	category := database.CreateTestCategory(s.T(), s.db, userID, "Budgeted "+uuid.NewString()[:8])
	return &models.Budget{
		UserID:       userID,
		CategoryID:   category.ID,
		MonthlyLimit: decimal.NewFromFloat(limit),
	}
}

func (s *BudgetRepositoryTestSuite) TestCreate() {
	budget := s.newBudget(s.userID, 400)

	err := s.repo.Create(budget)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, budget.ID)
	s.False(budget.CreatedAt.IsZero())
	s.False(budget.UpdatedAt.IsZero())
}

func (s *BudgetRepositoryTestSuite) TestCreate_NonPositiveLimit() {
	budget := s.newBudget(s.userID, 0)

	err := s.repo.Create(budget)

	s.Error(err)
}

func (s *BudgetRepositoryTestSuite) TestGetByUserID() {
	s.Require().NoError(s.repo.Create(s.newBudget(s.userID, 300)))
	s.Require().NoError(s.repo.Create(s.newBudget(s.userID, 150)))
	s.Require().NoError(s.repo.Create(s.newBudget(uuid.New(), 900)))

	budgets, err := s.repo.GetByUserID(s.userID)

	s.Require().NoError(err)
	s.Len(budgets, 2)
	for _, budget := range budgets {
		s.Equal(s.userID, budget.UserID)
	}
}

func (s *BudgetRepositoryTestSuite) TestGetByUserID_Empty() {
	budgets, err := s.repo.GetByUserID(s.userID)

	s.NoError(err)
	s.Empty(budgets)
}
