package repositories

import (
	"testing"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/database"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// CategoryRepositoryTestSuite defines the test suite for CategoryRepository
type CategoryRepositoryTestSuite struct {
	suite.Suite
	db     *database.DB
	repo   CategoryRepositoryInterface
	userID uuid.UUID
}

// SetupTest runs before each test
func (s *CategoryRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
	s.userID = uuid.New()
}

// TearDownTest runs after each test
func (s *CategoryRepositoryTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestCategoryRepositorySuite runs the test suite
func TestCategoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositoryTestSuite))
}

func (s *CategoryRepositoryTestSuite) TestCreate() {
	category := &models.Category{
		UserID: s.userID,
		Name:   "Groceries",
		Kind:   models.CategoryKindExpense,
	}

	err := s.repo.Create(category)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, category.ID)
	s.False(category.CreatedAt.IsZero())
}

func (s *CategoryRepositoryTestSuite) TestCreate_InvalidKind() {
	category := &models.Category{
		UserID: s.userID,
		Name:   "Groceries",
		Kind:   "sideways",
	}

	err := s.repo.Create(category)

	s.ErrorIs(err, models.ErrInvalidCategoryKind)
}

func (s *CategoryRepositoryTestSuite) TestCreate_DuplicateName() {
	database.CreateTestCategory(s.T(), s.db, s.userID, "Groceries")

	err := s.repo.Create(&models.Category{
		UserID: s.userID,
		Name:   "Groceries",
		Kind:   models.CategoryKindExpense,
	})

	s.Error(err)
}

func (s *CategoryRepositoryTestSuite) TestCreate_SameNameDifferentUsers() {
	database.CreateTestCategory(s.T(), s.db, s.userID, "Groceries")

	err := s.repo.Create(&models.Category{
		UserID: uuid.New(),
		Name:   "Groceries",
		Kind:   models.CategoryKindExpense,
	})

	s.NoError(err)
}

func (s *CategoryRepositoryTestSuite) TestGetByID() {
	created := database.CreateTestCategory(s.T(), s.db, s.userID, "Dining")

	found, err := s.repo.GetByID(created.ID)

	s.Require().NoError(err)
	s.Equal(created.ID, found.ID)
	s.Equal("Dining", found.Name)
}

func (s *CategoryRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())

	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryRepositoryTestSuite) TestGetByUserID_OrderedByName() {
	database.CreateTestCategory(s.T(), s.db, s.userID, "Transport")
	database.CreateTestCategory(s.T(), s.db, s.userID, "Dining")
	database.CreateTestCategory(s.T(), s.db, uuid.New(), "Groceries")

	categories, err := s.repo.GetByUserID(s.userID)

	s.Require().NoError(err)
	s.Require().Len(categories, 2)
	s.Equal("Dining", categories[0].Name)
	s.Equal("Transport", categories[1].Name)
}

func (s *CategoryRepositoryTestSuite) TestGetByUserID_Empty() {
	categories, err := s.repo.GetByUserID(s.userID)

	s.NoError(err)
	s.Empty(categories)
}
