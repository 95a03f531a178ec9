package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/dto"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/models"
	"github.com/NikolayAngelov90/Smart-Budget-Application-sub001/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// seedCategory describes one generated expense category and its typical
// spend range
type seedCategory struct {
	name     string
	minSpend float64
	maxSpend float64
}

var seedCategories = []seedCategory{
	{"Groceries", 15, 120},
	{"Dining", 8, 65},
	{"Transportation", 5, 60},
	{"Entertainment", 5, 40},
	{"Utilities", 40, 180},
	{"Shopping", 10, 150},
	{"Healthcare", 10, 90},
}

type transactionSeeder struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	faker           *gofakeit.Faker
}

// NewTransactionSeeder creates the development data seeder
func NewTransactionSeeder(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) TransactionSeederInterface {
	return &transactionSeeder{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		faker:           gofakeit.New(0),
	}
}

// SeedForUser generates months of plausible expense history for a user,
// creating the standard category set first if the user has none. About
// one transaction per month is inflated well beyond its category range
// so the outlier rule has something to find.
func (s *transactionSeeder) SeedForUser(userID uuid.UUID, months, perMonth int) (*dto.SeedTransactionsResponse, error) {
	categories, err := s.ensureCategories(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	var transactions []models.Transaction
	for monthOffset := 0; monthOffset < months; monthOffset++ {
		monthAnchor := now.AddDate(0, -monthOffset, 0)
		for i := 0; i < perMonth; i++ {
			category := categories[s.faker.Number(0, len(categories)-1)]
			spec := specFor(category.Name)

			amount := s.faker.Float64Range(spec.minSpend, spec.maxSpend)
			if i == 0 && s.faker.Bool() {
				amount = spec.maxSpend * s.faker.Float64Range(3, 6)
			}

			categoryID := category.ID
			transactions = append(transactions, models.Transaction{
				UserID:     userID,
				CategoryID: &categoryID,
				Amount:     decimal.NewFromFloat(amount).Round(2),
				Kind:       models.TransactionKindExpense,
				Date:       s.randomDayIn(monthAnchor),
			})
		}
	}

	if err := s.transactionRepo.CreateBatch(transactions); err != nil {
		return nil, fmt.Errorf("failed to seed transactions: %w", err)
	}
	created := len(transactions)

	slog.Info("seeded transactions",
		"user_id", userID,
		"months", months,
		"transactions", created)

	return &dto.SeedTransactionsResponse{
		CategoriesCreated:   len(categories),
		TransactionsCreated: created,
	}, nil
}

// ensureCategories returns the user's existing categories, creating the
// standard seed set when there are none
func (s *transactionSeeder) ensureCategories(userID uuid.UUID) ([]models.Category, error) {
	existing, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check categories: %w", err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	categories := make([]models.Category, 0, len(seedCategories))
	for _, spec := range seedCategories {
		category := models.Category{
			UserID: userID,
			Name:   spec.name,
			Kind:   models.CategoryKindExpense,
		}
		if err := s.categoryRepo.Create(&category); err != nil {
			return nil, fmt.Errorf("failed to create category %q: %w", spec.name, err)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (s *transactionSeeder) randomDayIn(anchor time.Time) time.Time {
	start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	if end.After(time.Now().UTC()) {
		end = time.Now().UTC()
	}
	return s.faker.DateRange(start, end)
}

func specFor(name string) seedCategory {
	for _, spec := range seedCategories {
		if spec.name == name {
			return spec
		}
	}
	return seedCategory{name, 5, 100}
}
