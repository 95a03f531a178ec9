package dto

// SeedTransactionsRequest configures the development data seeder
type SeedTransactionsRequest struct {
	Months   int `json:"months" validate:"omitempty,min=1,max=24"`
	PerMonth int `json:"per_month" validate:"omitempty,min=1,max=200"`
}

// SeedTransactionsResponse reports what the seeder created
type SeedTransactionsResponse struct {
	CategoriesCreated   int `json:"categories_created"`
	TransactionsCreated int `json:"transactions_created"`
}
