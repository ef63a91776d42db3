package ynab

import (
	"context"

	"github.com/eshaffer321/ynab-go/internal/transport"
)

// Transport executes API requests. The default implementation speaks REST
// to the public API; tests substitute mocks.
type Transport interface {
	// Do executes a request and decodes the response data into result
	Do(ctx context.Context, req *transport.Request, result interface{}) error

	// SetAuth replaces the bearer token used for subsequent requests
	SetAuth(token string)
}

// BudgetService handles budget-level operations
type BudgetService interface {
	// List retrieves all budgets the token can access
	List(ctx context.Context) ([]*Budget, error)
}

// AccountService handles account operations
type AccountService interface {
	// List retrieves the non-deleted accounts of a budget
	List(ctx context.Context, budgetID string) ([]*Account, error)
}

// CategoryService handles category operations
type CategoryService interface {
	// List retrieves categories grouped by category group
	List(ctx context.Context, budgetID string, includeHidden bool) ([]*CategoryGroup, error)

	// Get retrieves a single category with goal details
	Get(ctx context.Context, budgetID, categoryID string) (*Category, error)

	// UpdateBudgeted sets the budgeted amount of a category for one month
	UpdateBudgeted(ctx context.Context, budgetID, month, categoryID string, budgeted float64) (*Category, error)

	// Update changes category attributes; nil params fields are left untouched
	Update(ctx context.Context, budgetID, categoryID string, params *UpdateCategoryParams) (*Category, error)

	// MoveFunds moves budgeted money between two categories in one month
	MoveFunds(ctx context.Context, params *MoveFundsParams) (*MoveFundsResult, error)
}

// MonthService handles budget month operations
type MonthService interface {
	// GetSummary retrieves one month with aggregated totals
	GetSummary(ctx context.Context, budgetID, month string) (*MonthSummary, error)
}

// TransactionService handles transaction operations
type TransactionService interface {
	// Query returns a transaction query builder
	Query(budgetID string) TransactionQueryBuilder

	// Get retrieves a single transaction
	Get(ctx context.Context, budgetID, transactionID string) (*Transaction, error)

	// Create creates a new transaction
	Create(ctx context.Context, budgetID string, params *CreateTransactionParams) (*Transaction, error)

	// Update changes an existing transaction; unset fields keep their values
	Update(ctx context.Context, budgetID, transactionID string, params *UpdateTransactionParams) (*Transaction, error)

	// Search finds transactions whose payee name or memo contains a term
	Search(ctx context.Context, budgetID, searchTerm string, params *SearchParams) (*SearchResult, error)

	// Unapproved retrieves transactions awaiting approval
	Unapproved(ctx context.Context, budgetID string) ([]*Transaction, error)
}

// TransactionQueryBuilder builds transaction queries
type TransactionQueryBuilder interface {
	// Filter methods
	Since(date Date) TransactionQueryBuilder
	Until(date Date) TransactionQueryBuilder
	ForAccount(accountID string) TransactionQueryBuilder
	ForCategory(categoryID string) TransactionQueryBuilder
	Limit(limit int) TransactionQueryBuilder
	Page(page int) TransactionQueryBuilder

	// Execute runs the query
	Execute(ctx context.Context) (*TransactionPage, error)
}

// ScheduledTransactionService handles scheduled transaction operations
type ScheduledTransactionService interface {
	// List retrieves all scheduled transactions of a budget
	List(ctx context.Context, budgetID string) ([]*ScheduledTransaction, error)

	// Create creates a new scheduled transaction
	Create(ctx context.Context, budgetID string, params *CreateScheduledTransactionParams) (*ScheduledTransaction, error)

	// Delete removes a scheduled transaction and returns its final state
	Delete(ctx context.Context, budgetID, scheduledTransactionID string) (*ScheduledTransaction, error)
}

// SpendingService handles spending analysis
type SpendingService interface {
	// CategorySummary aggregates spending in one category over a date range
	CategorySummary(ctx context.Context, params *SpendingSummaryParams) (*SpendingSummary, error)

	// CompareYears totals spending in one category across calendar years
	CompareYears(ctx context.Context, params *YearComparisonParams) (*YearComparison, error)
}

// UserService handles user operations
type UserService interface {
	// Get retrieves the authenticated user
	Get(ctx context.Context) (*User, error)
}
