package ynab

// BudgetLastUsed is accepted by every endpoint that takes a budget ID and
// resolves server-side to the most recently used budget. It is passed
// through verbatim, never resolved locally.
const BudgetLastUsed = "last-used"

// ClearedStatus is the reconciliation state of a transaction
type ClearedStatus string

// Cleared statuses
const (
	ClearedStatusCleared    ClearedStatus = "cleared"
	ClearedStatusUncleared  ClearedStatus = "uncleared"
	ClearedStatusReconciled ClearedStatus = "reconciled"
)

// Frequency is the recurrence rule of a scheduled transaction
type Frequency string

// Scheduled transaction frequencies
const (
	FrequencyNever           Frequency = "never"
	FrequencyDaily           Frequency = "daily"
	FrequencyWeekly          Frequency = "weekly"
	FrequencyEveryOtherWeek  Frequency = "everyOtherWeek"
	FrequencyTwiceAMonth     Frequency = "twiceAMonth"
	FrequencyEvery4Weeks     Frequency = "every4Weeks"
	FrequencyMonthly         Frequency = "monthly"
	FrequencyEveryOtherMonth Frequency = "everyOtherMonth"
	FrequencyEvery3Months    Frequency = "every3Months"
	FrequencyEvery4Months    Frequency = "every4Months"
	FrequencyTwiceAYear      Frequency = "twiceAYear"
	FrequencyYearly          Frequency = "yearly"
	FrequencyEveryOtherYear  Frequency = "everyOtherYear"
)

// FlagColor is the color of a transaction flag
type FlagColor string

// Flag colors
const (
	FlagColorRed    FlagColor = "red"
	FlagColorOrange FlagColor = "orange"
	FlagColorYellow FlagColor = "yellow"
	FlagColorGreen  FlagColor = "green"
	FlagColorBlue   FlagColor = "blue"
	FlagColorPurple FlagColor = "purple"
)

// Budget is a budget the authenticated user can access
type Budget struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	LastModifiedOn string          `json:"last_modified_on,omitempty"`
	CurrencyFormat *CurrencyFormat `json:"currency_format,omitempty"`
}

// CurrencyFormat describes how a budget displays money
type CurrencyFormat struct {
	ISOCode        string `json:"iso_code"`
	ExampleFormat  string `json:"example_format,omitempty"`
	CurrencySymbol string `json:"currency_symbol,omitempty"`
}

// Account is an open account within a budget. Balance is a decimal
// currency amount, negative for debt accounts.
type Account struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	OnBudget bool    `json:"on_budget"`
	Closed   bool    `json:"closed"`
	Balance  float64 `json:"balance"`
}

// CategoryGroup is a named group of budget categories
type CategoryGroup struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Hidden     bool        `json:"hidden"`
	Categories []*Category `json:"categories"`
}

// Category is a budget category with its current month amounts
type Category struct {
	ID              string  `json:"id"`
	CategoryGroupID string  `json:"category_group_id,omitempty"`
	Name            string  `json:"name"`
	Hidden          bool    `json:"hidden"`
	Note            string  `json:"note,omitempty"`
	Budgeted        float64 `json:"budgeted"`
	Activity        float64 `json:"activity"`
	Balance         float64 `json:"balance"`

	// Goal fields are only present when the category has a goal configured.
	GoalType               string   `json:"goal_type,omitempty"`
	GoalTarget             *float64 `json:"goal_target,omitempty"`
	GoalTargetMonth        string   `json:"goal_target_month,omitempty"`
	GoalPercentageComplete *int     `json:"goal_percentage_complete,omitempty"`

	Deleted bool `json:"deleted"`
}

// Transaction is a single budget transaction. Amount is a decimal currency
// amount, negative for outflows and positive for inflows.
type Transaction struct {
	ID                string        `json:"id"`
	Date              Date          `json:"date"`
	Amount            float64       `json:"amount"`
	Memo              string        `json:"memo,omitempty"`
	Cleared           ClearedStatus `json:"cleared"`
	Approved          bool          `json:"approved"`
	FlagColor         FlagColor     `json:"flag_color,omitempty"`
	AccountID         string        `json:"account_id"`
	AccountName       string        `json:"account_name,omitempty"`
	PayeeID           string        `json:"payee_id,omitempty"`
	PayeeName         string        `json:"payee_name,omitempty"`
	CategoryID        string        `json:"category_id,omitempty"`
	CategoryName      string        `json:"category_name,omitempty"`
	TransferAccountID string        `json:"transfer_account_id,omitempty"`
	Deleted           bool          `json:"deleted"`
}

// ScheduledTransaction is a recurring transaction definition
type ScheduledTransaction struct {
	ID           string    `json:"id"`
	DateFirst    Date      `json:"date_first"`
	DateNext     Date      `json:"date_next"`
	Frequency    Frequency `json:"frequency"`
	Amount       float64   `json:"amount"`
	Memo         string    `json:"memo,omitempty"`
	FlagColor    FlagColor `json:"flag_color,omitempty"`
	AccountID    string    `json:"account_id"`
	AccountName  string    `json:"account_name,omitempty"`
	PayeeName    string    `json:"payee_name,omitempty"`
	CategoryID   string    `json:"category_id,omitempty"`
	CategoryName string    `json:"category_name,omitempty"`
	Deleted      bool      `json:"deleted"`
}

// User identifies the authenticated user
type User struct {
	ID string `json:"id"`
}

// Pagination describes the window a TransactionPage covers. Paging is
// computed locally over the full result set, it is not a server feature.
type Pagination struct {
	Page        int  `json:"page"`
	PerPage     int  `json:"per_page"`
	TotalCount  int  `json:"total_count"`
	TotalPages  int  `json:"total_pages"`
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
}

// TransactionPage is one page of a transaction query
type TransactionPage struct {
	Transactions []*Transaction `json:"transactions"`
	Pagination   *Pagination    `json:"pagination"`
}

// SearchResult holds the transactions matched by a text search
type SearchResult struct {
	Transactions []*Transaction `json:"transactions"`
	Count        int            `json:"count"`
}

// SearchParams narrows a transaction text search. The zero value searches
// the whole budget with the default result limit.
type SearchParams struct {
	SinceDate Date
	UntilDate Date
	Limit     int
}

// MonthSummary is the aggregate view of one budget month
type MonthSummary struct {
	Month        string           `json:"month"`
	Income       float64          `json:"income"`
	Budgeted     float64          `json:"budgeted"`
	Activity     float64          `json:"activity"`
	Balance      float64          `json:"balance"`
	ToBeBudgeted float64          `json:"to_be_budgeted"`
	Categories   []*MonthCategory `json:"categories"`
}

// MonthCategory is one category row within a month summary
type MonthCategory struct {
	CategoryGroup string  `json:"category_group,omitempty"`
	CategoryID    string  `json:"category_id"`
	CategoryName  string  `json:"category_name"`
	Budgeted      float64 `json:"budgeted"`
	Activity      float64 `json:"activity"`
	Balance       float64 `json:"balance"`
}

// CreateTransactionParams describes a transaction to create. AccountID and
// Date are required; zero Amount is a valid (zero-value) transaction.
type CreateTransactionParams struct {
	AccountID  string
	Date       Date
	Amount     float64
	PayeeName  string
	CategoryID string
	Memo       string
	Cleared    ClearedStatus // defaults to uncleared
	Approved   bool
}

// UpdateTransactionParams carries the fields to change on an existing
// transaction. Nil fields keep their current value.
type UpdateTransactionParams struct {
	AccountID  *string
	Date       *Date
	Amount     *float64
	PayeeName  *string
	CategoryID *string
	Memo       *string
	Cleared    *ClearedStatus
	Approved   *bool
}

// UpdateCategoryParams carries the category attributes to change. Nil
// fields are omitted from the request entirely; at least one must be set.
type UpdateCategoryParams struct {
	Name            *string
	Note            *string
	CategoryGroupID *string
	GoalTarget      *float64
}

// MoveFundsParams describes a budgeted-amount move between two categories
// within one month.
type MoveFundsParams struct {
	BudgetID       string
	Month          string
	FromCategoryID string
	ToCategoryID   string
	Amount         float64
}

// MoveFundsResult reports both categories after a funds move
type MoveFundsResult struct {
	FromCategory *Category `json:"from_category"`
	ToCategory   *Category `json:"to_category"`
	AmountMoved  float64   `json:"amount_moved"`
}

// CreateScheduledTransactionParams describes a scheduled transaction to
// create. Frequency is passed through to the API untranslated.
type CreateScheduledTransactionParams struct {
	AccountID  string
	Date       Date
	Amount     float64
	Frequency  Frequency
	PayeeName  string
	CategoryID string
	Memo       string
	FlagColor  FlagColor
}

// SpendingSummaryParams scopes a category spending summary
type SpendingSummaryParams struct {
	BudgetID     string
	CategoryID   string
	SinceDate    Date
	UntilDate    Date
	IncludeGraph bool
}

// SpendingSummary aggregates spending in one category over a date range.
// Spending counts outflows only; amounts are positive decimals.
type SpendingSummary struct {
	CategoryID       string          `json:"category_id"`
	CategoryName     string          `json:"category_name"`
	SinceDate        string          `json:"since_date"`
	UntilDate        string          `json:"until_date"`
	TotalSpent       float64         `json:"total_spent"`
	AveragePerMonth  float64         `json:"average_per_month"`
	TransactionCount int             `json:"transaction_count"`
	MonthlyBreakdown []*MonthlySpend `json:"monthly_breakdown"`
	Graph            string          `json:"graph,omitempty"`
}

// MonthlySpend is one month's slice of a spending summary
type MonthlySpend struct {
	Month            string  `json:"month"`
	Spent            float64 `json:"spent"`
	TransactionCount int     `json:"transaction_count"`
}

// YearComparisonParams scopes a year-over-year spending comparison.
// NumYears defaults to 5 when not set.
type YearComparisonParams struct {
	BudgetID     string
	CategoryID   string
	StartYear    int
	NumYears     int
	IncludeGraph bool
}

// YearComparison holds per-year spending totals with year-over-year deltas
type YearComparison struct {
	CategoryID   string       `json:"category_id"`
	CategoryName string       `json:"category_name"`
	Years        []*YearSpend `json:"years"`
	Graph        string       `json:"graph,omitempty"`
}

// YearSpend is one calendar year in a year-over-year comparison. The delta
// fields are nil for the first year, which has nothing to compare against.
type YearSpend struct {
	Year               int      `json:"year"`
	TotalSpent         float64  `json:"total_spent"`
	TransactionCount   int      `json:"transaction_count"`
	ChangeFromPrevious *float64 `json:"change_from_previous,omitempty"`
	PercentChange      *float64 `json:"percent_change,omitempty"`
}
