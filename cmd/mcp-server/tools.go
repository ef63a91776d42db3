package main

import (
	"context"
	"fmt"

	"github.com/eshaffer321/ynab-go/pkg/ynab"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ynabTools holds the YNAB client and implements all tool handlers
type ynabTools struct {
	client *ynab.Client
}

// budgetOrLastUsed falls back to the server-resolved default budget when a
// tool call omits budget_id.
func budgetOrLastUsed(id string) string {
	if id == "" {
		return ynab.BudgetLastUsed
	}
	return id
}

// parseDateInput converts a tool's YYYY-MM-DD string; empty means unset.
func parseDateInput(field, value string) (ynab.Date, error) {
	if value == "" {
		return ynab.Date{}, nil
	}
	d, err := ynab.ParseDate(value)
	if err != nil {
		return ynab.Date{}, fmt.Errorf("invalid %s format (expected YYYY-MM-DD): %w", field, err)
	}
	return d, nil
}

// TransactionEntry flattens a transaction for tool output, with the date in
// the API's YYYY-MM-DD form.
type TransactionEntry struct {
	ID           string  `json:"id" jsonschema:"Transaction ID"`
	Date         string  `json:"date" jsonschema:"Transaction date (YYYY-MM-DD)"`
	Amount       float64 `json:"amount" jsonschema:"Amount in currency units (negative for outflows)"`
	PayeeName    string  `json:"payee_name,omitempty" jsonschema:"Payee name"`
	CategoryID   string  `json:"category_id,omitempty" jsonschema:"Category ID"`
	CategoryName string  `json:"category_name,omitempty" jsonschema:"Category name"`
	AccountID    string  `json:"account_id" jsonschema:"Account ID"`
	AccountName  string  `json:"account_name,omitempty" jsonschema:"Account name"`
	Memo         string  `json:"memo,omitempty" jsonschema:"Memo text"`
	Cleared      string  `json:"cleared" jsonschema:"Cleared status (cleared, uncleared, reconciled)"`
	Approved     bool    `json:"approved" jsonschema:"Whether the transaction is approved"`
	FlagColor    string  `json:"flag_color,omitempty" jsonschema:"Flag color"`
}

func toTransactionEntry(tx *ynab.Transaction) TransactionEntry {
	return TransactionEntry{
		ID:           tx.ID,
		Date:         tx.Date.String(),
		Amount:       tx.Amount,
		PayeeName:    tx.PayeeName,
		CategoryID:   tx.CategoryID,
		CategoryName: tx.CategoryName,
		AccountID:    tx.AccountID,
		AccountName:  tx.AccountName,
		Memo:         tx.Memo,
		Cleared:      string(tx.Cleared),
		Approved:     tx.Approved,
		FlagColor:    string(tx.FlagColor),
	}
}

// ScheduledTransactionEntry flattens a scheduled transaction for tool output
type ScheduledTransactionEntry struct {
	ID           string  `json:"id" jsonschema:"Scheduled transaction ID"`
	DateFirst    string  `json:"date_first" jsonschema:"First occurrence date (YYYY-MM-DD)"`
	DateNext     string  `json:"date_next" jsonschema:"Next occurrence date (YYYY-MM-DD)"`
	Frequency    string  `json:"frequency" jsonschema:"Recurrence rule (e.g. monthly, everyOtherWeek, yearly)"`
	Amount       float64 `json:"amount" jsonschema:"Amount in currency units (negative for outflows)"`
	Memo         string  `json:"memo,omitempty" jsonschema:"Memo text"`
	FlagColor    string  `json:"flag_color,omitempty" jsonschema:"Flag color"`
	AccountID    string  `json:"account_id" jsonschema:"Account ID"`
	AccountName  string  `json:"account_name,omitempty" jsonschema:"Account name"`
	PayeeName    string  `json:"payee_name,omitempty" jsonschema:"Payee name"`
	CategoryID   string  `json:"category_id,omitempty" jsonschema:"Category ID"`
	CategoryName string  `json:"category_name,omitempty" jsonschema:"Category name"`
}

func toScheduledTransactionEntry(st *ynab.ScheduledTransaction) ScheduledTransactionEntry {
	return ScheduledTransactionEntry{
		ID:           st.ID,
		DateFirst:    st.DateFirst.String(),
		DateNext:     st.DateNext.String(),
		Frequency:    string(st.Frequency),
		Amount:       st.Amount,
		Memo:         st.Memo,
		FlagColor:    string(st.FlagColor),
		AccountID:    st.AccountID,
		AccountName:  st.AccountName,
		PayeeName:    st.PayeeName,
		CategoryID:   st.CategoryID,
		CategoryName: st.CategoryName,
	}
}

// ListBudgets tool - lists every budget the token can access
type ListBudgetsInput struct {
	// No input parameters needed
}

type ListBudgetsOutput struct {
	Budgets []*ynab.Budget `json:"budgets" jsonschema:"List of budgets"`
	Count   int            `json:"count" jsonschema:"Number of budgets returned"`
}

func (t *ynabTools) ListBudgets(ctx context.Context, req *mcp.CallToolRequest, input ListBudgetsInput) (*mcp.CallToolResult, ListBudgetsOutput, error) {
	budgets, err := t.client.Budgets.List(ctx)
	if err != nil {
		return nil, ListBudgetsOutput{}, fmt.Errorf("failed to fetch budgets: %w", err)
	}

	return nil, ListBudgetsOutput{
		Budgets: budgets,
		Count:   len(budgets),
	}, nil
}

// ListAccounts tool - lists a budget's accounts with balances
type ListAccountsInput struct {
	BudgetID string `json:"budget_id,omitempty" jsonschema:"Budget ID (use 'last-used' or omit for the default budget)"`
}

type ListAccountsOutput struct {
	Accounts []*ynab.Account `json:"accounts" jsonschema:"List of accounts (deleted accounts excluded)"`
	Count    int             `json:"count" jsonschema:"Number of accounts returned"`
}

func (t *ynabTools) ListAccounts(ctx context.Context, req *mcp.CallToolRequest, input ListAccountsInput) (*mcp.CallToolResult, ListAccountsOutput, error) {
	accounts, err := t.client.Accounts.List(ctx, budgetOrLastUsed(input.BudgetID))
	if err != nil {
		return nil, ListAccountsOutput{}, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	return nil, ListAccountsOutput{
		Accounts: accounts,
		Count:    len(accounts),
	}, nil
}

// ListCategories tool - lists categories grouped by category group
type ListCategoriesInput struct {
	BudgetID      string `json:"budget_id,omitempty" jsonschema:"Budget ID (use 'last-used' or omit for the default budget)"`
	IncludeHidden bool   `json:"include_hidden,omitempty" jsonschema:"Include hidden and deleted categories (default false)"`
}

type ListCategoriesOutput struct {
	CategoryGroups []*ynab.CategoryGroup `json:"category_groups" jsonschema:"Categories organized by group"`
	Count          int                   `json:"count" jsonschema:"Number of category groups returned"`
}

func (t *ynabTools) ListCategories(ctx context.Context, req *mcp.CallToolRequest, input ListCategoriesInput) (*mcp.CallToolResult, ListCategoriesOutput, error) {
	groups, err := t.client.Categories.List(ctx, budgetOrLastUsed(input.BudgetID), input.IncludeHidden)
	if err != nil {
		return nil, ListCategoriesOutput{}, fmt.Errorf("failed to fetch categories: %w", err)
	}

	return nil, ListCategoriesOutput{
		CategoryGroups: groups,
		Count:          len(groups),
	}, nil
}

// GetCategory tool - retrieves a single category with goal details
type GetCategoryInput struct {
	BudgetID   string `json:"budget_id,omitempty" jsonschema:"Budget ID (use 'last-used' or omit for the default budget)"`
	CategoryID string `json:"category_id" jsonschema:"Category ID"`
}

func (t *ynabTools) GetCategory(ctx context.Context, req *mcp.CallToolRequest, input GetCategoryInput) (*mcp.CallToolResult, ynab.Category, error) {
	category, err := t.client.Categories.Get(ctx, budgetOrLastUsed(input.BudgetID), input.CategoryID)
	if err != nil {
		return nil, ynab.Category{}, fmt.Errorf("failed to fetch category: %w", err)
	}

	return nil, *category, nil
}

// UpdateCategoryBudget tool - sets a category's budgeted amount for a month
type UpdateCategoryBudgetInput struct {
	BudgetID   string  `json:"budget_id,omitempty" jsonschema:"Budget ID (use 'last-used' or omit for the default budget)"`
	CategoryID string  `json:"category_id" jsonschema:"Category ID"`
	Month      string  `json:"month" jsonschema:"Month in YYYY-MM-DD format (e.g. 2026-01-01), or 'current'"`
	Budgeted   float64 `json:"budgeted" jsonschema:"New budgeted amount in currency units"`
}

func (t *ynabTools) UpdateCategoryBudget(ctx context.Context, req *mcp.CallToolRequest, input UpdateCategoryBudgetInput) (*mcp.CallToolResult, ynab.Category, error) {
	category, err := t.client.Categories.UpdateBudgeted(ctx, budgetOrLastUsed(input.BudgetID), input.Month, input.CategoryID, input.Budgeted)
	if err != nil {
		return nil, ynab.Category{}, fmt.Errorf("failed to update category budget: %w", err)
	}

	return nil, *category, nil
}

// UpdateCategory tool - partially updates a category's attributes
type UpdateCategoryInput struct {
	BudgetID        string   `json:"budget_id,omitempty" jsonschema:"Budget ID (use 'last-used' or omit for the default budget)"`
	CategoryID      string   `json:"category_id" jsonschema:"Category ID"`
	Name            *string  `json:"name,omitempty" jsonschema:"New category name"`
	Note            *string  `json:"note,omitempty" jsonschema:"New note text (an empty string clears the note)"`
	CategoryGroupID *string  `json:"category_group_id,omitempty" jsonschema:"Move the category into this group"`
	GoalTarget      *float64 `json:"goal_target,omitempty" jsonschema:"New goal target in currency units"`
}

func (t *ynabTools) UpdateCategory(ctx context.Context, req *mcp.CallToolRequest, input UpdateCategoryInput) (*mcp.CallToolResult, ynab.Category, error) {
	category, err := t.client.Categories.Update(ctx, budgetOrLastUsed(input.BudgetID), input.CategoryID, &ynab.UpdateCategoryParams{
		Name:            input.Name,
		Note:            input.Note,
		CategoryGroupID: input.CategoryGroupID,
		GoalTarget:      input.GoalTarget,
	})
	if err != nil {
		return nil, ynab.Category{}, fmt.Errorf("failed to update category: %w", err)
	}

	return nil, *category, nil
}

// MoveCategoryFunds tool - moves budgeted money between two categories
type MoveCategoryFundsInput struct {
	BudgetID       string  `json:"budget_id,omitempty" jsonschema:"Budget ID (use 'last-used' or omit for the default budget)"`
	FromCategoryID string  `json:"from_category_id" jsonschema:"Source category ID"`
	ToCategoryID   string  `json:"to_category_id" jsonschema:"Destination category ID"`
	Amount         float64 `json:"amount" jsonschema:"Amount to move in currency units"`
	Month          string  `json:"month" jsonschema:"Month in YYYY-MM-DD format (e.g. 2026-01-01), or 'current'"`
}

func (t *ynabTools) MoveCategoryFunds(ctx context.Context, req *mcp.CallToolRequest, input MoveCategoryFundsInput) (*mcp.CallToolResult, ynab.MoveFundsResult, error) {
	result, err := t.client.Categories.MoveFunds(ctx, &ynab.MoveFundsParams{
		BudgetID:       budgetOrLastUsed(input.BudgetID),
		Month:          input.Month,
		FromCategoryID: input.FromCategoryID,
		ToCategoryID:   input.ToCategoryID,
		Amount:         input.Amount,
	})
	if err != nil {
		return nil, ynab.MoveFundsResult{}, fmt.Errorf("failed to move category funds: %w", err)
	}

	return nil, *result, nil
}

// GetMonthSummary tool - retrieves a budget month with aggregated totals
type GetMonthSummaryInput struct {
	BudgetID string `json:"budget_id,omitempty" jsonschema:"Budget ID (use 'last-used' or omit for the default budget)"`
	Month    string `json:"month" jsonschema:"Month in YYYY-MM-DD format (e.g. 2026-01-01), or 'current' for the current month"`
}

func (t *ynabTools) GetMonthSummary(ctx context.Context, req *mcp.CallToolRequest, input GetMonthSummaryInput) (*mcp.CallToolResult, ynab.MonthSummary, error) {
	summary, err := t.client.Months.GetSummary(ctx, budgetOrLastUsed(input.BudgetID), input.Month)
	if err != nil {
		return nil, ynab.MonthSummary{}, fmt.Errorf("failed to fetch month summary: %w", err)
	}

	return nil, *summary, nil
}

// ListTransactions tool - queries transactions with filters and pagination
type ListTransactionsInput struct {
	BudgetID   string `json:"budget_id,omitempty" jsonschema:"Budget ID (use 'last-used' or omit for the default budget)"`
	SinceDate  string `json:"since_date,omitempty" jsonschema:"Only include transactions on or after this date (YYYY-MM-DD)"`
	UntilDate  string `json:"until_date,omitempty" jsonschema:"Only include transactions on or before this date (YYYY-MM-DD)"`
	AccountID  string `json:"account_id,omitempty" jsonschema:"Restrict to one account"`
	CategoryID string `json:"category_id,omitempty" jsonschema:"Restrict to one category"`
	Limit      int    `json:"limit,omitempty" jsonschema:"Transactions per page (default 100, maximum 500)"`
	Page       int    `json:"page,omitempty" jsonschema:"1-indexed page number (default 1)"`
}

type ListTransactionsOutput struct {
	Transactions []TransactionEntry `json:"transactions" jsonschema:"One page of matching transactions"`
	Pagination   *ynab.Pagination   `json:"pagination" jsonschema:"Page window over the full filtered result set"`
}

func (t *ynabTools) ListTransactions(ctx context.Context, req *mcp.CallToolRequest, input ListTransactionsInput) (*mcp.CallToolResult, ListTransactionsOutput, error) {
	since, err := parseDateInput("since_date", input.SinceDate)
	if err != nil {
		return nil, ListTransactionsOutput{}, err
	}
	until, err := parseDateInput("until_date", input.UntilDate)
	if err != nil {
		return nil, ListTransactionsOutput{}, err
	}

	query := t.client.Transactions.Query(budgetOrLastUsed(input.BudgetID))
	if !since.IsZero() {
		query = query.Since(since)
	}
	if !until.IsZero() {
		query = query.Until(until)
	}
	if input.AccountID != "" {
		query = query.ForAccount(input.AccountID)
	}
	if input.CategoryID != "" {
		query = query.ForCategory(input.CategoryID)
	}
	if input.Limit > 0 {
		query = query.Limit(input.Limit)
	}
	if input.Page > 0 {
		query = query.Page(input.Page)
	}

	page, err := query.Execute(ctx)
	if err != nil {
		return nil, ListTransactionsOutput{}, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	entries := make([]TransactionEntry, 0, len(page.Transactions))
	for _, tx := range page.Transactions {
		entries = append(entries, toTransactionEntry(tx))
	}

	return nil, ListTransactionsOutput{
		Transactions: entries,
		Pagination:   page.Pagination,
	}, nil
}

// SearchTransactions tool - text search over payee names and memos
type SearchTransactionsInput struct {
	BudgetID   string `json:"budget_id,omitempty" jsonschema:"Budget ID (use 'last-used' or omit for the default budget)"`
	SearchTerm string `json:"search_term" jsonschema:"Substring to match against payee name or memo (case-insensitive)"`
	SinceDate  string `json:"since_date,omitempty" jsonschema:"Only search transactions on or after this date (YYYY-MM-DD)"`
	UntilDate  string `json:"until_date,omitempty" jsonschema:"Only search transactions on or before this date (YYYY-MM-DD)"`
	Limit      int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 100, maximum 500)"`
}

type SearchTransactionsOutput struct {
	Transactions []TransactionEntry `json:"transactions" jsonschema:"Matching transactions"`
	Count        int                `json:"count" jsonschema:"Number of transactions returned"`
}

func (t *ynabTools) SearchTransactions(ctx context.Context, req *mcp.CallToolRequest, input SearchTransactionsInput) (*mcp.CallToolResult, SearchTransactionsOutput, error) {
	since, err := parseDateInput("since_date", input.SinceDate)
	if err != nil {
		return nil, SearchTransactionsOutput{}, err
	}
	until, err := parseDateInput("until_date", input.UntilDate)
	if err != nil {
		return nil, SearchTransactionsOutput{}, err
	}

	result, err := t.client.Transactions.Search(ctx, budgetOrLastUsed(input.BudgetID), input.SearchTerm, &ynab.SearchParams{
		SinceDate: since,
		UntilDate: until,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, SearchTransactionsOutput{}, fmt.Errorf("failed to search transactions: %w", err)
	}

	entries := make([]TransactionEntry, 0, len(result.Transactions))
	for _, tx := range result.Transactions {
		entries = append(entries, toTransactionEntry(tx))
	}

	return nil, SearchTransactionsOutput{
		Transactions: entries,
		Count:        result.Count,
	}, nil
}

// CreateTransaction tool - creates a new transaction
type CreateTransactionInput struct {
	BudgetID   string  `json:"budget_id,omitempty" jsonschema:"Budget ID (use 'last-used' or omit for the default budget)"`
	AccountID  string  `json:"account_id" jsonschema:"Account the transaction belongs to"`
	Date       string  `json:"date" jsonschema:"Transaction date in YYYY-MM-DD format"`
	Amount     float64 `json:"amount" jsonschema:"Amount in currency units (negative for outflows, e.g. -12.50)"`
	PayeeName  string  `json:"payee_name,omitempty" jsonschema:"Payee name"`
	CategoryID string  `json:"category_id,omitempty" jsonschema:"Category ID"`
	Memo       string  `json:"memo,omitempty" jsonschema:"Memo text"`
	Cleared    string  `json:"cleared,omitempty" jsonschema:"Cleared status: cleared, uncleared (default), or reconciled"`
	Approved   bool    `json:"approved,omitempty" jsonschema:"Mark the transaction approved (default false)"`
}

func (t *ynabTools) CreateTransaction(ctx context.Context, req *mcp.CallToolRequest, input CreateTransactionInput) (*mcp.CallToolResult, TransactionEntry, error) {
	date, err := parseDateInput("date", input.Date)
	if err != nil {
		return nil, TransactionEntry{}, err
	}

	created, err := t.client.Transactions.Create(ctx, budgetOrLastUsed(input.BudgetID), &ynab.CreateTransactionParams{
		AccountID:  input.AccountID,
		Date:       date,
		Amount:     input.Amount,
		PayeeName:  input.PayeeName,
		CategoryID: input.CategoryID,
		Memo:       input.Memo,
		Cleared:    ynab.ClearedStatus(input.Cleared),
		Approved:   input.Approved,
	})
	if err != nil {
		return nil, TransactionEntry{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil, toTransactionEntry(created), nil
}

// UpdateTransaction tool - updates fields of an existing transaction
type UpdateTransactionInput struct {
	BudgetID      string   `json:"budget_id,omitempty" jsonschema:"Budget ID (use 'last-used' or omit for the default budget)"`
	TransactionID string   `json:"transaction_id" jsonschema:"Transaction ID to update"`
	AccountID     *string  `json:"account_id,omitempty" jsonschema:"Move the transaction to this account"`
	Date          *string  `json:"date,omitempty" jsonschema:"New date in YYYY-MM-DD format"`
	Amount        *float64 `json:"amount,omitempty" jsonschema:"New amount in currency units"`
	PayeeName     *string  `json:"payee_name,omitempty" jsonschema:"New payee name"`
	CategoryID    *string  `json:"category_id,omitempty" jsonschema:"New category ID"`
	Memo          *string  `json:"memo,omitempty" jsonschema:"New memo text"`
	Cleared       *string  `json:"cleared,omitempty" jsonschema:"New cleared status: cleared, uncleared, or reconciled"`
	Approved      *bool    `json:"approved,omitempty" jsonschema:"New approved state"`
}

func (t *ynabTools) UpdateTransaction(ctx context.Context, req *mcp.CallToolRequest, input UpdateTransactionInput) (*mcp.CallToolResult, TransactionEntry, error) {
	params := &ynab.UpdateTransactionParams{
		AccountID:  input.AccountID,
		Amount:     input.Amount,
		PayeeName:  input.PayeeName,
		CategoryID: input.CategoryID,
		Memo:       input.Memo,
		Approved:   input.Approved,
	}

	if input.Date != nil {
		date, err := ynab.ParseDate(*input.Date)
		if err != nil {
			return nil, TransactionEntry{}, fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
		}
		params.Date = &date
	}

	if input.Cleared != nil {
		cleared := ynab.ClearedStatus(*input.Cleared)
		params.Cleared = &cleared
	}

	updated, err := t.client.Transactions.Update(ctx, budgetOrLastUsed(input.BudgetID), input.TransactionID, params)
	if err != nil {
		return nil, TransactionEntry{}, fmt.Errorf("failed to update transaction: %w", err)
	}

	return nil, toTransactionEntry(updated), nil
}

// GetUnapprovedTransactions tool - lists transactions awaiting approval
type GetUnapprovedTransactionsInput struct {
	BudgetID string `json:"budget_id,omitempty" jsonschema:"Budget ID (use 'last-used' or omit for the default budget)"`
}

type GetUnapprovedTransactionsOutput struct {
	Transactions []TransactionEntry `json:"transactions" jsonschema:"Transactions awaiting approval"`
	Count        int                `json:"count" jsonschema:"Number of transactions returned"`
}

func (t *ynabTools) GetUnapprovedTransactions(ctx context.Context, req *mcp.CallToolRequest, input GetUnapprovedTransactionsInput) (*mcp.CallToolResult, GetUnapprovedTransactionsOutput, error) {
	transactions, err := t.client.Transactions.Unapproved(ctx, budgetOrLastUsed(input.BudgetID))
	if err != nil {
		return nil, GetUnapprovedTransactionsOutput{}, fmt.Errorf("failed to fetch unapproved transactions: %w", err)
	}

	entries := make([]TransactionEntry, 0, len(transactions))
	for _, tx := range transactions {
		entries = append(entries, toTransactionEntry(tx))
	}

	return nil, GetUnapprovedTransactionsOutput{
		Transactions: entries,
		Count:        len(entries),
	}, nil
}

// GetCategorySpendingSummary tool - spending report for one category
type GetCategorySpendingSummaryInput struct {
	BudgetID     string `json:"budget_id,omitempty" jsonschema:"Budget ID (use 'last-used' or omit for the default budget)"`
	CategoryID   string `json:"category_id" jsonschema:"Category ID"`
	SinceDate    string `json:"since_date" jsonschema:"Start of the date range (YYYY-MM-DD)"`
	UntilDate    string `json:"until_date" jsonschema:"End of the date range (YYYY-MM-DD)"`
	IncludeGraph *bool  `json:"include_graph,omitempty" jsonschema:"Include a text chart of monthly spending (default true)"`
}

func (t *ynabTools) GetCategorySpendingSummary(ctx context.Context, req *mcp.CallToolRequest, input GetCategorySpendingSummaryInput) (*mcp.CallToolResult, ynab.SpendingSummary, error) {
	since, err := parseDateInput("since_date", input.SinceDate)
	if err != nil {
		return nil, ynab.SpendingSummary{}, err
	}
	until, err := parseDateInput("until_date", input.UntilDate)
	if err != nil {
		return nil, ynab.SpendingSummary{}, err
	}

	summary, err := t.client.Spending.CategorySummary(ctx, &ynab.SpendingSummaryParams{
		BudgetID:     budgetOrLastUsed(input.BudgetID),
		CategoryID:   input.CategoryID,
		SinceDate:    since,
		UntilDate:    until,
		IncludeGraph: input.IncludeGraph == nil || *input.IncludeGraph,
	})
	if err != nil {
		return nil, ynab.SpendingSummary{}, fmt.Errorf("failed to fetch spending summary: %w", err)
	}

	return nil, *summary, nil
}

// CompareSpendingByYear tool - year-over-year spending comparison
type CompareSpendingByYearInput struct {
	BudgetID     string `json:"budget_id,omitempty" jsonschema:"Budget ID (use 'last-used' or omit for the default budget)"`
	CategoryID   string `json:"category_id" jsonschema:"Category ID"`
	StartYear    int    `json:"start_year" jsonschema:"First calendar year of the comparison (e.g. 2022)"`
	NumYears     int    `json:"num_years,omitempty" jsonschema:"Number of years to compare (default 5)"`
	IncludeGraph *bool  `json:"include_graph,omitempty" jsonschema:"Include a text chart of yearly totals (default true)"`
}

func (t *ynabTools) CompareSpendingByYear(ctx context.Context, req *mcp.CallToolRequest, input CompareSpendingByYearInput) (*mcp.CallToolResult, ynab.YearComparison, error) {
	comparison, err := t.client.Spending.CompareYears(ctx, &ynab.YearComparisonParams{
		BudgetID:     budgetOrLastUsed(input.BudgetID),
		CategoryID:   input.CategoryID,
		StartYear:    input.StartYear,
		NumYears:     input.NumYears,
		IncludeGraph: input.IncludeGraph == nil || *input.IncludeGraph,
	})
	if err != nil {
		return nil, ynab.YearComparison{}, fmt.Errorf("failed to compare spending by year: %w", err)
	}

	return nil, *comparison, nil
}

// ListScheduledTransactions tool - lists all recurring transactions
type ListScheduledTransactionsInput struct {
	BudgetID string `json:"budget_id,omitempty" jsonschema:"Budget ID (use 'last-used' or omit for the default budget)"`
}

type ListScheduledTransactionsOutput struct {
	ScheduledTransactions []ScheduledTransactionEntry `json:"scheduled_transactions" jsonschema:"All scheduled transactions"`
	Count                 int                         `json:"count" jsonschema:"Number of scheduled transactions returned"`
}

func (t *ynabTools) ListScheduledTransactions(ctx context.Context, req *mcp.CallToolRequest, input ListScheduledTransactionsInput) (*mcp.CallToolResult, ListScheduledTransactionsOutput, error) {
	scheduled, err := t.client.Scheduled.List(ctx, budgetOrLastUsed(input.BudgetID))
	if err != nil {
		return nil, ListScheduledTransactionsOutput{}, fmt.Errorf("failed to fetch scheduled transactions: %w", err)
	}

	entries := make([]ScheduledTransactionEntry, 0, len(scheduled))
	for _, st := range scheduled {
		entries = append(entries, toScheduledTransactionEntry(st))
	}

	return nil, ListScheduledTransactionsOutput{
		ScheduledTransactions: entries,
		Count:                 len(entries),
	}, nil
}

// CreateScheduledTransaction tool - creates a recurring transaction
type CreateScheduledTransactionInput struct {
	BudgetID   string  `json:"budget_id,omitempty" jsonschema:"Budget ID (use 'last-used' or omit for the default budget)"`
	AccountID  string  `json:"account_id" jsonschema:"Account the scheduled transaction belongs to"`
	Date       string  `json:"date" jsonschema:"First occurrence in YYYY-MM-DD format (today or later)"`
	Amount     float64 `json:"amount" jsonschema:"Amount in currency units (negative for outflows)"`
	Frequency  string  `json:"frequency" jsonschema:"Recurrence rule: never, daily, weekly, everyOtherWeek, twiceAMonth, every4Weeks, monthly, everyOtherMonth, every3Months, every4Months, twiceAYear, yearly, or everyOtherYear"`
	PayeeName  string  `json:"payee_name,omitempty" jsonschema:"Payee name"`
	CategoryID string  `json:"category_id,omitempty" jsonschema:"Category ID"`
	Memo       string  `json:"memo,omitempty" jsonschema:"Memo text"`
	FlagColor  string  `json:"flag_color,omitempty" jsonschema:"Flag color: red, orange, yellow, green, blue, or purple"`
}

func (t *ynabTools) CreateScheduledTransaction(ctx context.Context, req *mcp.CallToolRequest, input CreateScheduledTransactionInput) (*mcp.CallToolResult, ScheduledTransactionEntry, error) {
	date, err := parseDateInput("date", input.Date)
	if err != nil {
		return nil, ScheduledTransactionEntry{}, err
	}

	created, err := t.client.Scheduled.Create(ctx, budgetOrLastUsed(input.BudgetID), &ynab.CreateScheduledTransactionParams{
		AccountID:  input.AccountID,
		Date:       date,
		Amount:     input.Amount,
		Frequency:  ynab.Frequency(input.Frequency),
		PayeeName:  input.PayeeName,
		CategoryID: input.CategoryID,
		Memo:       input.Memo,
		FlagColor:  ynab.FlagColor(input.FlagColor),
	})
	if err != nil {
		return nil, ScheduledTransactionEntry{}, fmt.Errorf("failed to create scheduled transaction: %w", err)
	}

	return nil, toScheduledTransactionEntry(created), nil
}

// DeleteScheduledTransaction tool - deletes a recurring transaction
type DeleteScheduledTransactionInput struct {
	BudgetID               string `json:"budget_id,omitempty" jsonschema:"Budget ID (use 'last-used' or omit for the default budget)"`
	ScheduledTransactionID string `json:"scheduled_transaction_id" jsonschema:"Scheduled transaction ID to delete"`
}

func (t *ynabTools) DeleteScheduledTransaction(ctx context.Context, req *mcp.CallToolRequest, input DeleteScheduledTransactionInput) (*mcp.CallToolResult, ScheduledTransactionEntry, error) {
	deleted, err := t.client.Scheduled.Delete(ctx, budgetOrLastUsed(input.BudgetID), input.ScheduledTransactionID)
	if err != nil {
		return nil, ScheduledTransactionEntry{}, fmt.Errorf("failed to delete scheduled transaction: %w", err)
	}

	return nil, toScheduledTransactionEntry(deleted), nil
}
