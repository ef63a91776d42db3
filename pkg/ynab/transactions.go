package ynab

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/eshaffer321/ynab-go/internal/transport"
	"github.com/pkg/errors"
)

const (
	// DefaultPageSize is the per-page default for transaction queries
	DefaultPageSize = 100

	// MaxPageSize caps per-page; larger requests are clamped, not rejected
	MaxPageSize = 500
)

// transactionService implements the TransactionService interface
type transactionService struct {
	client *Client
}

// Query returns a transaction query builder
func (s *transactionService) Query(budgetID string) TransactionQueryBuilder {
	return &transactionQueryBuilder{
		client:   s.client,
		budgetID: budgetID,
		limit:    DefaultPageSize,
		page:     1,
	}
}

// Get retrieves a single transaction
func (s *transactionService) Get(ctx context.Context, budgetID, transactionID string) (*Transaction, error) {
	w, err := s.getWire(ctx, "get_transaction", budgetID, transactionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}
	return w.toTransaction(), nil
}

// Create creates a new transaction. Cleared defaults to uncleared and
// Approved to false, so imported drafts still pass through the approval
// flow. The amount is a decimal and is truncated to milliunits on the
// way out.
func (s *transactionService) Create(ctx context.Context, budgetID string, params *CreateTransactionParams) (*Transaction, error) {
	if params == nil {
		return nil, &ValidationError{
			Field:   "params",
			Message: "transaction parameters are required",
		}
	}
	if params.AccountID == "" {
		return nil, &ValidationError{
			Field:   "account_id",
			Message: "account_id is required",
		}
	}
	if params.Date.IsZero() {
		return nil, &ValidationError{
			Field:   "date",
			Message: "date is required (YYYY-MM-DD)",
		}
	}

	cleared := params.Cleared
	if cleared == "" {
		cleared = ClearedStatusUncleared
	}

	var result transactionData

	req := &transport.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("budgets/%s/transactions", budgetID),
		Body: &saveTransactionRequest{
			Transaction: &saveTransaction{
				AccountID:  params.AccountID,
				Date:       params.Date.String(),
				Amount:     ToMilliunits(params.Amount),
				PayeeName:  optStr(params.PayeeName),
				CategoryID: optStr(params.CategoryID),
				Memo:       optStr(params.Memo),
				Cleared:    string(cleared),
				Approved:   params.Approved,
			},
		},
	}

	if err := s.client.execute(ctx, "create_transaction", req, &result); err != nil {
		return nil, errors.Wrap(err, "failed to create transaction")
	}

	return result.Transaction.toTransaction(), nil
}

// Update changes an existing transaction. The API expects a full payload
// on write, so the current transaction is fetched first and every unset
// params field is resolved to its existing value. Untouched fields round-
// trip at the wire level (milliunits, raw date string) so the merge never
// perturbs them.
func (s *transactionService) Update(ctx context.Context, budgetID, transactionID string, params *UpdateTransactionParams) (*Transaction, error) {
	if params == nil {
		params = &UpdateTransactionParams{}
	}

	existing, err := s.getWire(ctx, "update_transaction", budgetID, transactionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update transaction")
	}

	merged := &saveTransaction{
		AccountID:  existing.AccountID,
		Date:       existing.Date,
		Amount:     existing.Amount,
		PayeeName:  existing.PayeeName,
		CategoryID: existing.CategoryID,
		Memo:       existing.Memo,
		Cleared:    existing.Cleared,
		Approved:   existing.Approved,
	}

	if params.AccountID != nil {
		merged.AccountID = *params.AccountID
	}
	if params.Date != nil {
		merged.Date = params.Date.String()
	}
	if params.Amount != nil {
		merged.Amount = ToMilliunits(*params.Amount)
	}
	if params.PayeeName != nil {
		merged.PayeeName = params.PayeeName
	}
	if params.CategoryID != nil {
		merged.CategoryID = params.CategoryID
	}
	if params.Memo != nil {
		merged.Memo = params.Memo
	}
	if params.Cleared != nil {
		merged.Cleared = string(*params.Cleared)
	}
	if params.Approved != nil {
		merged.Approved = *params.Approved
	}

	var result transactionData

	req := &transport.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("budgets/%s/transactions/%s", budgetID, transactionID),
		Body:   &saveTransactionRequest{Transaction: merged},
	}

	if err := s.client.execute(ctx, "update_transaction", req, &result); err != nil {
		return nil, errors.Wrap(err, "failed to update transaction")
	}

	return result.Transaction.toTransaction(), nil
}

// Search finds transactions whose payee name or memo contains searchTerm,
// compared case-insensitively. The API has no text search, so the budget's
// transactions are fetched and matched locally; rows with neither a payee
// name nor a memo never match.
func (s *transactionService) Search(ctx context.Context, budgetID, searchTerm string, params *SearchParams) (*SearchResult, error) {
	if params == nil {
		params = &SearchParams{}
	}
	limit := clampPageSize(params.Limit)

	rows, err := fetchTransactions(ctx, s.client, "search_transactions", budgetID, "", params.SinceDate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search transactions")
	}

	term := strings.ToLower(searchTerm)

	matches := make([]*Transaction, 0)
	for _, w := range rows {
		t := w.toTransaction()
		if !params.UntilDate.IsZero() && t.Date.After(params.UntilDate.Time) {
			continue
		}
		// Rows with neither field never match, even for an empty term.
		if t.PayeeName == "" && t.Memo == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(t.PayeeName), term) &&
			!strings.Contains(strings.ToLower(t.Memo), term) {
			continue
		}
		matches = append(matches, t)
		if len(matches) >= limit {
			break
		}
	}

	return &SearchResult{
		Transactions: matches,
		Count:        len(matches),
	}, nil
}

// Unapproved retrieves transactions awaiting approval. The API has no
// native filter for this, so the full set is fetched and reduced locally.
func (s *transactionService) Unapproved(ctx context.Context, budgetID string) ([]*Transaction, error) {
	rows, err := fetchTransactions(ctx, s.client, "get_unapproved_transactions", budgetID, "", Date{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get unapproved transactions")
	}

	transactions := make([]*Transaction, 0)
	for _, w := range rows {
		if w.Approved || w.Deleted {
			continue
		}
		transactions = append(transactions, w.toTransaction())
	}

	return transactions, nil
}

// getWire fetches one transaction in its wire shape. Update needs the raw
// milliunits and date string for its merge, so conversion is left to the
// caller.
func (s *transactionService) getWire(ctx context.Context, operation, budgetID, transactionID string) (*wireTransaction, error) {
	var result transactionData

	req := &transport.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("budgets/%s/transactions/%s", budgetID, transactionID),
	}

	if err := s.client.execute(ctx, operation, req, &result); err != nil {
		return nil, err
	}

	return result.Transaction, nil
}

// fetchTransactions retrieves a budget's transactions in bulk. With an
// accountID the account-scoped endpoint is used, otherwise the budget-wide
// one; since is the only filter either endpoint supports natively and is
// sent as a query parameter. Everything else is filtered locally by the
// callers.
func fetchTransactions(ctx context.Context, c *Client, operation, budgetID, accountID string, since Date) ([]*wireTransaction, error) {
	path := fmt.Sprintf("budgets/%s/transactions", budgetID)
	if accountID != "" {
		path = fmt.Sprintf("budgets/%s/accounts/%s/transactions", budgetID, accountID)
	}

	var query url.Values
	if !since.IsZero() {
		query = url.Values{}
		query.Set("since_date", since.String())
	}

	var result transactionsData

	req := &transport.Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	}

	if err := c.execute(ctx, operation, req, &result); err != nil {
		return nil, err
	}

	return result.Transactions, nil
}

// transactionQueryBuilder implements TransactionQueryBuilder
type transactionQueryBuilder struct {
	client     *Client
	budgetID   string
	since      Date
	until      Date
	accountID  string
	categoryID string
	limit      int
	page       int
}

// Since keeps only transactions on or after date (sent to the API natively)
func (b *transactionQueryBuilder) Since(date Date) TransactionQueryBuilder {
	b.since = date
	return b
}

// Until keeps only transactions on or before date (filtered locally)
func (b *transactionQueryBuilder) Until(date Date) TransactionQueryBuilder {
	b.until = date
	return b
}

// ForAccount scopes the query to one account's transactions
func (b *transactionQueryBuilder) ForAccount(accountID string) TransactionQueryBuilder {
	b.accountID = accountID
	return b
}

// ForCategory keeps only transactions in one category (filtered locally;
// the bulk endpoints have no category parameter)
func (b *transactionQueryBuilder) ForCategory(categoryID string) TransactionQueryBuilder {
	b.categoryID = categoryID
	return b
}

// Limit sets the page size (default 100, clamped to 500)
func (b *transactionQueryBuilder) Limit(limit int) TransactionQueryBuilder {
	b.limit = limit
	return b
}

// Page selects the 1-indexed result page
func (b *transactionQueryBuilder) Page(page int) TransactionQueryBuilder {
	b.page = page
	return b
}

// Execute runs the query. The account endpoint takes precedence when both
// an account and a category are set; the category then narrows the result
// locally. Pagination is computed here over the filtered set, not by the
// API.
func (b *transactionQueryBuilder) Execute(ctx context.Context) (*TransactionPage, error) {
	rows, err := fetchTransactions(ctx, b.client, "list_transactions", b.budgetID, b.accountID, b.since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transactions")
	}

	filtered := make([]*Transaction, 0, len(rows))
	for _, w := range rows {
		t := w.toTransaction()
		if b.categoryID != "" && t.CategoryID != b.categoryID {
			continue
		}
		if !b.until.IsZero() && t.Date.After(b.until.Time) {
			continue
		}
		filtered = append(filtered, t)
	}

	perPage := clampPageSize(b.limit)
	page := b.page
	if page < 1 {
		page = 1
	}

	totalCount := len(filtered)
	totalPages := (totalCount + perPage - 1) / perPage

	start := (page - 1) * perPage
	end := start + perPage
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}

	return &TransactionPage{
		Transactions: filtered[start:end],
		Pagination: &Pagination{
			Page:        page,
			PerPage:     perPage,
			TotalCount:  totalCount,
			TotalPages:  totalPages,
			HasNextPage: page < totalPages,
			HasPrevPage: page > 1,
		},
	}, nil
}

// clampPageSize normalizes a requested page size into [1, MaxPageSize],
// falling back to the default when unset.
func clampPageSize(limit int) int {
	if limit < 1 {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}
