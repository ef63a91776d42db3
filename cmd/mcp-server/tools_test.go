package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eshaffer321/ynab-go/pkg/ynab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestTools wires the tool handlers to a stub API server that is torn
// down with the test.
func newTestTools(t *testing.T, handler http.Handler) *ynabTools {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := ynab.NewClient(&ynab.ClientOptions{
		Token:   "test-token",
		BaseURL: srv.URL,
	})
	require.NoError(t, err)

	return &ynabTools{client: client}
}

func TestListBudgetsTool(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/budgets", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"budgets": [
			{"id": "budget-1", "name": "Family Budget", "last_modified_on": "2026-08-01T12:00:00Z", "currency_format": {"iso_code": "USD", "currency_symbol": "$"}},
			{"id": "budget-2", "name": "Side Business"}
		]}}`)
	})

	tools := newTestTools(t, mux)

	_, output, err := tools.ListBudgets(context.Background(), nil, ListBudgetsInput{})

	require.NoError(t, err)
	assert.Equal(t, 2, output.Count)
	assert.Equal(t, "Family Budget", output.Budgets[0].Name)
	assert.Equal(t, "USD", output.Budgets[0].CurrencyFormat.ISOCode)
	assert.Nil(t, output.Budgets[1].CurrencyFormat)
}

func TestListTransactionsTool(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/budgets/budget-1/transactions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-05-01", r.URL.Query().Get("since_date"))
		fmt.Fprint(w, `{"data": {"transactions": [
			{"id": "txn-1", "date": "2026-05-02", "amount": -12500, "payee_name": "Grocer", "cleared": "cleared", "approved": true, "account_id": "account-1", "account_name": "Checking"},
			{"id": "txn-2", "date": "2026-05-03", "amount": -8000, "payee_name": "Cafe", "cleared": "uncleared", "approved": false, "account_id": "account-1", "account_name": "Checking"},
			{"id": "txn-3", "date": "2026-05-04", "amount": 150000, "payee_name": "Employer", "cleared": "cleared", "approved": true, "account_id": "account-1", "account_name": "Checking"}
		]}}`)
	})

	tools := newTestTools(t, mux)

	_, output, err := tools.ListTransactions(context.Background(), nil, ListTransactionsInput{
		BudgetID:  "budget-1",
		SinceDate: "2026-05-01",
		Limit:     2,
		Page:      2,
	})

	require.NoError(t, err)
	require.Len(t, output.Transactions, 1)
	assert.Equal(t, "txn-3", output.Transactions[0].ID)
	assert.Equal(t, "2026-05-04", output.Transactions[0].Date)
	assert.Equal(t, 150.0, output.Transactions[0].Amount)

	require.NotNil(t, output.Pagination)
	assert.Equal(t, 3, output.Pagination.TotalCount)
	assert.Equal(t, 2, output.Pagination.TotalPages)
	assert.True(t, output.Pagination.HasPrevPage)
	assert.False(t, output.Pagination.HasNextPage)
}

func TestListTransactionsTool_InvalidDate(t *testing.T) {
	tools := newTestTools(t, http.NotFoundHandler())

	_, _, err := tools.ListTransactions(context.Background(), nil, ListTransactionsInput{
		SinceDate: "05/01/2026",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid since_date format")
}

func TestSearchTransactionsTool(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/budgets/last-used/transactions", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"transactions": [
			{"id": "txn-1", "date": "2026-06-10", "amount": -4500, "payee_name": "Corner Coffee", "memo": null, "cleared": "cleared", "approved": true, "account_id": "account-1", "account_name": "Checking"},
			{"id": "txn-2", "date": "2026-06-11", "amount": -20000, "payee_name": null, "memo": null, "cleared": "cleared", "approved": true, "account_id": "account-1", "account_name": "Checking"},
			{"id": "txn-3", "date": "2026-06-12", "amount": -61200, "payee_name": "Grocer", "memo": "weekly run", "cleared": "cleared", "approved": true, "account_id": "account-1", "account_name": "Checking"}
		]}}`)
	})

	tools := newTestTools(t, mux)

	// budget_id omitted on purpose: the default budget is used
	_, output, err := tools.SearchTransactions(context.Background(), nil, SearchTransactionsInput{
		SearchTerm: "coffee",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Count)
	require.Len(t, output.Transactions, 1)
	assert.Equal(t, "txn-1", output.Transactions[0].ID)
	assert.Equal(t, "Corner Coffee", output.Transactions[0].PayeeName)
}

func TestCreateTransactionTool(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/budgets/budget-1/transactions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body struct {
			Transaction struct {
				AccountID string  `json:"account_id"`
				Date      string  `json:"date"`
				Amount    int64   `json:"amount"`
				PayeeName *string `json:"payee_name"`
				Cleared   string  `json:"cleared"`
				Approved  bool    `json:"approved"`
			} `json:"transaction"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		// Decimal input arrives as truncated milliunits with the defaults applied
		assert.Equal(t, "account-1", body.Transaction.AccountID)
		assert.Equal(t, "2026-08-20", body.Transaction.Date)
		assert.Equal(t, int64(-45250), body.Transaction.Amount)
		assert.Equal(t, "uncleared", body.Transaction.Cleared)
		assert.False(t, body.Transaction.Approved)
		require.NotNil(t, body.Transaction.PayeeName)
		assert.Equal(t, "Cafe", *body.Transaction.PayeeName)

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"data": {"transaction": {"id": "txn-new", "date": "2026-08-20", "amount": -45250, "payee_name": "Cafe", "cleared": "uncleared", "approved": false, "account_id": "account-1", "account_name": "Checking"}}}`)
	})

	tools := newTestTools(t, mux)

	_, entry, err := tools.CreateTransaction(context.Background(), nil, CreateTransactionInput{
		BudgetID:  "budget-1",
		AccountID: "account-1",
		Date:      "2026-08-20",
		Amount:    -45.25,
		PayeeName: "Cafe",
	})

	require.NoError(t, err)
	assert.Equal(t, "txn-new", entry.ID)
	assert.Equal(t, "2026-08-20", entry.Date)
	assert.Equal(t, -45.25, entry.Amount)
	assert.Equal(t, "uncleared", entry.Cleared)
	assert.False(t, entry.Approved)
}

func TestUpdateCategoryTool_RequiresAtLeastOneField(t *testing.T) {
	tools := newTestTools(t, http.NotFoundHandler())

	_, _, err := tools.UpdateCategory(context.Background(), nil, UpdateCategoryInput{
		BudgetID:   "budget-1",
		CategoryID: "cat-1",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one field")
}

func TestGetCategorySpendingSummaryTool_GraphDefaultsOn(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/budgets/budget-1/categories/cat-coffee", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"category": {"id": "cat-coffee", "category_group_id": "group-food", "name": "Coffee", "budgeted": 50000, "activity": -20000, "balance": 30000}}}`)
	})
	mux.HandleFunc("/budgets/budget-1/transactions", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": {"transactions": [
			{"id": "txn-1", "date": "2026-01-10", "amount": -12500, "payee_name": "Brew Bar", "cleared": "cleared", "approved": true, "account_id": "account-1", "account_name": "Checking", "category_id": "cat-coffee"},
			{"id": "txn-2", "date": "2026-02-08", "amount": -7500, "payee_name": "Brew Bar", "cleared": "cleared", "approved": true, "account_id": "account-1", "account_name": "Checking", "category_id": "cat-coffee"}
		]}}`)
	})

	tools := newTestTools(t, mux)

	// include_graph omitted: the chart defaults on
	_, summary, err := tools.GetCategorySpendingSummary(context.Background(), nil, GetCategorySpendingSummaryInput{
		BudgetID:   "budget-1",
		CategoryID: "cat-coffee",
		SinceDate:  "2026-01-01",
		UntilDate:  "2026-02-28",
	})

	require.NoError(t, err)
	assert.Equal(t, "Coffee", summary.CategoryName)
	assert.Equal(t, 20.0, summary.TotalSpent)
	require.Len(t, summary.MonthlyBreakdown, 2)
	assert.NotEmpty(t, summary.Graph)

	// An explicit false suppresses it
	off := false
	_, summary, err = tools.GetCategorySpendingSummary(context.Background(), nil, GetCategorySpendingSummaryInput{
		BudgetID:     "budget-1",
		CategoryID:   "cat-coffee",
		SinceDate:    "2026-01-01",
		UntilDate:    "2026-02-28",
		IncludeGraph: &off,
	})

	require.NoError(t, err)
	assert.Empty(t, summary.Graph)
}

func TestDeleteScheduledTransactionTool(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/budgets/budget-1/scheduled_transactions/sched-9", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		fmt.Fprint(w, `{"data": {"scheduled_transaction": {"id": "sched-9", "date_first": "2026-01-15", "date_next": "2026-09-15", "frequency": "monthly", "amount": -15990, "account_id": "account-1", "account_name": "Checking", "payee_name": "Streaming Co", "deleted": true}}}`)
	})

	tools := newTestTools(t, mux)

	_, entry, err := tools.DeleteScheduledTransaction(context.Background(), nil, DeleteScheduledTransactionInput{
		BudgetID:               "budget-1",
		ScheduledTransactionID: "sched-9",
	})

	require.NoError(t, err)
	assert.Equal(t, "sched-9", entry.ID)
	assert.Equal(t, "monthly", entry.Frequency)
	assert.Equal(t, -15.99, entry.Amount)
	assert.Equal(t, "2026-09-15", entry.DateNext)
}
