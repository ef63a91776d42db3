package ynab

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/eshaffer321/ynab-go/internal/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// transactionCorpus builds a bulk-endpoint response with n generated rows,
// all dated within May 2026 and categorized round-robin over categoryIDs.
func transactionCorpus(t *testing.T, n int, categoryIDs ...string) string {
	t.Helper()
	faker := gofakeit.New(11)

	rows := make([]*wireTransaction, 0, n)
	for i := 0; i < n; i++ {
		payee := faker.Company()
		memo := faker.Sentence(3)
		accountName := "Checking"
		row := &wireTransaction{
			ID:          fmt.Sprintf("txn-%03d", i),
			Date:        fmt.Sprintf("2026-05-%02d", i%28+1),
			Amount:      -int64(faker.Number(1000, 90000)),
			Memo:        &memo,
			Cleared:     "cleared",
			Approved:    true,
			AccountID:   "account-1",
			AccountName: accountName,
			PayeeName:   &payee,
		}
		if len(categoryIDs) > 0 {
			id := categoryIDs[i%len(categoryIDs)]
			row.CategoryID = &id
		}
		rows = append(rows, row)
	}

	data, err := json.Marshal(&transactionsData{Transactions: rows})
	require.NoError(t, err)
	return string(data)
}

func TestTransactionQuery_Pagination(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(req *transport.Request) bool {
			return req.Method == http.MethodGet && req.Path == "budgets/budget-123/transactions"
		}),
		mock.Anything,
	).Return(transactionCorpus(t, 250), nil)

	ctx := context.Background()

	// First page of three
	page1, err := client.Transactions.Query("budget-123").Limit(100).Page(1).Execute(ctx)
	require.NoError(t, err)
	assert.Len(t, page1.Transactions, 100)
	assert.Equal(t, 1, page1.Pagination.Page)
	assert.Equal(t, 100, page1.Pagination.PerPage)
	assert.Equal(t, 250, page1.Pagination.TotalCount)
	assert.Equal(t, 3, page1.Pagination.TotalPages)
	assert.True(t, page1.Pagination.HasNextPage)
	assert.False(t, page1.Pagination.HasPrevPage)

	// Last page holds the remainder
	page3, err := client.Transactions.Query("budget-123").Limit(100).Page(3).Execute(ctx)
	require.NoError(t, err)
	assert.Len(t, page3.Transactions, 50)
	assert.False(t, page3.Pagination.HasNextPage)
	assert.True(t, page3.Pagination.HasPrevPage)

	// Pages do not overlap
	assert.Equal(t, "txn-000", page1.Transactions[0].ID)
	assert.Equal(t, "txn-200", page3.Transactions[0].ID)

	// A page past the end is empty rather than an error
	beyond, err := client.Transactions.Query("budget-123").Limit(100).Page(9).Execute(ctx)
	require.NoError(t, err)
	assert.Empty(t, beyond.Transactions)
	assert.False(t, beyond.Pagination.HasNextPage)
	assert.True(t, beyond.Pagination.HasPrevPage)
	assert.Equal(t, 3, beyond.Pagination.TotalPages)
}

func TestTransactionQuery_LimitClamping(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Do", mock.Anything, mock.Anything, mock.Anything).
		Return(transactionCorpus(t, 10), nil)

	ctx := context.Background()

	// Oversized limits are clamped, not rejected
	page, err := client.Transactions.Query("budget-123").Limit(9000).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, MaxPageSize, page.Pagination.PerPage)

	// Zero and negative fall back to the default, as does page < 1
	page, err = client.Transactions.Query("budget-123").Limit(-5).Page(-2).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, page.Pagination.PerPage)
	assert.Equal(t, 1, page.Pagination.Page)
}

func TestTransactionQuery_AccountEndpointPrecedence(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	// With an account in play the account-scoped endpoint is used; the
	// category narrows the result locally afterwards.
	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(req *transport.Request) bool {
			return req.Path == "budgets/budget-123/accounts/account-1/transactions"
		}),
		mock.Anything,
	).Return(transactionCorpus(t, 6, "cat-food", "cat-rent"), nil)

	page, err := client.Transactions.Query("budget-123").
		ForAccount("account-1").
		ForCategory("cat-food").
		Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, page.Transactions, 3)
	for _, txn := range page.Transactions {
		assert.Equal(t, "cat-food", txn.CategoryID)
	}
	assert.Equal(t, 3, page.Pagination.TotalCount, "pagination counts the post-filter set")

	mockTransport.AssertExpectations(t)
}

func TestTransactionQuery_SinceIsNative_UntilIsLocal(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{
		"transactions": [
			{"id": "txn-early", "date": "2026-03-05", "amount": -10000, "cleared": "cleared", "approved": true, "account_id": "account-1", "account_name": "Checking"},
			{"id": "txn-mid", "date": "2026-03-20", "amount": -20000, "cleared": "cleared", "approved": true, "account_id": "account-1", "account_name": "Checking"},
			{"id": "txn-late", "date": "2026-04-02", "amount": -30000, "cleared": "cleared", "approved": true, "account_id": "account-1", "account_name": "Checking"}
		]
	}`

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(req *transport.Request) bool {
			// since_date rides the query string; until never does
			return req.Query.Get("since_date") == "2026-03-01" && req.Query.Get("until_date") == ""
		}),
		mock.Anything,
	).Return(response, nil)

	page, err := client.Transactions.Query("budget-123").
		Since(NewDate(2026, 3, 1)).
		Until(NewDate(2026, 3, 31)).
		Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, page.Transactions, 2)
	assert.Equal(t, "txn-early", page.Transactions[0].ID)
	assert.Equal(t, "txn-mid", page.Transactions[1].ID)

	mockTransport.AssertExpectations(t)
}

func TestTransactionService_Search(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	// One row has neither payee nor memo; it must be skipped, not crash the
	// match loop.
	response := `{
		"transactions": [
			{"id": "txn-1", "date": "2026-05-01", "amount": -5000, "payee_name": null, "memo": null, "cleared": "cleared", "approved": true, "account_id": "account-1", "account_name": "Checking"},
			{"id": "txn-2", "date": "2026-05-02", "amount": -3000, "payee_name": "Store", "memo": "groceries", "cleared": "cleared", "approved": true, "account_id": "account-1", "account_name": "Checking"},
			{"id": "txn-3", "date": "2026-05-03", "amount": -7500, "payee_name": "GROCERY OUTLET", "memo": null, "cleared": "cleared", "approved": true, "account_id": "account-1", "account_name": "Checking"},
			{"id": "txn-4", "date": "2026-05-04", "amount": -1200, "payee_name": "Gas Station", "memo": "fuel", "cleared": "cleared", "approved": true, "account_id": "account-1", "account_name": "Checking"}
		]
	}`

	mockTransport.On("Do", mock.Anything, mock.Anything, mock.Anything).Return(response, nil)

	result, err := client.Transactions.Search(context.Background(), "budget-123", "groceries", nil)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "txn-2", result.Transactions[0].ID)
}

func TestTransactionService_Search_CaseInsensitive(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{
		"transactions": [
			{"id": "txn-1", "date": "2026-05-01", "amount": -5000, "payee_name": "WHOLE FOODS MARKET", "memo": null, "cleared": "cleared", "approved": true, "account_id": "account-1", "account_name": "Checking"},
			{"id": "txn-2", "date": "2026-05-02", "amount": -3000, "payee_name": "Corner Shop", "memo": "whole milk and eggs", "cleared": "cleared", "approved": true, "account_id": "account-1", "account_name": "Checking"}
		]
	}`

	mockTransport.On("Do", mock.Anything, mock.Anything, mock.Anything).Return(response, nil)

	// Matches payee on one row and memo on the other
	result, err := client.Transactions.Search(context.Background(), "budget-123", "Whole", nil)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
}

func TestTransactionService_Search_LimitAndUntil(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Do", mock.Anything, mock.Anything, mock.Anything).
		Return(transactionCorpus(t, 40), nil)

	// Every generated row is dated May 2026, so the until filter below cuts
	// the set to days 1-10 before the limit applies.
	result, err := client.Transactions.Search(context.Background(), "budget-123", "", &SearchParams{
		UntilDate: NewDate(2026, 5, 10),
		Limit:     5,
	})

	require.NoError(t, err)
	assert.Equal(t, 5, result.Count)
	for _, txn := range result.Transactions {
		assert.False(t, txn.Date.After(NewDate(2026, 5, 10).Time))
	}
}

func TestTransactionService_Create(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"transaction": {
			"id": "txn-new",
			"date": "2026-08-15",
			"amount": -45250,
			"memo": "lunch",
			"cleared": "uncleared",
			"approved": false,
			"account_id": "account-1",
			"account_name": "Checking",
			"payee_id": "payee-9",
			"payee_name": "Cafe",
			"category_id": "cat-food",
			"category_name": "Dining Out",
			"deleted": false
		}
	}`

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(req *transport.Request) bool {
			if req.Method != http.MethodPost || req.Path != "budgets/budget-123/transactions" {
				return false
			}
			body, ok := req.Body.(*saveTransactionRequest)
			if !ok {
				return false
			}
			txn := body.Transaction
			// Amount is truncated into milliunits; cleared defaults to
			// uncleared and approved to false; the empty category is omitted
			return txn.Amount == int64(-45250) &&
				txn.Date == "2026-08-15" &&
				txn.Cleared == "uncleared" &&
				!txn.Approved &&
				txn.PayeeName != nil && *txn.PayeeName == "Cafe" &&
				txn.CategoryID == nil &&
				txn.Memo != nil && *txn.Memo == "lunch"
		}),
		mock.Anything,
	).Return(mockResponse, nil)

	txn, err := client.Transactions.Create(context.Background(), "budget-123", &CreateTransactionParams{
		AccountID: "account-1",
		Date:      NewDate(2026, 8, 15),
		Amount:    -45.25,
		PayeeName: "Cafe",
		Memo:      "lunch",
	})

	require.NoError(t, err)
	assert.Equal(t, "txn-new", txn.ID)
	assert.Equal(t, -45.25, txn.Amount)
	assert.Equal(t, ClearedStatusUncleared, txn.Cleared)
	assert.False(t, txn.Approved)
	assert.Equal(t, "Dining Out", txn.CategoryName, "server-side category resolution is returned")

	mockTransport.AssertExpectations(t)
}

func TestTransactionService_Create_Validation(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	tests := []struct {
		name   string
		params *CreateTransactionParams
		field  string
	}{
		{"nil params", nil, "params"},
		{"missing account", &CreateTransactionParams{Date: NewDate(2026, 8, 15)}, "account_id"},
		{"missing date", &CreateTransactionParams{AccountID: "account-1"}, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, err := client.Transactions.Create(context.Background(), "budget-123", tt.params)

			require.Error(t, err)
			assert.Nil(t, txn)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	mockTransport.AssertNotCalled(t, "Do", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransactionService_Update_MergesExistingValues(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	existing := `{
		"transaction": {
			"id": "txn-42",
			"date": "2026-03-15",
			"amount": -80000,
			"memo": "monthly box",
			"cleared": "cleared",
			"approved": true,
			"flag_color": "blue",
			"account_id": "account-1",
			"account_name": "Checking",
			"payee_id": "payee-7",
			"payee_name": "Coffee Club",
			"category_id": "cat-coffee",
			"category_name": "Coffee",
			"deleted": false
		}
	}`

	updated := `{
		"transaction": {
			"id": "txn-42",
			"date": "2026-03-15",
			"amount": -75000,
			"memo": "monthly box",
			"cleared": "cleared",
			"approved": true,
			"flag_color": "blue",
			"account_id": "account-1",
			"account_name": "Checking",
			"payee_id": "payee-7",
			"payee_name": "Coffee Club",
			"category_id": "cat-coffee",
			"category_name": "Coffee",
			"deleted": false
		}
	}`

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(req *transport.Request) bool {
			return req.Method == http.MethodGet && req.Path == "budgets/budget-123/transactions/txn-42"
		}),
		mock.Anything,
	).Return(existing, nil).Once()

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(req *transport.Request) bool {
			if req.Method != http.MethodPut || req.Path != "budgets/budget-123/transactions/txn-42" {
				return false
			}
			body, ok := req.Body.(*saveTransactionRequest)
			if !ok {
				return false
			}
			txn := body.Transaction
			// Only the amount changes; every other field round-trips from
			// the fetched transaction untouched.
			return txn.Amount == int64(-75000) &&
				txn.AccountID == "account-1" &&
				txn.Date == "2026-03-15" &&
				txn.PayeeName != nil && *txn.PayeeName == "Coffee Club" &&
				txn.CategoryID != nil && *txn.CategoryID == "cat-coffee" &&
				txn.Memo != nil && *txn.Memo == "monthly box" &&
				txn.Cleared == "cleared" &&
				txn.Approved
		}),
		mock.Anything,
	).Return(updated, nil).Once()

	amount := -75.0
	txn, err := client.Transactions.Update(context.Background(), "budget-123", "txn-42", &UpdateTransactionParams{
		Amount: &amount,
	})

	require.NoError(t, err)
	assert.Equal(t, -75.0, txn.Amount)
	assert.Equal(t, "Coffee Club", txn.PayeeName)

	mockTransport.AssertExpectations(t)
}

func TestTransactionService_Update_FetchFailureStopsWrite(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(req *transport.Request) bool { return req.Method == http.MethodGet }),
		mock.Anything,
	).Return(nil, &Error{Code: "not_found", Message: "no such transaction", StatusCode: 404, Err: ErrNotFound})

	approved := true
	txn, err := client.Transactions.Update(context.Background(), "budget-123", "txn-missing", &UpdateTransactionParams{
		Approved: &approved,
	})

	require.Error(t, err)
	assert.Nil(t, txn)
	assert.True(t, IsNotFound(err))
	mockTransport.AssertNumberOfCalls(t, "Do", 1)
}

func TestTransactionService_Unapproved(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{
		"transactions": [
			{"id": "txn-1", "date": "2026-05-01", "amount": -5000, "cleared": "cleared", "approved": true, "account_id": "account-1", "account_name": "Checking"},
			{"id": "txn-2", "date": "2026-05-02", "amount": -3000, "cleared": "uncleared", "approved": false, "account_id": "account-1", "account_name": "Checking"},
			{"id": "txn-3", "date": "2026-05-03", "amount": -7500, "cleared": "uncleared", "approved": false, "deleted": true, "account_id": "account-1", "account_name": "Checking"},
			{"id": "txn-4", "date": "2026-05-04", "amount": -1200, "cleared": "uncleared", "approved": false, "account_id": "account-1", "account_name": "Checking"}
		]
	}`

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(req *transport.Request) bool {
			return req.Path == "budgets/budget-123/transactions"
		}),
		mock.Anything,
	).Return(response, nil)

	transactions, err := client.Transactions.Unapproved(context.Background(), "budget-123")

	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "txn-2", transactions[0].ID)
	assert.Equal(t, "txn-4", transactions[1].ID)
}

func TestTransactionService_Get(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(req *transport.Request) bool {
			return req.Method == http.MethodGet && req.Path == "budgets/budget-123/transactions/txn-42"
		}),
		mock.Anything,
	).Return(`{"transaction": {"id": "txn-42", "date": "2026-03-15", "amount": -80000, "cleared": "cleared", "approved": true, "account_id": "account-1", "account_name": "Checking", "transfer_account_id": "account-2"}}`, nil)

	txn, err := client.Transactions.Get(context.Background(), "budget-123", "txn-42")

	require.NoError(t, err)
	assert.Equal(t, "txn-42", txn.ID)
	assert.Equal(t, -80.0, txn.Amount)
	assert.Equal(t, "2026-03-15", txn.Date.String())
	assert.Equal(t, "account-2", txn.TransferAccountID)
}
