package ynab

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eshaffer321/ynab-go/internal/transport"
	"github.com/pkg/errors"
)

// scheduledTransactionService implements the ScheduledTransactionService
// interface. Scheduled transactions only support list, create and delete;
// the API offers no update.
type scheduledTransactionService struct {
	client *Client
}

// List retrieves all scheduled transactions of a budget
func (s *scheduledTransactionService) List(ctx context.Context, budgetID string) ([]*ScheduledTransaction, error) {
	var result scheduledTransactionsData

	req := &transport.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("budgets/%s/scheduled_transactions", budgetID),
	}

	if err := s.client.execute(ctx, "list_scheduled_transactions", req, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get scheduled transactions")
	}

	scheduled := make([]*ScheduledTransaction, 0, len(result.ScheduledTransactions))
	for _, w := range result.ScheduledTransactions {
		scheduled = append(scheduled, w.toScheduledTransaction())
	}

	return scheduled, nil
}

// Create creates a new scheduled transaction. Date must be today or later,
// which the API enforces. Frequency is forwarded untranslated, so a value
// outside the documented set surfaces as an API error rather than a local
// one.
func (s *scheduledTransactionService) Create(ctx context.Context, budgetID string, params *CreateScheduledTransactionParams) (*ScheduledTransaction, error) {
	if params == nil {
		return nil, &ValidationError{
			Field:   "params",
			Message: "scheduled transaction parameters are required",
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

	var result scheduledTransactionData

	req := &transport.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("budgets/%s/scheduled_transactions", budgetID),
		Body: &saveScheduledTransactionRequest{
			ScheduledTransaction: &saveScheduledTransaction{
				AccountID:  params.AccountID,
				Date:       params.Date.String(),
				Amount:     ToMilliunits(params.Amount),
				Frequency:  string(params.Frequency),
				PayeeName:  optStr(params.PayeeName),
				CategoryID: optStr(params.CategoryID),
				Memo:       optStr(params.Memo),
				FlagColor:  optStr(string(params.FlagColor)),
			},
		},
	}

	if err := s.client.execute(ctx, "create_scheduled_transaction", req, &result); err != nil {
		return nil, errors.Wrap(err, "failed to create scheduled transaction")
	}

	return result.ScheduledTransaction.toScheduledTransaction(), nil
}

// Delete removes a scheduled transaction. The API responds with the
// deleted entity, which is returned as confirmation of what was removed.
func (s *scheduledTransactionService) Delete(ctx context.Context, budgetID, scheduledTransactionID string) (*ScheduledTransaction, error) {
	var result scheduledTransactionData

	req := &transport.Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("budgets/%s/scheduled_transactions/%s", budgetID, scheduledTransactionID),
	}

	if err := s.client.execute(ctx, "delete_scheduled_transaction", req, &result); err != nil {
		return nil, errors.Wrap(err, "failed to delete scheduled transaction")
	}

	return result.ScheduledTransaction.toScheduledTransaction(), nil
}
