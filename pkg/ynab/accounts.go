package ynab

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eshaffer321/ynab-go/internal/transport"
	"github.com/pkg/errors"
)

// accountService implements the AccountService interface
type accountService struct {
	client *Client
}

// List retrieves the accounts of a budget. Deleted accounts are filtered
// out; closed accounts are returned with their Closed flag set so callers
// can decide for themselves.
func (s *accountService) List(ctx context.Context, budgetID string) ([]*Account, error) {
	var result accountsData

	req := &transport.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("budgets/%s/accounts", budgetID),
	}

	if err := s.client.execute(ctx, "list_accounts", req, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get accounts")
	}

	accounts := make([]*Account, 0, len(result.Accounts))
	for _, a := range result.Accounts {
		if a.Deleted {
			continue
		}
		accounts = append(accounts, a.toAccount())
	}

	return accounts, nil
}
