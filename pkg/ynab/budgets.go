package ynab

import (
	"context"
	"net/http"

	"github.com/eshaffer321/ynab-go/internal/transport"
	"github.com/pkg/errors"
)

// budgetService implements the BudgetService interface
type budgetService struct {
	client *Client
}

// List retrieves all budgets the token can access
func (s *budgetService) List(ctx context.Context) ([]*Budget, error) {
	var result budgetsData

	req := &transport.Request{
		Method: http.MethodGet,
		Path:   "budgets",
	}

	if err := s.client.execute(ctx, "list_budgets", req, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get budgets")
	}

	budgets := make([]*Budget, 0, len(result.Budgets))
	for _, b := range result.Budgets {
		budgets = append(budgets, b.toBudget())
	}

	return budgets, nil
}
