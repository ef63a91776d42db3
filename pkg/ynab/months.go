package ynab

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eshaffer321/ynab-go/internal/transport"
	"github.com/pkg/errors"
)

// monthService implements the MonthService interface
type monthService struct {
	client *Client
}

// GetSummary retrieves one budget month with aggregated totals. Month is a
// YYYY-MM-DD string naming the first day of the month ("current" also
// works, the API resolves it).
//
// The month endpoint is the only one that carries per-month budgeted,
// activity and balance figures plus the month's income and To Be Budgeted,
// but its category list is flat. A second call to the categories listing
// resolves group names for the rows. The month-level totals are summed
// from the category rows as returned, hidden ones included.
func (s *monthService) GetSummary(ctx context.Context, budgetID, month string) (*MonthSummary, error) {
	var result monthData

	req := &transport.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("budgets/%s/months/%s", budgetID, month),
	}

	if err := s.client.execute(ctx, "get_month_summary", req, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get budget summary")
	}

	var listing categoryGroupsData

	req = &transport.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("budgets/%s/categories", budgetID),
	}

	if err := s.client.execute(ctx, "get_month_summary", req, &listing); err != nil {
		return nil, errors.Wrap(err, "failed to get budget summary")
	}

	groupNames := make(map[string]string, len(listing.CategoryGroups))
	for _, g := range listing.CategoryGroups {
		groupNames[g.ID] = g.Name
	}

	m := result.Month
	summary := &MonthSummary{
		Month:        m.Month,
		Income:       FromMilliunits(m.Income),
		ToBeBudgeted: FromMilliunits(m.ToBeBudgeted),
		Categories:   make([]*MonthCategory, 0, len(m.Categories)),
	}

	for _, c := range m.Categories {
		budgeted := FromMilliunits(c.Budgeted)
		activity := FromMilliunits(c.Activity)
		balance := FromMilliunits(c.Balance)

		summary.Budgeted += budgeted
		summary.Activity += activity
		summary.Balance += balance

		summary.Categories = append(summary.Categories, &MonthCategory{
			CategoryGroup: groupNames[c.CategoryGroupID],
			CategoryID:    c.ID,
			CategoryName:  c.Name,
			Budgeted:      budgeted,
			Activity:      activity,
			Balance:       balance,
		})
	}

	return summary, nil
}
