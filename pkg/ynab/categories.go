package ynab

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eshaffer321/ynab-go/internal/transport"
	"github.com/pkg/errors"
)

// categoryService implements the CategoryService interface
type categoryService struct {
	client *Client
}

// List retrieves categories grouped by category group. With includeHidden
// false, hidden and deleted categories are dropped, and so is any group
// that is itself hidden. A group left with no visible categories is always
// dropped, even when the group itself is not hidden.
func (s *categoryService) List(ctx context.Context, budgetID string, includeHidden bool) ([]*CategoryGroup, error) {
	var result categoryGroupsData

	req := &transport.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("budgets/%s/categories", budgetID),
	}

	if err := s.client.execute(ctx, "list_categories", req, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get categories")
	}

	groups := make([]*CategoryGroup, 0, len(result.CategoryGroups))
	for _, g := range result.CategoryGroups {
		if !includeHidden && g.Hidden {
			continue
		}

		categories := make([]*Category, 0, len(g.Categories))
		for _, c := range g.Categories {
			if !includeHidden && (c.Hidden || c.Deleted) {
				continue
			}
			categories = append(categories, c.toCategory())
		}

		if len(categories) == 0 {
			continue
		}

		groups = append(groups, &CategoryGroup{
			ID:         g.ID,
			Name:       g.Name,
			Hidden:     g.Hidden,
			Categories: categories,
		})
	}

	return groups, nil
}

// Get retrieves a single category with goal details
func (s *categoryService) Get(ctx context.Context, budgetID, categoryID string) (*Category, error) {
	var result categoryData

	req := &transport.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("budgets/%s/categories/%s", budgetID, categoryID),
	}

	if err := s.client.execute(ctx, "get_category", req, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get category")
	}

	return result.Category.toCategory(), nil
}

// UpdateBudgeted sets the budgeted amount of a category for one month.
// Month is passed through verbatim, so "current" and "YYYY-MM-DD" both
// work. The amount is a decimal and is converted to milliunits on the way
// out.
func (s *categoryService) UpdateBudgeted(ctx context.Context, budgetID, month, categoryID string, budgeted float64) (*Category, error) {
	var result categoryData

	req := &transport.Request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("budgets/%s/months/%s/categories/%s", budgetID, month, categoryID),
		Body: &saveMonthCategoryRequest{
			Category: &saveMonthCategory{
				Budgeted: ToMilliunits(budgeted),
			},
		},
	}

	if err := s.client.execute(ctx, "update_category_budget", req, &result); err != nil {
		return nil, errors.Wrap(err, "failed to update category budget")
	}

	return result.Category.toCategory(), nil
}

// Update changes category attributes. Only the fields set on params are
// sent; everything else keeps its server-side value. An explicitly set
// empty string is sent as-is, which clears text fields like Note.
func (s *categoryService) Update(ctx context.Context, budgetID, categoryID string, params *UpdateCategoryParams) (*Category, error) {
	if params == nil {
		params = &UpdateCategoryParams{}
	}

	fields := map[string]interface{}{}
	if params.Name != nil {
		fields["name"] = *params.Name
	}
	if params.Note != nil {
		fields["note"] = *params.Note
	}
	if params.CategoryGroupID != nil {
		fields["category_group_id"] = *params.CategoryGroupID
	}
	if params.GoalTarget != nil {
		fields["goal_target"] = ToMilliunits(*params.GoalTarget)
	}

	if len(fields) == 0 {
		return nil, &ValidationError{
			Field:   "params",
			Message: "at least one field must be provided",
		}
	}

	var result categoryData

	req := &transport.Request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("budgets/%s/categories/%s", budgetID, categoryID),
		Body:   map[string]interface{}{"category": fields},
	}

	if err := s.client.execute(ctx, "update_category", req, &result); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return result.Category.toCategory(), nil
}

// MoveFunds moves budgeted money from one category to another within a
// month. Both categories are resolved from a single listing fetch before
// anything is written, so an unknown ID fails with ErrNotFound while both
// categories are still untouched.
//
// The move itself is two sequential writes with no transactional guarantee:
// if the second write fails, the source category has already been debited
// and the amount is left unassigned in To Be Budgeted until a retry or a
// manual fix. The error messages name the failing leg for that reason.
//
// Amounts are not range-checked. Moving more than the source has budgeted
// simply drives it negative, which is a state the budget UI itself allows.
func (s *categoryService) MoveFunds(ctx context.Context, params *MoveFundsParams) (*MoveFundsResult, error) {
	if params == nil {
		return nil, &ValidationError{
			Field:   "params",
			Message: "move funds parameters are required",
		}
	}

	var listing categoryGroupsData

	req := &transport.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("budgets/%s/categories", params.BudgetID),
	}

	if err := s.client.execute(ctx, "move_category_funds", req, &listing); err != nil {
		return nil, errors.Wrap(err, "failed to get categories")
	}

	// Current budgeted amounts in milliunits, straight off the wire.
	var from, to *wireCategory
	for _, g := range listing.CategoryGroups {
		for _, c := range g.Categories {
			switch c.ID {
			case params.FromCategoryID:
				from = c
			case params.ToCategoryID:
				to = c
			}
		}
	}

	if from == nil || to == nil {
		return nil, &Error{
			Code:    "category_not_found",
			Message: "one or both category IDs not found",
			Err:     ErrNotFound,
		}
	}

	fromBudgeted := FromMilliunits(from.Budgeted) - params.Amount
	fromCategory, err := s.UpdateBudgeted(ctx, params.BudgetID, params.Month, params.FromCategoryID, fromBudgeted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update source category")
	}

	toBudgeted := FromMilliunits(to.Budgeted) + params.Amount
	toCategory, err := s.UpdateBudgeted(ctx, params.BudgetID, params.Month, params.ToCategoryID, toBudgeted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update destination category (source category already debited)")
	}

	return &MoveFundsResult{
		FromCategory: fromCategory,
		ToCategory:   toCategory,
		AmountMoved:  params.Amount,
	}, nil
}
