package ynab

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/eshaffer321/ynab-go/internal/transport"
	"github.com/guptarohit/asciigraph"
	"github.com/pkg/errors"
)

// spendingService implements the SpendingService interface. Both reports
// are computed locally from a bulk transaction fetch; spend means outflow,
// so inflows and refunds in the category are ignored.
type spendingService struct {
	client *Client
}

// CategorySummary aggregates one category's spending over a date range,
// broken down by calendar month. The average divides total spend by the
// number of months the range spans, not by the number of months that had
// activity.
func (s *spendingService) CategorySummary(ctx context.Context, params *SpendingSummaryParams) (*SpendingSummary, error) {
	if params == nil {
		return nil, &ValidationError{
			Field:   "params",
			Message: "spending summary parameters are required",
		}
	}
	if params.SinceDate.IsZero() || params.UntilDate.IsZero() {
		return nil, &ValidationError{
			Field:   "since_date",
			Message: "since_date and until_date are required (YYYY-MM-DD)",
		}
	}

	category, err := s.getCategory(ctx, "get_category_spending_summary", params.BudgetID, params.CategoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get category spending summary")
	}

	rows, err := fetchTransactions(ctx, s.client, "get_category_spending_summary", params.BudgetID, "", params.SinceDate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get category spending summary")
	}

	spentByMonth := make(map[string]float64)
	countByMonth := make(map[string]int)
	totalSpent := 0.0
	transactionCount := 0

	for _, w := range rows {
		t := w.toTransaction()
		if t.Deleted || t.CategoryID != params.CategoryID {
			continue
		}
		if t.Date.After(params.UntilDate.Time) {
			continue
		}
		if t.Amount >= 0 {
			continue
		}

		spent := -t.Amount
		key := t.Date.MonthKey()
		spentByMonth[key] += spent
		countByMonth[key]++
		totalSpent += spent
		transactionCount++
	}

	// Every month in the range gets a row, zero-spend months included, so
	// the series is continuous for charting.
	months := monthsSpanned(params.SinceDate, params.UntilDate)
	breakdown := make([]*MonthlySpend, 0, months)
	series := make([]float64, 0, months)

	cursor := time.Date(params.SinceDate.Year(), params.SinceDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < months; i++ {
		key := cursor.Format("2006-01")
		breakdown = append(breakdown, &MonthlySpend{
			Month:            key,
			Spent:            spentByMonth[key],
			TransactionCount: countByMonth[key],
		})
		series = append(series, spentByMonth[key])
		cursor = cursor.AddDate(0, 1, 0)
	}

	summary := &SpendingSummary{
		CategoryID:       category.ID,
		CategoryName:     category.Name,
		SinceDate:        params.SinceDate.String(),
		UntilDate:        params.UntilDate.String(),
		TotalSpent:       totalSpent,
		AveragePerMonth:  totalSpent / float64(months),
		TransactionCount: transactionCount,
		MonthlyBreakdown: breakdown,
	}

	if params.IncludeGraph {
		summary.Graph = plotSeries(series, fmt.Sprintf("Monthly spending: %s", category.Name))
	}

	return summary, nil
}

// CompareYears totals one category's spending per calendar year and
// reports the year-over-year change. The first year has nothing to compare
// against, so its delta fields stay nil; a zero prior-year total leaves
// the percentage nil as well.
func (s *spendingService) CompareYears(ctx context.Context, params *YearComparisonParams) (*YearComparison, error) {
	if params == nil {
		return nil, &ValidationError{
			Field:   "params",
			Message: "year comparison parameters are required",
		}
	}
	if params.StartYear < 1 {
		return nil, &ValidationError{
			Field:   "start_year",
			Message: "start_year is required",
			Value:   params.StartYear,
		}
	}

	numYears := params.NumYears
	if numYears < 1 {
		numYears = 5
	}

	category, err := s.getCategory(ctx, "compare_spending_by_year", params.BudgetID, params.CategoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compare spending by year")
	}

	since := NewDate(params.StartYear, time.January, 1)
	rows, err := fetchTransactions(ctx, s.client, "compare_spending_by_year", params.BudgetID, "", since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compare spending by year")
	}

	spentByYear := make(map[int]float64, numYears)
	countByYear := make(map[int]int, numYears)

	for _, w := range rows {
		t := w.toTransaction()
		if t.Deleted || t.CategoryID != params.CategoryID {
			continue
		}
		year := t.Date.Year()
		if year < params.StartYear || year >= params.StartYear+numYears {
			continue
		}
		if t.Amount >= 0 {
			continue
		}
		spentByYear[year] += -t.Amount
		countByYear[year]++
	}

	years := make([]*YearSpend, 0, numYears)
	series := make([]float64, 0, numYears)

	for i := 0; i < numYears; i++ {
		year := params.StartYear + i
		row := &YearSpend{
			Year:             year,
			TotalSpent:       spentByYear[year],
			TransactionCount: countByYear[year],
		}

		if i > 0 {
			previous := spentByYear[year-1]
			change := row.TotalSpent - previous
			row.ChangeFromPrevious = &change
			if previous != 0 {
				percent := change / previous * 100
				row.PercentChange = &percent
			}
		}

		years = append(years, row)
		series = append(series, row.TotalSpent)
	}

	comparison := &YearComparison{
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Years:        years,
	}

	if params.IncludeGraph {
		comparison.Graph = plotSeries(series, fmt.Sprintf("Yearly spending: %s", category.Name))
	}

	return comparison, nil
}

// getCategory resolves a category for its name, surfacing the transport's
// not-found error when the ID does not exist.
func (s *spendingService) getCategory(ctx context.Context, operation, budgetID, categoryID string) (*Category, error) {
	var result categoryData

	req := &transport.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("budgets/%s/categories/%s", budgetID, categoryID),
	}

	if err := s.client.execute(ctx, operation, req, &result); err != nil {
		return nil, err
	}

	return result.Category.toCategory(), nil
}

// plotSeries renders a terminal chart of the series
func plotSeries(series []float64, caption string) string {
	if len(series) == 0 {
		return ""
	}
	return asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)
}
