package ynab

import (
	"fmt"
	"strings"
	"time"
)

// Date is a custom type that handles date-only JSON values
type Date struct {
	time.Time
}

// NewDate returns the Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date in the API wire format (YYYY-MM-DD). Full
// timestamps are accepted and truncated to their calendar day.
func ParseDate(value string) (Date, error) {
	t, err := parseDateString(value)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func parseDateString(str string) (time.Time, error) {
	// Try parsing as date only first (YYYY-MM-DD)
	t, err := time.Parse("2006-01-02", str)
	if err == nil {
		return t, nil
	}

	// Try parsing as full timestamp (RFC3339)
	t, err = time.Parse(time.RFC3339, str)
	if err == nil {
		return t, nil
	}

	// Try parsing with time but no timezone
	t, err = time.Parse("2006-01-02T15:04:05", str)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", str)
}

// UnmarshalJSON implements json.Unmarshaler for Date
func (d *Date) UnmarshalJSON(data []byte) error {
	// Remove quotes
	str := strings.Trim(string(data), `"`)

	// Handle null/empty
	if str == "" || str == "null" {
		d.Time = time.Time{}
		return nil
	}

	t, err := parseDateString(str)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON implements json.Marshaler for Date
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	// Format as date only
	return []byte(fmt.Sprintf(`"%s"`, d.Time.Format("2006-01-02"))), nil
}

// String returns the date as a string
func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format("2006-01-02")
}

// MonthKey returns the YYYY-MM grouping key for the date.
func (d Date) MonthKey() string {
	return d.Time.Format("2006-01")
}

// monthsSpanned counts the calendar months touched by the inclusive range
// [since, until]. A range inside a single month counts as one.
func monthsSpanned(since, until Date) int {
	if since.IsZero() || until.IsZero() || until.Before(since.Time) {
		return 1
	}
	return (until.Year()-since.Year())*12 + int(until.Month()) - int(since.Month()) + 1
}
