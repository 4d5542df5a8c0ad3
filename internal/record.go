package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the on-disk and user-facing date format.
const DateLayout = "2006-01-02"

// Record is a single expense entry.
type Record struct {
	Amount   decimal.Decimal
	Category string
	Date     time.Time
}

// NewRecord builds a validated Record. Only the calendar date of date is kept.
func NewRecord(amount decimal.Decimal, category string, date time.Time) (Record, error) {
	if amount.IsNegative() {
		return Record{}, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, amount)
	}
	return Record{
		Amount:   amount,
		Category: category,
		Date:     TruncateToDay(date),
	}, nil
}

// ParseAmount parses a decimal amount such as "12.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, s)
	}
	return d, nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// TruncateToDay returns midnight UTC of the calendar date t falls on in its own location.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Equal reports whether both records hold the same amount, category and calendar date.
func (r Record) Equal(other Record) bool {
	return r.Amount.Equal(other.Amount) &&
		r.Category == other.Category &&
		TruncateToDay(r.Date).Equal(TruncateToDay(other.Date))
}

func (r Record) String() string {
	return fmt.Sprintf("%s %s %s", r.Amount.StringFixed(2), r.Category, r.Date.Format(DateLayout))
}
