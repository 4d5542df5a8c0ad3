package internal

import (
	"time"

	"github.com/shopspring/decimal"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// exampleStore holds the three-expense session used across tests.
func exampleStore() *Store {
	s := NewStore()
	mustAdd(s, "12.50", "Coffee", "2024-03-01")
	mustAdd(s, "7.25", "Coffee", "2024-03-02")
	mustAdd(s, "40.00", "Rent", "2024-03-01")
	return s
}

func mustAdd(s *Store, amount, category, day string) {
	if _, err := s.Add(dec(amount), category, date(day)); err != nil {
		panic(err)
	}
}
