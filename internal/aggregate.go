package internal

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotal is the summed spend of one category.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// DailyTotal is the summed spend of one calendar day.
type DailyTotal struct {
	Date   time.Time
	Amount decimal.Decimal
}

// CategoryTotals is ordered by the first appearance of each category.
type CategoryTotals []CategoryTotal

// DailyTotals is ordered by the first appearance of each day, not sorted by date.
type DailyTotals []DailyTotal

// TotalSpend sums every amount. It is zero for no records.
func TotalSpend(records []Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

// ByCategory groups amounts by exact category text.
func ByCategory(records []Record) CategoryTotals {
	var totals CategoryTotals
	index := make(map[string]int)
	for _, r := range records {
		i, ok := index[r.Category]
		if !ok {
			i = len(totals)
			index[r.Category] = i
			totals = append(totals, CategoryTotal{Category: r.Category, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(r.Amount)
	}
	return totals
}

// ByDay groups amounts by calendar date, ignoring time of day.
func ByDay(records []Record) DailyTotals {
	var totals DailyTotals
	index := make(map[string]int)
	for _, r := range records {
		day := TruncateToDay(r.Date)
		key := day.Format(DateLayout)
		i, ok := index[key]
		if !ok {
			i = len(totals)
			index[key] = i
			totals = append(totals, DailyTotal{Date: day, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(r.Amount)
	}
	return totals
}

// Get returns the total for category.
func (c CategoryTotals) Get(category string) (decimal.Decimal, bool) {
	for _, t := range c {
		if t.Category == category {
			return t.Amount, true
		}
	}
	return decimal.Zero, false
}

func (c CategoryTotals) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, t := range c {
		sum = sum.Add(t.Amount)
	}
	return sum
}

// Get returns the total for the calendar date of day.
func (d DailyTotals) Get(day time.Time) (decimal.Decimal, bool) {
	day = TruncateToDay(day)
	for _, t := range d {
		if t.Date.Equal(day) {
			return t.Amount, true
		}
	}
	return decimal.Zero, false
}

func (d DailyTotals) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, t := range d {
		sum = sum.Add(t.Amount)
	}
	return sum
}

// Max returns the largest daily amount, or zero.
func (d DailyTotals) Max() decimal.Decimal {
	m := decimal.Zero
	for _, t := range d {
		if t.Amount.GreaterThan(m) {
			m = t.Amount
		}
	}
	return m
}

// Share returns part as a percentage of total, rounded to one decimal place.
func Share(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Mul(decimal.NewFromInt(100)).Div(total).Round(1)
}
