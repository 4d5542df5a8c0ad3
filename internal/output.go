package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
)

// OutputMode controls how summaries are displayed
type OutputMode string

const (
	OutputText  OutputMode = "text"
	OutputTable OutputMode = "table"
	OutputJSON  OutputMode = "json"
)

// barWidth is the number of cells used by the longest bar
const barWidth = 30

// ParseOutputMode validates an output mode name
func ParseOutputMode(name string) (OutputMode, error) {
	switch m := OutputMode(strings.ToLower(strings.TrimSpace(name))); m {
	case OutputText, OutputTable, OutputJSON:
		return m, nil
	default:
		return "", fmt.Errorf("unknown output mode %q (available: text, table, json)", name)
	}
}

// Summary is everything the presenter needs, computed once per request
type Summary struct {
	Total      decimal.Decimal
	Categories CategoryTotals
	Days       DailyTotals
}

// Summarize computes the totals of the records as they are now
func Summarize(records []Record) Summary {
	return Summary{
		Total:      TotalSpend(records),
		Categories: ByCategory(records),
		Days:       ByDay(records),
	}
}

// JSONSummary is the root JSON output object
type JSONSummary struct {
	Total      string         `json:"total"`
	Categories []JSONCategory `json:"categories"`
	Days       []JSONDay      `json:"days"`
}

// JSONCategory is the JSON output format for a category total
type JSONCategory struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Percent  string `json:"percent"`
}

// JSONDay is the JSON output format for a daily total
type JSONDay struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

// FormatDollars renders an amount as $X.XX
func FormatDollars(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// PrintSummary writes the summary in the requested mode
func PrintSummary(w io.Writer, s Summary, mode OutputMode) error {
	switch mode {
	case OutputJSON:
		return PrintSummaryJSON(w, s)
	case OutputTable:
		PrintSummaryText(w, s)
		fmt.Fprintln(w)
		PrintCategoryTable(w, s)
		fmt.Fprintln(w)
		PrintDailyTable(w, s)
		return nil
	default:
		PrintSummaryText(w, s)
		return nil
	}
}

// PrintSummaryText outputs the overall total followed by one line per category
func PrintSummaryText(w io.Writer, s Summary) {
	fmt.Fprintf(w, "Total overall spending: %s\n", FormatDollars(s.Total))
	for _, c := range s.Categories {
		fmt.Fprintf(w, "Total spending for %s: %s\n", c.Category, FormatDollars(c.Amount))
	}
}

// PrintSummaryJSON outputs the summary in JSON format
func PrintSummaryJSON(w io.Writer, s Summary) error {
	out := JSONSummary{
		Total:      s.Total.StringFixed(2),
		Categories: make([]JSONCategory, 0, len(s.Categories)),
		Days:       make([]JSONDay, 0, len(s.Days)),
	}
	for _, c := range s.Categories {
		out.Categories = append(out.Categories, JSONCategory{
			Category: c.Category,
			Amount:   c.Amount.StringFixed(2),
			Percent:  Share(c.Amount, s.Total).StringFixed(1),
		})
	}
	for _, d := range s.Days {
		out.Days = append(out.Days, JSONDay{
			Date:   d.Date.Format(DateLayout),
			Amount: d.Amount.StringFixed(2),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return nil
}

// PrintCategoryTable renders each category's share of the total, the text form of the pie chart
func PrintCategoryTable(w io.Writer, s Summary) {
	t := newTable(w)
	t.SetTitle("Expenses by Category")
	t.AppendHeader(table.Row{"Category", "Amount", "Share", ""})
	for _, c := range s.Categories {
		share := Share(c.Amount, s.Total)
		t.AppendRow(table.Row{
			c.Category,
			FormatDollars(c.Amount),
			share.StringFixed(1) + "%",
			text.FgCyan.Sprint(bar(share, decimal.NewFromInt(100))),
		})
	}
	t.AppendSeparator()
	t.AppendFooter(table.Row{text.Bold.Sprint("Total"), text.Bold.Sprint(FormatDollars(s.Total)), "", ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	t.Render()
}

// PrintDailyTable renders spend per day, the text form of the bar chart
func PrintDailyTable(w io.Writer, s Summary) {
	t := newTable(w)
	t.SetTitle("Daily Expenses")
	t.AppendHeader(table.Row{"Date", "Amount ($)", ""})
	peak := s.Days.Max()
	for _, d := range s.Days {
		t.AppendRow(table.Row{
			d.Date.Format(DateLayout),
			d.Amount.StringFixed(2),
			text.FgGreen.Sprint(bar(d.Amount, peak)),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	t.Render()
}

// PrintRecordsTable lists the records numbered from 1, as used when choosing one to delete
func PrintRecordsTable(w io.Writer, records []Record) {
	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Date", "Category", "Amount"})
	for i, r := range records {
		t.AppendRow(table.Row{i + 1, r.Date.Format(DateLayout), r.Category, FormatDollars(r.Amount)})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.Render()
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	return t
}

// bar scales value against max onto at most barWidth cells
func bar(value, max decimal.Decimal) string {
	if max.IsZero() || !value.IsPositive() {
		return ""
	}
	n := int(value.Mul(decimal.NewFromInt(barWidth)).Div(max).Round(0).IntPart())
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}
