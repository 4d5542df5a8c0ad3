package internal

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPrintSummaryText(t *testing.T) {
	var buf bytes.Buffer
	PrintSummaryText(&buf, Summarize(exampleStore().All()))

	want := "Total overall spending: $59.75\n" +
		"Total spending for Coffee: $19.75\n" +
		"Total spending for Rent: $40.00\n"
	if buf.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestPrintSummaryJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintSummary(&buf, Summarize(exampleStore().All()), OutputJSON); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got JSONSummary
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("failed to parse JSON output: %v\nOutput: %s", err, buf.String())
	}
	if got.Total != "59.75" {
		t.Errorf("Total = %s, want 59.75", got.Total)
	}
	if len(got.Categories) != 2 || got.Categories[0].Category != "Coffee" || got.Categories[0].Percent != "33.1" {
		t.Errorf("Categories = %+v", got.Categories)
	}
	if len(got.Days) != 2 || got.Days[0].Date != "2024-03-01" || got.Days[0].Amount != "52.50" {
		t.Errorf("Days = %+v", got.Days)
	}
}

func TestPrintSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintSummary(&buf, Summarize(exampleStore().All()), OutputTable); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Total overall spending: $59.75",
		"Expenses by Category",
		"Daily Expenses",
		"33.1%",
		"66.9%",
		"2024-03-02",
		"52.50",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintRecordsTable(t *testing.T) {
	var buf bytes.Buffer
	PrintRecordsTable(&buf, exampleStore().All())

	out := buf.String()
	for _, want := range []string{"Coffee", "Rent", "$12.50", "$40.00", "2024-03-02"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestParseOutputMode(t *testing.T) {
	tests := []struct {
		input   string
		want    OutputMode
		wantErr bool
	}{
		{"text", OutputText, false},
		{"TABLE", OutputTable, false},
		{" json ", OutputJSON, false},
		{"yaml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOutputMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOutputMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		name  string
		value string
		max   string
		want  int
	}{
		{"full", "100", "100", barWidth},
		{"half", "50", "100", barWidth / 2},
		{"tiny value still visible", "0.01", "100", 1},
		{"zero", "0", "100", 0},
		{"zero max", "5", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bar(decimal.RequireFromString(tt.value), decimal.RequireFromString(tt.max))
			if n := strings.Count(got, "█"); n != tt.want {
				t.Errorf("bar(%s, %s) has %d cells, want %d", tt.value, tt.max, n, tt.want)
			}
		})
	}
}

func TestFormatDollars(t *testing.T) {
	if got := FormatDollars(dec("19.75")); got != "$19.75" {
		t.Errorf("FormatDollars(19.75) = %s", got)
	}
	if got := FormatDollars(dec("40")); got != "$40.00" {
		t.Errorf("FormatDollars(40) = %s", got)
	}
	if got := FormatDollars(dec("0.125")); got != "$0.13" {
		t.Errorf("FormatDollars(0.125) = %s", got)
	}
}
