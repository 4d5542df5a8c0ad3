package internal

import (
	"errors"
	"testing"
	"time"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain", "12.50", "12.5", false},
		{"surrounding spaces", " 7.25 ", "7.25", false},
		{"integer", "40", "40", false},
		{"zero", "0", "0", false},
		{"exponent", "1e2", "100", false},
		{"empty", "", "", true},
		{"letters", "abc", "", true},
		{"not a number", "NaN", "", true},
		{"infinity", "Inf", "", true},
		{"negative", "-5", "", true},
		{"comma decimal", "12,50", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(dec(tt.want)) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(date("2024-03-01")) {
		t.Errorf("ParseDate = %v, want 2024-03-01", got)
	}

	for _, bad := range []string{"", "2024-13-01", "01/03/2024", "2024-03-01T10:00:00Z"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) expected error", bad)
		}
	}
}

func TestNewRecordKeepsOnlyCalendarDate(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*3600)
	late := time.Date(2024, 3, 1, 23, 30, 0, 0, zone)

	r, err := NewRecord(dec("12.50"), "Coffee", late)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Date.Equal(date("2024-03-01")) {
		t.Errorf("Date = %v, want 2024-03-01 00:00 UTC", r.Date)
	}
	if r.Date.Location() != time.UTC {
		t.Errorf("Date location = %v, want UTC", r.Date.Location())
	}
}

func TestNewRecordRejectsNegativeAmount(t *testing.T) {
	_, err := NewRecord(dec("-1"), "Coffee", date("2024-03-01"))
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("error = %v, want ErrInvalidAmount", err)
	}
}

func TestRecordEqual(t *testing.T) {
	base := Record{Amount: dec("12.5"), Category: "Coffee", Date: date("2024-03-01")}

	tests := []struct {
		name  string
		other Record
		want  bool
	}{
		{"trailing zero amount", Record{Amount: dec("12.50"), Category: "Coffee", Date: date("2024-03-01")}, true},
		{"time of day ignored", Record{Amount: dec("12.5"), Category: "Coffee", Date: date("2024-03-01").Add(9 * time.Hour)}, true},
		{"different amount", Record{Amount: dec("12.51"), Category: "Coffee", Date: date("2024-03-01")}, false},
		{"category case matters", Record{Amount: dec("12.5"), Category: "coffee", Date: date("2024-03-01")}, false},
		{"different date", Record{Amount: dec("12.5"), Category: "Coffee", Date: date("2024-03-02")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}
