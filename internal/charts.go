package internal

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	categorySheet = "Categories"
	dailySheet    = "Daily"
)

// WriteChartWorkbook writes the summary to an xlsx workbook at path:
// a pie chart of category shares and a column chart of daily spend.
func WriteChartWorkbook(path string, s Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", categorySheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if _, err := f.NewSheet(dailySheet); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	if err := f.SetSheetRow(categorySheet, "A1", &[]any{"Category", "Amount"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, c := range s.Categories {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(categorySheet, cell, &[]any{c.Category, c.Amount.InexactFloat64()}); err != nil {
			return fmt.Errorf("writing category %q: %w", c.Category, err)
		}
	}

	if err := f.SetSheetRow(dailySheet, "A1", &[]any{"Date", "Amount"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, d := range s.Days {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(dailySheet, cell, &[]any{d.Date.Format(DateLayout), d.Amount.InexactFloat64()}); err != nil {
			return fmt.Errorf("writing day %s: %w", d.Date.Format(DateLayout), err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	for _, sheet := range []string{categorySheet, dailySheet} {
		if err := f.SetCellStyle(sheet, "A1", "B1", headerStyle); err != nil {
			return fmt.Errorf("styling header: %w", err)
		}
	}

	if len(s.Categories) > 0 {
		if err := f.AddChart(categorySheet, "D2", categoryChart(len(s.Categories))); err != nil {
			return fmt.Errorf("adding category chart: %w", err)
		}
	}
	if len(s.Days) > 0 {
		if err := f.AddChart(dailySheet, "D2", dailyChart(len(s.Days))); err != nil {
			return fmt.Errorf("adding daily chart: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving chart workbook: %w", err)
	}
	return nil
}

func categoryChart(rows int) *excelize.Chart {
	return &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", categorySheet),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", categorySheet, rows+1),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", categorySheet, rows+1),
		}},
		Title:     []excelize.RichTextRun{{Text: "Expenses by Category"}},
		Legend:    excelize.ChartLegend{Position: "right"},
		PlotArea:  excelize.ChartPlotArea{ShowPercent: true},
		Dimension: excelize.ChartDimension{Width: 640, Height: 384},
	}
}

func dailyChart(rows int) *excelize.Chart {
	return &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", dailySheet),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", dailySheet, rows+1),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", dailySheet, rows+1),
		}},
		Title:     []excelize.RichTextRun{{Text: "Daily Expenses"}},
		Legend:    excelize.ChartLegend{Position: "none"},
		XAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Date"}}},
		YAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Amount ($)"}}},
		Dimension: excelize.ChartDimension{Width: 640, Height: 384},
	}
}
