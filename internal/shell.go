package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ShellOptions configures an interactive session
type ShellOptions struct {
	DataFile   string
	Format     Format
	ChartsFile string // empty disables the chart workbook
	Output     OutputMode
	Now        func() time.Time
	Logger     *slog.Logger
}

// Shell runs the interactive menu: it loads the store once, dispatches
// menu choices to it and saves it once on exit.
type Shell struct {
	in     *bufio.Scanner
	out    io.Writer
	opts   ShellOptions
	store  *Store
	logger *slog.Logger
}

func NewShell(in io.Reader, out io.Writer, opts ShellOptions) *Shell {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Output == "" {
		opts.Output = OutputText
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{
		in:     bufio.NewScanner(in),
		out:    out,
		opts:   opts,
		logger: logger.With("component", "shell"),
	}
}

// Run loads the expenses, serves the menu until the user exits or input ends,
// then saves.
func (s *Shell) Run() error {
	store, err := Load(s.opts.DataFile, s.opts.Format)
	if err != nil {
		return fmt.Errorf("loading expenses: %w", err)
	}
	s.store = store
	s.logger.Debug("loaded expenses", "file", s.opts.DataFile, "format", s.opts.Format, "count", store.Len())

	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "Personal Expense Tracker Menu:")
		fmt.Fprintln(s.out, "1. Add an expense")
		fmt.Fprintln(s.out, "2. View summaries")
		fmt.Fprintln(s.out, "3. Delete an expense")
		fmt.Fprintln(s.out, "4. Exit the program")

		choice, ok := s.prompt("Enter your choice: ")
		if !ok {
			return s.exit()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			ok = s.addExpense()
		case "2":
			s.viewSummaries()
		case "3":
			ok = s.deleteExpense()
		case "4":
			return s.exit()
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
		if !ok {
			return s.exit()
		}
	}
}

func (s *Shell) exit() error {
	if err := Save(s.opts.DataFile, s.opts.Format, s.store); err != nil {
		return fmt.Errorf("saving expenses: %w", err)
	}
	s.logger.Debug("saved expenses", "file", s.opts.DataFile, "format", s.opts.Format, "count", s.store.Len())
	fmt.Fprintln(s.out, "Exiting the program. Goodbye!")
	return nil
}

// prompt prints label and reads one line. It returns false once input is exhausted.
func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return strings.TrimRight(s.in.Text(), "\r"), true
}

func (s *Shell) addExpense() bool {
	var amount decimal.Decimal
	for {
		line, ok := s.prompt("Enter the amount: $")
		if !ok {
			return false
		}
		a, err := ParseAmount(line)
		if err == nil {
			amount = a
			break
		}
		fmt.Fprintln(s.out, "Please enter a valid number.")
	}

	category, ok := s.prompt("Enter the category: ")
	if !ok {
		return false
	}

	var date time.Time
	for {
		line, ok := s.prompt("Enter the date (YYYY-MM-DD, blank for today): ")
		if !ok {
			return false
		}
		if strings.TrimSpace(line) == "" {
			date = s.opts.Now()
			break
		}
		d, err := ParseDate(line)
		if err == nil {
			date = d
			break
		}
		fmt.Fprintln(s.out, "Please enter a date as YYYY-MM-DD.")
	}

	index, err := s.store.Add(amount, category, date)
	if err != nil {
		s.logger.Warn("rejected expense", "error", err)
		fmt.Fprintf(s.out, "Could not add expense: %v\n", err)
		return true
	}
	s.logger.Debug("added expense", "index", index, "amount", amount.String(), "category", category)
	fmt.Fprintln(s.out, "Expense added successfully!")
	return true
}

func (s *Shell) viewSummaries() {
	if s.store.Len() == 0 {
		fmt.Fprintln(s.out, "No expenses to display.")
		return
	}

	summary := Summarize(s.store.All())
	if err := PrintSummary(s.out, summary, s.opts.Output); err != nil {
		s.logger.Warn("printing summary failed", "error", err)
	}

	if s.opts.ChartsFile == "" {
		return
	}
	if err := WriteChartWorkbook(s.opts.ChartsFile, summary); err != nil {
		s.logger.Warn("writing charts failed", "file", s.opts.ChartsFile, "error", err)
		fmt.Fprintf(s.out, "Could not write charts: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Charts written to %s\n", s.opts.ChartsFile)
}

func (s *Shell) deleteExpense() bool {
	if s.store.Len() == 0 {
		fmt.Fprintln(s.out, "No expenses to delete.")
		return true
	}

	PrintRecordsTable(s.out, s.store.All())
	line, ok := s.prompt("Enter the number of the expense to delete: ")
	if !ok {
		return false
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(s.out, "Please enter a valid number.")
		return true
	}

	deleted, err := s.store.Delete(n - 1)
	if errors.Is(err, ErrIndexOutOfRange) {
		fmt.Fprintln(s.out, "Invalid expense number.")
		return true
	}
	if err != nil {
		s.logger.Warn("delete failed", "error", err)
		fmt.Fprintf(s.out, "Could not delete expense: %v\n", err)
		return true
	}
	s.logger.Debug("deleted expense", "index", n-1)
	fmt.Fprintf(s.out, "Deleted expense: %s in category '%s'\n", deleted.Amount.StringFixed(2), deleted.Category)
	return true
}
