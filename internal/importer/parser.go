package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "kharcha/internal/encoding"
	"kharcha/internal/expense"
)

const (
	colTitle    = "Title"
	colAmount   = "Amount"
	colCategory = "Category"
	colDate     = "Date"
	colPerson   = "Person"
)

// Parser reads CSV files in the app's own export format back into
// expense create params. Rows are parsed leniently: an unreadable
// amount becomes 0 and an unreadable date becomes today, the same
// policy the entry forms follow.
type Parser struct {
	today time.Time
}

// NewParser creates a parser that resolves missing dates to today.
func NewParser(today time.Time) *Parser {
	return &Parser{today: today}
}

func (p *Parser) Parse(r io.Reader) ([]expense.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx := findHeader(rows)
	if cols == nil {
		return nil, fmt.Errorf("no expense header found: expected %q and %q columns", colTitle, colAmount)
	}

	var params []expense.CreateParams

	for _, row := range rows[headerIdx+1:] {
		title := cell(row, cols, colTitle)
		if title == "" {
			continue
		}

		params = append(params, expense.CreateParams{
			Title:       title,
			AmountCents: expense.ParseAmount(cell(row, cols, colAmount)),
			Category:    cell(row, cols, colCategory),
			SpentAt:     expense.ParseDate(cell(row, cols, colDate), p.today),
			Person:      cell(row, cols, colPerson),
		})
	}

	return params, nil
}

// findHeader scans for the first row carrying at least the Title and
// Amount columns and maps column names to indices.
func findHeader(rows [][]string) (map[string]int, int) {
	for rowIdx, row := range rows {
		cols := make(map[string]int)

		for i, name := range row {
			cols[strings.TrimSpace(name)] = i
		}

		_, hasTitle := cols[colTitle]

		_, hasAmount := cols[colAmount]
		if hasTitle && hasAmount {
			return cols, rowIdx
		}
	}

	return nil, 0
}

// cell returns the trimmed value of the named column, or "" when the
// column is absent or the row is short.
func cell(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
