// Package export writes the filtered expense list to a CSV file that
// spreadsheet apps and the importer can both read back.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"kharcha/internal/expense"
)

// Header is the fixed CSV header row.
const Header = "Title,Amount,Category,Date,Person"

const fileName = "expenses.csv"

// Service handles the export of expenses to disk.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Export writes expenses to expenses.csv under dir, creating the
// directory if needed, and returns the file path. The input is the
// currently filtered list as the caller sees it.
func (s *Service) Export(expenses []*expense.Expense, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, fileName)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, expenses); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}

	return path, nil
}

// WriteCSV writes the header and one row per expense. The format has
// no quoting: commas inside free-text fields become spaces instead.
func WriteCSV(w io.Writer, expenses []*expense.Expense) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, Header)

	for _, e := range expenses {
		fmt.Fprintf(bw, "%s,%.2f,%s,%s,%s\n",
			sanitize(e.Title),
			float64(e.AmountCents)/100.0,
			sanitize(e.Category),
			e.SpentAt.Format("2006-01-02"),
			sanitize(e.Person),
		)
	}

	return bw.Flush()
}

func sanitize(field string) string {
	return strings.ReplaceAll(field, ",", " ")
}
