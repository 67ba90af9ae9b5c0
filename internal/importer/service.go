package importer

import (
	"context"
	"fmt"
	"os"
	"time"

	"kharcha/internal/expense"
)

// Service imports expenses from a previously exported CSV file.
type Service struct {
	expenses *expense.Service
}

func NewService(expenses *expense.Service) *Service {
	return &Service{expenses: expenses}
}

// ImportFile parses the file at path and stores every row, returning
// the number of expenses created.
func (s *Service) ImportFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	params, err := NewParser(time.Now()).Parse(f)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", path, err)
	}

	for _, p := range params {
		if _, err := s.expenses.Create(ctx, p); err != nil {
			return 0, fmt.Errorf("importing %q: %w", p.Title, err)
		}
	}

	return len(params), nil
}
