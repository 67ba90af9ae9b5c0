package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kharcha/internal/expense"
	"kharcha/internal/export"
)

func sampleExpenses() []*expense.Expense {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	return []*expense.Expense{
		{
			ID:          uuid.New(),
			Title:       "Vegetables, fruit and milk",
			AmountCents: 65050,
			Category:    "Groceries",
			SpentAt:     date,
			Person:      "Mom, Dad",
		},
		{
			ID:          uuid.New(),
			Title:       "Petrol",
			AmountCents: 120000,
			Category:    "Fuel",
			SpentAt:     date.AddDate(0, 0, -1),
			Person:      "Self",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, export.WriteCSV(&buf, sampleExpenses()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Title,Amount,Category,Date,Person", lines[0])

	// Commas inside free-text fields become spaces; no quoting.
	assert.Equal(t, "Vegetables  fruit and milk,650.50,Groceries,2024-01-15,Mom  Dad", lines[1])
	assert.Equal(t, "Petrol,1200.00,Fuel,2024-01-14,Self", lines[2])
}

func TestWriteCSV_EmptyList(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, export.WriteCSV(&buf, nil))
	assert.Equal(t, "Title,Amount,Category,Date,Person\n", buf.String())
}

func TestService_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	svc := export.NewService()

	path, err := svc.Export(sampleExpenses(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "expenses.csv"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "Title,Amount,Category,Date,Person\n"))
	assert.Contains(t, string(content), "Petrol,1200.00,Fuel,2024-01-14,Self")
}
