package expense_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kharcha/internal/expense"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"plain", "650.50", 65050},
		{"integer", "1200", 120000},
		{"whitespace", "  249.00 ", 24900},
		{"rounding", "0.005", 1},
		{"junk falls back to zero", "notanumber", 0},
		{"empty falls back to zero", "", 0},
		{"negative clamps to zero", "-5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expense.ParseAmount(tt.input))
		})
	}
}

func TestParseDate(t *testing.T) {
	today := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

	got := expense.ParseDate("2024-01-15", today)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)

	// Junk input falls back to today at midnight.
	got = expense.ParseDate("15/01/2024", today)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), got)

	got = expense.ParseDate("", today)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_AlwaysMidnight(t *testing.T) {
	// Both paths normalize to midnight, whatever clock or zone today
	// carries.
	ist := time.FixedZone("IST", 5*3600+30*60)
	today := time.Date(2024, 6, 1, 18, 45, 12, 0, ist)

	got := expense.ParseDate("2024-01-31", today)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), got)

	got = expense.ParseDate("junk", today)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, ist), got)
}
