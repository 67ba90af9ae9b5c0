package importer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kharcha/internal/importer"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_ExportFormat(t *testing.T) {
	csv := `Title,Amount,Category,Date,Person
Vegetables & Milk,650.00,Groceries,2024-01-14,Family
Petrol,1200.00,Fuel,2024-01-13,Self
Mobile Recharge,249.00,Mobile/Internet,2024-01-12,Self
`

	p := importer.NewParser(date(2024, 1, 15))
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 3)

	assert.Equal(t, "Vegetables & Milk", params[0].Title)
	assert.Equal(t, int64(65000), params[0].AmountCents)
	assert.Equal(t, "Groceries", params[0].Category)
	assert.Equal(t, date(2024, 1, 14), params[0].SpentAt)
	assert.Equal(t, "Family", params[0].Person)

	assert.Equal(t, "Petrol", params[1].Title)
	assert.Equal(t, int64(120000), params[1].AmountCents)
}

func TestParser_LenientRows(t *testing.T) {
	today := date(2024, 3, 10)

	csv := `Title,Amount,Category,Date,Person
Chai,notanumber,Dining Out,garbage,Self
`

	p := importer.NewParser(today)
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)

	// Junk amount falls back to 0, junk date to today.
	assert.Equal(t, int64(0), params[0].AmountCents)
	assert.Equal(t, today, params[0].SpentAt)
}

func TestParser_SkipsBlankTitlesAndShortRows(t *testing.T) {
	csv := `Title,Amount,Category,Date,Person
,100.00,Other,2024-01-01,Self
Petrol,1200.00
`

	p := importer.NewParser(date(2024, 1, 15))
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)

	assert.Equal(t, "Petrol", params[0].Title)
	assert.Equal(t, int64(120000), params[0].AmountCents)
	assert.Empty(t, params[0].Category)
	assert.Equal(t, date(2024, 1, 15), params[0].SpentAt)
}

func TestParser_HeaderNotFirstLine(t *testing.T) {
	csv := `Exported from Kharcha

Title,Amount,Category,Date,Person
Rent,15000.00,Rent,2024-02-01,Self
`

	p := importer.NewParser(date(2024, 2, 5))
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "Rent", params[0].Title)
}

func TestParser_NoHeader(t *testing.T) {
	p := importer.NewParser(date(2024, 1, 15))

	_, err := p.Parse(strings.NewReader("just,some,random\nvalues,1,2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no expense header")
}
