package expense_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kharcha/internal/expense"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func exp(title string, cents int64, cat string, spentAt time.Time, person string) *expense.Expense {
	return &expense.Expense{
		ID:          uuid.New(),
		Title:       title,
		AmountCents: cents,
		Category:    cat,
		SpentAt:     spentAt,
		Person:      person,
	}
}

func TestApply_NoOpFilterPreservesEverything(t *testing.T) {
	list := []*expense.Expense{
		exp("Rent", 1500000, "Rent", date(2024, 1, 5), "Self"),
		exp("Groceries", 65000, "Groceries", date(2024, 1, 4), "Family"),
		exp("Petrol", 120000, "Fuel", date(2024, 1, 3), "Self"),
	}

	got := expense.Apply(list, expense.Filter{}, date(2024, 1, 15))

	assert.Equal(t, list, got)
	assert.Equal(t, expense.Total(list), expense.Total(got))
}

func TestApply_IsIdempotent(t *testing.T) {
	list := []*expense.Expense{
		exp("Rent", 1500000, "Rent", date(2024, 1, 5), "Self"),
		exp("Groceries", 65000, "Groceries", date(2024, 1, 4), "Family"),
		exp("Dinner", 90000, "Dining Out", date(2023, 12, 28), "Family"),
	}

	today := date(2024, 1, 15)
	f := expense.Filter{
		Person: "family",
		Range:  expense.DateRange{Kind: expense.RangeThisMonth},
	}

	once := expense.Apply(list, f, today)
	twice := expense.Apply(once, f, today)

	assert.Equal(t, once, twice)
}

func TestApply_PreservesInputOrder(t *testing.T) {
	list := []*expense.Expense{
		exp("c", 1, "X", date(2024, 1, 3), ""),
		exp("b", 2, "X", date(2024, 1, 2), ""),
		exp("a", 3, "X", date(2024, 1, 1), ""),
	}

	got := expense.Apply(list, expense.Filter{Category: "X"}, date(2024, 1, 15))

	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].Title)
	assert.Equal(t, "b", got[1].Title)
	assert.Equal(t, "a", got[2].Title)
}

func TestApply_CategoryFilter(t *testing.T) {
	list := []*expense.Expense{
		exp("Rent", 1500000, "Rent", date(2024, 1, 5), "Self"),
		exp("Petrol", 120000, "Fuel", date(2024, 1, 3), "Self"),
	}

	got := expense.Apply(list, expense.Filter{Category: "Fuel"}, date(2024, 1, 15))
	require.Len(t, got, 1)
	assert.Equal(t, "Petrol", got[0].Title)

	// A category present in no record yields an empty set, not an error.
	assert.Empty(t, expense.Apply(list, expense.Filter{Category: "Savings"}, date(2024, 1, 15)))
}

func TestApply_PersonFilterIsCaseInsensitive(t *testing.T) {
	list := []*expense.Expense{
		exp("Rent", 1500000, "Rent", date(2024, 1, 5), "Self"),
		exp("Groceries", 65000, "Groceries", date(2024, 1, 4), "Family"),
	}

	got := expense.Apply(list, expense.Filter{Person: "self"}, date(2024, 1, 15))
	require.Len(t, got, 1)
	assert.Equal(t, "Rent", got[0].Title)
}

func TestApply_ThisMonthIncludesWholeCalendarMonth(t *testing.T) {
	list := []*expense.Expense{
		exp("first", 10000, "Other", date(2024, 1, 1), ""),
		exp("last", 5000, "Other", date(2024, 1, 31), ""),
		exp("before", 99900, "Other", date(2023, 12, 31), ""),
		exp("after", 99900, "Other", date(2024, 2, 1), ""),
	}

	today := date(2024, 1, 15)
	got := expense.Apply(list, expense.Filter{Range: expense.DateRange{Kind: expense.RangeThisMonth}}, today)

	require.Len(t, got, 2)
	assert.Equal(t, int64(15000), expense.Total(got))
}

func TestApply_ThisWeekRunsMondayThroughSunday(t *testing.T) {
	// 2024-01-17 is a Wednesday; the week is Mon 15th .. Sun 21st.
	today := date(2024, 1, 17)

	list := []*expense.Expense{
		exp("monday", 100, "Other", date(2024, 1, 15), ""),
		exp("sunday", 200, "Other", date(2024, 1, 21), ""),
		exp("last-sunday", 300, "Other", date(2024, 1, 14), ""),
		exp("next-monday", 400, "Other", date(2024, 1, 22), ""),
	}

	got := expense.Apply(list, expense.Filter{Range: expense.DateRange{Kind: expense.RangeThisWeek}}, today)

	require.Len(t, got, 2)
	assert.Equal(t, "monday", got[0].Title)
	assert.Equal(t, "sunday", got[1].Title)
}

func TestApply_ThisWeekOnASunday(t *testing.T) {
	// 2024-01-21 is a Sunday; the week is still Mon 15th .. Sun 21st.
	today := date(2024, 1, 21)

	list := []*expense.Expense{
		exp("monday", 100, "Other", date(2024, 1, 15), ""),
		exp("next-monday", 400, "Other", date(2024, 1, 22), ""),
	}

	got := expense.Apply(list, expense.Filter{Range: expense.DateRange{Kind: expense.RangeThisWeek}}, today)

	require.Len(t, got, 1)
	assert.Equal(t, "monday", got[0].Title)
}

func TestApply_CustomRangeIsInclusive(t *testing.T) {
	list := []*expense.Expense{
		exp("in-start", 1, "Other", date(2024, 1, 10), ""),
		exp("in-end", 2, "Other", date(2024, 1, 20), ""),
		exp("out", 3, "Other", date(2024, 1, 21), ""),
	}

	f := expense.Filter{Range: expense.DateRange{
		Kind:  expense.RangeCustom,
		Start: date(2024, 1, 10),
		End:   date(2024, 1, 20),
	}}

	got := expense.Apply(list, f, date(2024, 6, 1))
	require.Len(t, got, 2)
}

func TestApply_ThisMonthComparesCalendarDaysAcrossLocations(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)

	// Entry forms store UTC midnights while "today" runs on the local
	// clock; the last day of the month must still count as in-month.
	list := []*expense.Expense{
		exp("first", 10000, "Other", expense.ParseDate("2024-01-01", date(2024, 1, 15)), ""),
		exp("last", 5000, "Other", expense.ParseDate("2024-01-31", date(2024, 1, 15)), ""),
		exp("next-month", 99900, "Other", expense.ParseDate("2024-02-01", date(2024, 1, 15)), ""),
	}

	today := time.Date(2024, 1, 15, 12, 0, 0, 0, ist)
	got := expense.Apply(list, expense.Filter{Range: expense.DateRange{Kind: expense.RangeThisMonth}}, today)

	require.Len(t, got, 2)
	assert.Equal(t, int64(15000), expense.Total(got))
}

func TestApply_CustomRangeStartDayAcrossLocations(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)

	// Locally-stamped records on the range's start day stay inside the
	// UTC-dated custom range.
	list := []*expense.Expense{
		exp("on-start", 1, "Other", time.Date(2024, 1, 10, 9, 30, 0, 0, ist), ""),
		exp("before", 2, "Other", time.Date(2024, 1, 9, 23, 0, 0, 0, ist), ""),
	}

	f := expense.Filter{Range: expense.DateRange{
		Kind:  expense.RangeCustom,
		Start: date(2024, 1, 10),
		End:   date(2024, 1, 20),
	}}

	got := expense.Apply(list, f, date(2024, 6, 1))
	require.Len(t, got, 1)
	assert.Equal(t, "on-start", got[0].Title)
}

func TestApply_SearchMatchesTitleCategoryOrPerson(t *testing.T) {
	list := []*expense.Expense{
		exp("Dinner Out", 90000, "Dining Out", date(2024, 1, 5), "Family"),
		exp("Rent", 1500000, "Rent", date(2024, 1, 4), "Self"),
		exp("Petrol", 120000, "Fuel", date(2024, 1, 3), "Self"),
	}

	today := date(2024, 1, 15)

	// Person match, case-insensitive.
	got := expense.Apply(list, expense.Filter{Search: "self"}, today)
	assert.Len(t, got, 2)

	// Category match.
	got = expense.Apply(list, expense.Filter{Search: "fuel"}, today)
	require.Len(t, got, 1)
	assert.Equal(t, "Petrol", got[0].Title)

	// Title match.
	got = expense.Apply(list, expense.Filter{Search: "dinner"}, today)
	require.Len(t, got, 1)
	assert.Equal(t, "Dinner Out", got[0].Title)
}

func TestApply_FiltersCombineConjunctively(t *testing.T) {
	list := []*expense.Expense{
		exp("Dinner Out", 90000, "Dining Out", date(2024, 1, 5), "Family"),
		exp("Lunch", 40000, "Dining Out", date(2024, 1, 6), "Self"),
		exp("Dinner Again", 50000, "Dining Out", date(2023, 11, 2), "Family"),
	}

	f := expense.Filter{
		Category: "Dining Out",
		Person:   "Family",
		Range:    expense.DateRange{Kind: expense.RangeThisMonth},
	}

	got := expense.Apply(list, f, date(2024, 1, 15))
	require.Len(t, got, 1)
	assert.Equal(t, "Dinner Out", got[0].Title)
}

func TestApply_EmptyInput(t *testing.T) {
	got := expense.Apply(nil, expense.Filter{Search: "x"}, date(2024, 1, 15))

	assert.Empty(t, got)
	assert.Zero(t, expense.Total(got))
	assert.Empty(t, expense.SumByCategory(got))
	assert.Empty(t, expense.DistinctPersons(got))
}

func TestSumByCategory(t *testing.T) {
	list := []*expense.Expense{
		exp("a1", 1000, "A", date(2024, 1, 1), ""),
		exp("b1", 500, "B", date(2024, 1, 2), ""),
		exp("a2", 300, "A", date(2024, 1, 3), ""),
	}

	got := expense.SumByCategory(list)

	require.Len(t, got, 2)
	assert.Equal(t, expense.CategoryTotal{Category: "A", TotalCents: 1300}, got[0])
	assert.Equal(t, expense.CategoryTotal{Category: "B", TotalCents: 500}, got[1])
}

func TestSumByCategory_TiesOrderByName(t *testing.T) {
	list := []*expense.Expense{
		exp("z", 500, "Zed", date(2024, 1, 1), ""),
		exp("a", 500, "Alpha", date(2024, 1, 2), ""),
	}

	got := expense.SumByCategory(list)

	require.Len(t, got, 2)
	assert.Equal(t, "Alpha", got[0].Category)
	assert.Equal(t, "Zed", got[1].Category)
}

func TestDistinctPersons(t *testing.T) {
	list := []*expense.Expense{
		exp("a", 1, "X", date(2024, 1, 1), "Self"),
		exp("b", 1, "X", date(2024, 1, 2), " self "),
		exp("c", 1, "X", date(2024, 1, 3), "Family"),
		exp("d", 1, "X", date(2024, 1, 4), "  "),
		exp("e", 1, "X", date(2024, 1, 5), ""),
	}

	got := expense.DistinctPersons(list)

	// Trimmed, blanks dropped, case-insensitively deduplicated, sorted.
	assert.Equal(t, []string{"Family", "Self"}, got)
}
