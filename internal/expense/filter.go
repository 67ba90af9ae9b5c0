package expense

import (
	"sort"
	"strings"
	"time"
)

// RangeKind selects how a date range is resolved.
type RangeKind int

const (
	RangeAll RangeKind = iota
	RangeThisWeek
	RangeThisMonth
	RangeCustom
)

func (k RangeKind) String() string {
	switch k {
	case RangeThisWeek:
		return "This Week"
	case RangeThisMonth:
		return "This Month"
	case RangeCustom:
		return "Custom Range"
	}

	return "All Time"
}

// DateRange restricts expenses to a span of calendar days. Start and
// End are read only when Kind is RangeCustom; both bounds are inclusive.
type DateRange struct {
	Kind  RangeKind
	Start time.Time
	End   time.Time
}

// Bounds resolves the range against the given "today". ok is false
// when the range imposes no constraint.
func (r DateRange) Bounds(today time.Time) (start, end time.Time, ok bool) {
	switch r.Kind {
	case RangeThisWeek:
		// ISO week: Monday through Sunday.
		offset := int(today.Weekday())
		if offset == 0 {
			offset = 7
		}

		start = day(today.AddDate(0, 0, -offset+1))

		return start, start.AddDate(0, 0, 6), true
	case RangeThisMonth:
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return start, start.AddDate(0, 1, -1), true
	case RangeCustom:
		return day(r.Start), day(r.End), true
	}

	return time.Time{}, time.Time{}, false
}

// Filter holds the four independent selectors applied conjunctively to
// the raw collection. Empty-string selectors are inactive.
type Filter struct {
	Category string // exact match
	Person   string // case-insensitive exact match
	Range    DateRange
	Search   string // substring over title, category, person
}

// Apply runs every active selector over expenses and returns the
// matches in input order. It is pure: the input is never mutated.
// Range matching compares calendar days, not instants, so a record
// stamped in one location and bounds resolved in another still land
// on the same day.
func Apply(expenses []*Expense, f Filter, today time.Time) []*Expense {
	start, end, bounded := f.Range.Bounds(today)
	startKey, endKey := dayKey(start), dayKey(end)
	query := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]*Expense, 0, len(expenses))

	for _, e := range expenses {
		if f.Category != "" && e.Category != f.Category {
			continue
		}

		if f.Person != "" && !strings.EqualFold(e.Person, f.Person) {
			continue
		}

		if bounded {
			k := dayKey(e.SpentAt)
			if k < startKey || k > endKey {
				continue
			}
		}

		if query != "" && !matchesQuery(e, query) {
			continue
		}

		out = append(out, e)
	}

	return out
}

func matchesQuery(e *Expense, query string) bool {
	return strings.Contains(strings.ToLower(e.Title), query) ||
		strings.Contains(strings.ToLower(e.Category), query) ||
		strings.Contains(strings.ToLower(e.Person), query)
}

// Total sums the amounts of expenses. Empty input sums to 0.
func Total(expenses []*Expense) int64 {
	var sum int64
	for _, e := range expenses {
		sum += e.AmountCents
	}

	return sum
}

// SumByCategory groups expenses by category and sums their amounts,
// ordered by descending total, category ascending on ties.
func SumByCategory(expenses []*Expense) []CategoryTotal {
	sums := make(map[string]int64)

	var order []string

	for _, e := range expenses {
		if _, seen := sums[e.Category]; !seen {
			order = append(order, e.Category)
		}

		sums[e.Category] += e.AmountCents
	}

	totals := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		totals = append(totals, CategoryTotal{Category: cat, TotalCents: sums[cat]})
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].TotalCents != totals[j].TotalCents {
			return totals[i].TotalCents > totals[j].TotalCents
		}

		return totals[i].Category < totals[j].Category
	})

	return totals
}

// DistinctPersons lists the person labels present in expenses: trimmed,
// blanks dropped, deduplicated case-insensitively (first-seen casing
// kept), sorted alphabetically. Callers pass the UNFILTERED collection
// so the person chips stay stable while filters change.
func DistinctPersons(expenses []*Expense) []string {
	seen := make(map[string]struct{})

	var persons []string

	for _, e := range expenses {
		p := strings.TrimSpace(e.Person)
		if p == "" {
			continue
		}

		key := strings.ToLower(p)

		_, dup := seen[key]
		if dup {
			continue
		}

		seen[key] = struct{}{}

		persons = append(persons, p)
	}

	sort.Slice(persons, func(i, j int) bool {
		return strings.ToLower(persons[i]) < strings.ToLower(persons[j])
	})

	return persons
}

// day truncates t to midnight in its own location.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayKey collapses t to its calendar day, ignoring clock and location.
// Two timestamps share a key exactly when their wall dates match.
func dayKey(t time.Time) int {
	return t.Year()*10_000 + int(t.Month())*100 + t.Day()
}
