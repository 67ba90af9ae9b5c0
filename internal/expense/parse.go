package expense

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseAmount converts user-entered text into cents. Unparseable or
// negative input resolves to 0 instead of an error; this leniency is a
// deliberate policy, the forms never reject an amount.
func ParseAmount(s string) int64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}

	return int64(math.Round(v * 100))
}

// ParseDate parses a YYYY-MM-DD value, falling back to today on
// unparseable input. Same leniency policy as ParseAmount. Either way
// the result is truncated to midnight.
func ParseDate(s string, today time.Time) time.Time {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return day(today)
	}

	return day(d)
}
