package budget

// Budget caps monthly spend. An empty Category means the overall
// budget for that month. At most one record exists per
// (year, month, category) key; setting an existing key replaces it.
type Budget struct {
	Year        int
	Month       int // 1..12
	Category    string
	AmountCents int64
}

// PercentUsed reports how much of a budget the given spend consumes,
// clamped to [0, 1]. A missing or zero budget always reads as 0.
func PercentUsed(totalCents, budgetCents int64) float64 {
	if budgetCents <= 0 {
		return 0
	}

	p := float64(totalCents) / float64(budgetCents)
	if p < 0 {
		return 0
	}

	if p > 1 {
		return 1
	}

	return p
}
