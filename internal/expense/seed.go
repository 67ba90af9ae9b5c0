package expense

import (
	"context"
	"fmt"
	"time"
)

// SeedIfEmpty inserts a small sample data set on first launch so the
// list screen is not empty. It is a no-op once any record exists.
func (s *Service) SeedIfEmpty(ctx context.Context) error {
	n, err := s.repo.CountExpenses(ctx)
	if err != nil {
		return fmt.Errorf("counting expenses: %w", err)
	}

	if n > 0 {
		return nil
	}

	for _, p := range sampleParams(time.Now()) {
		if _, err := s.Create(ctx, p); err != nil {
			return fmt.Errorf("seeding sample expense %q: %w", p.Title, err)
		}
	}

	return nil
}

func sampleParams(today time.Time) []CreateParams {
	daysAgo := func(n int) time.Time { return day(today.AddDate(0, 0, -n)) }

	return []CreateParams{
		{Title: "Vegetables & Milk", AmountCents: 65000, Category: "Groceries", SpentAt: daysAgo(1), Person: "Family"},
		{Title: "House Rent", AmountCents: 1500000, Category: "Rent", SpentAt: daysAgo(3), Person: "Self"},
		{Title: "Mobile Recharge", AmountCents: 24900, Category: "Mobile/Internet", SpentAt: daysAgo(2), Person: "Self"},
		{Title: "Auto to Office", AmountCents: 12000, Category: "Transport", SpentAt: daysAgo(1), Person: "Self"},
		{Title: "Petrol", AmountCents: 120000, Category: "Fuel", SpentAt: daysAgo(4), Person: "Self"},
		{Title: "Dinner Out", AmountCents: 90000, Category: "Dining Out", SpentAt: daysAgo(5), Person: "Family"},
		{Title: "Electricity Bill", AmountCents: 210000, Category: "Utilities", SpentAt: daysAgo(7), Person: "Family"},
		{Title: "Tuition Fees", AmountCents: 300000, Category: "Education", SpentAt: daysAgo(6), Person: "Child"},
		{Title: "Health Medicines", AmountCents: 45000, Category: "Medical", SpentAt: daysAgo(2), Person: "Parent"},
	}
}
