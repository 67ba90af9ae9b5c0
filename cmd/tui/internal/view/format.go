package view

import (
	"context"
	"fmt"
	"time"
)

const dbTimeout = 5 * time.Second

// FormatAmount formats an amount stored as cents into a human-readable string.
func FormatAmount(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100.0)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatMonth formats a time.Time into a short month label like "Jan 2024".
func FormatMonth(t time.Time) string {
	return t.Format("Jan 2006")
}

// FormatPercent renders a 0..1 ratio as a whole percentage.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.0f%%", p*100)
}

// ProgressBar renders a fixed-width text gauge for a 0..1 ratio.
func ProgressBar(p float64, width int) string {
	filled := int(p * float64(width))
	if filled > width {
		filled = width
	}

	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}

	return bar
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
