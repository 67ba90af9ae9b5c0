package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no expense exists for an id.
	ErrNotFound = errors.New("expense not found")

	// ErrEmptyTitle is returned when a create or update carries a blank title.
	ErrEmptyTitle = errors.New("expense title must not be empty")
)

// Expense is a single spend record. Records are immutable value
// snapshots: an update replaces the whole row, never a single field.
type Expense struct {
	ID          uuid.UUID
	Title       string
	AmountCents int64 // Amount in cents
	Category    string
	SpentAt     time.Time // Calendar date of the spend
	Person      string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// CategoryTotal is a derived (category, sum) pair. Never persisted.
type CategoryTotal struct {
	Category   string
	TotalCents int64
}
