package budget

import (
	"context"

	"kharcha/internal/signal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	// UpsertBudget inserts or replaces the record for its key.
	UpsertBudget(ctx context.Context, b *Budget) error

	// GetBudget returns the record for the key, or nil when none is set.
	GetBudget(ctx context.Context, year, month int, category string) (*Budget, error)

	DeleteBudget(ctx context.Context, year, month int, category string) error
}

type Service struct {
	repo    Repository
	changes *signal.Broadcaster[struct{}]
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:    repo,
		changes: signal.New[struct{}](),
	}
}

// SetOverall upserts the overall budget for a month. Negative amounts
// clamp to zero.
func (s *Service) SetOverall(ctx context.Context, year, month int, amountCents int64) error {
	if amountCents < 0 {
		amountCents = 0
	}

	b := &Budget{Year: year, Month: month, AmountCents: amountCents}
	if err := s.repo.UpsertBudget(ctx, b); err != nil {
		return err
	}

	s.changes.Publish(struct{}{})

	return nil
}

// ClearOverall removes the overall budget for a month. Absence
// afterwards means "no budget set".
func (s *Service) ClearOverall(ctx context.Context, year, month int) error {
	if err := s.repo.DeleteBudget(ctx, year, month, ""); err != nil {
		return err
	}

	s.changes.Publish(struct{}{})

	return nil
}

// Overall returns the overall budget for a month, or nil when unset.
func (s *Service) Overall(ctx context.Context, year, month int) (*Budget, error) {
	return s.repo.GetBudget(ctx, year, month, "")
}

// ForCategory returns a category-scoped budget, or nil when unset.
// No current flow writes these; the key supports them as an extension
// point.
func (s *Service) ForCategory(ctx context.Context, year, month int, cat string) (*Budget, error) {
	return s.repo.GetBudget(ctx, year, month, cat)
}

// Watch registers fn to run after every successful mutation. The
// returned func unsubscribes.
func (s *Service) Watch(fn func()) (unsubscribe func()) {
	return s.changes.Subscribe(func(struct{}) { fn() })
}
