package expense

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"kharcha/internal/category"
	"kharcha/internal/signal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	CreateExpense(ctx context.Context, e *Expense) error
	GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error)
	UpdateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error

	// ListExpenses returns all records ordered by spent_at descending,
	// id descending on ties.
	ListExpenses(ctx context.Context) ([]*Expense, error)

	TotalCents(ctx context.Context) (int64, error)
	CategoryTotals(ctx context.Context) ([]CategoryTotal, error)
	CountExpenses(ctx context.Context) (int64, error)
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

type CreateParams struct {
	Title       string
	AmountCents int64
	Category    string
	SpentAt     time.Time
	Person      string
}

// Create stores a new expense. Fields are trimmed; a blank category is
// filled in by the recognizer. The storage gateway assigns the id.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Expense, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	cat := strings.TrimSpace(params.Category)
	if cat == "" {
		cat = category.Recognize(title)
	}

	e := &Expense{
		Title:       title,
		AmountCents: params.AmountCents,
		Category:    cat,
		SpentAt:     params.SpentAt,
		Person:      strings.TrimSpace(params.Person),
	}
	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	s.changes.Publish(struct{}{})

	return e, nil
}

// Update replaces the stored record with e. The same normalization as
// Create applies; the id never changes.
func (s *Service) Update(ctx context.Context, e *Expense) error {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return ErrEmptyTitle
	}

	e.Category = strings.TrimSpace(e.Category)
	if e.Category == "" {
		e.Category = category.Recognize(e.Title)
	}

	e.Person = strings.TrimSpace(e.Person)

	if err := s.repo.UpdateExpense(ctx, e); err != nil {
		return err
	}

	s.changes.Publish(struct{}{})

	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteExpense(ctx, id); err != nil {
		return err
	}

	s.changes.Publish(struct{}{})

	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Expense, error) {
	return s.repo.GetExpense(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx)
}

// Total is the sum over ALL records, unfiltered.
func (s *Service) Total(ctx context.Context) (int64, error) {
	return s.repo.TotalCents(ctx)
}

// CategoryTotals aggregates over ALL records, unfiltered.
func (s *Service) CategoryTotals(ctx context.Context) ([]CategoryTotal, error) {
	return s.repo.CategoryTotals(ctx)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.CountExpenses(ctx)
}

// Watch registers fn to run after every successful mutation. The
// returned func unsubscribes and must be called on teardown.
func (s *Service) Watch(fn func()) (unsubscribe func()) {
	return s.changes.Subscribe(func(struct{}) { fn() })
}
