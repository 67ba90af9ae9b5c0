// Package store is the SQL storage gateway for budgets. The overall
// budget for a month is stored with an empty category; the unique key
// (year, month, category) makes setting an existing key replace it.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"kharcha/internal/budget"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) UpsertBudget(ctx context.Context, b *budget.Budget) error {
	query := `
		INSERT INTO budgets (year, month, category, amount_cents)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (year, month, category) DO UPDATE SET amount_cents = excluded.amount_cents
	`

	_, err := s.db.ExecContext(ctx, query, b.Year, b.Month, b.Category, b.AmountCents)
	if err != nil {
		return fmt.Errorf("upserting budget: %w", err)
	}

	return nil
}

func (s *Store) GetBudget(ctx context.Context, year, month int, category string) (*budget.Budget, error) {
	query := `
		SELECT year, month, category, amount_cents
		FROM budgets
		WHERE year = $1 AND month = $2 AND category = $3
	`

	var b budget.Budget

	err := s.db.QueryRowContext(ctx, query, year, month, category).
		Scan(&b.Year, &b.Month, &b.Category, &b.AmountCents)
	if err != nil {
		// No budget set is a normal state, not an error.
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("getting budget: %w", err)
	}

	return &b, nil
}

func (s *Store) DeleteBudget(ctx context.Context, year, month int, category string) error {
	query := `DELETE FROM budgets WHERE year = $1 AND month = $2 AND category = $3`

	_, err := s.db.ExecContext(ctx, query, year, month, category)
	if err != nil {
		return fmt.Errorf("deleting budget: %w", err)
	}

	return nil
}
