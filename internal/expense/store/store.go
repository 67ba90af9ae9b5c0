// Package store is the SQL storage gateway for expenses. The queries
// stick to the dialect subset shared by SQLite and PostgreSQL:
// positional $N parameters and no database-side functions; ids and
// timestamps are assigned in Go.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kharcha/internal/expense"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectExpenseColumns = `
	id, title, amount_cents, category, spent_at, person, created_at, updated_at
`

// scanExpense reads one expense row. NULL category and person columns
// normalize to the empty string at this boundary.
func scanExpense(s scanner) (*expense.Expense, error) {
	var e expense.Expense

	var category, person sql.NullString

	if err := s.Scan(
		&e.ID, &e.Title, &e.AmountCents, &category, &e.SpentAt, &person,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.Category = category.String
	e.Person = person.String

	return &e, nil
}

func (s *Store) CreateExpense(ctx context.Context, e *expense.Expense) error {
	e.ID = uuid.New()
	e.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO expenses (id, title, amount_cents, category, spent_at, person, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.ExecContext(ctx, query,
		e.ID,
		e.Title,
		e.AmountCents,
		e.Category,
		e.SpentAt,
		e.Person,
		e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (s *Store) GetExpense(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + ` FROM expenses WHERE id = $1`

	e, err := scanExpense(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, expense.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return e, nil
}

func (s *Store) UpdateExpense(ctx context.Context, e *expense.Expense) error {
	now := time.Now().UTC()

	query := `
		UPDATE expenses
		SET title = $1, amount_cents = $2, category = $3, spent_at = $4, person = $5, updated_at = $6
		WHERE id = $7
	`

	res, err := s.db.ExecContext(ctx, query,
		e.Title,
		e.AmountCents,
		e.Category,
		e.SpentAt,
		e.Person,
		now,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}

	if n == 0 {
		return expense.ErrNotFound
	}

	e.UpdatedAt = &now

	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	return nil
}

func (s *Store) ListExpenses(ctx context.Context) ([]*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses
		ORDER BY spent_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense rows: %w", err)
	}

	return expenses, nil
}

func (s *Store) TotalCents(ctx context.Context) (int64, error) {
	var total int64

	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount_cents), 0) FROM expenses`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("summing expenses: %w", err)
	}

	return total, nil
}

func (s *Store) CategoryTotals(ctx context.Context) ([]expense.CategoryTotal, error) {
	query := `
		SELECT category, SUM(amount_cents) AS total
		FROM expenses
		GROUP BY category
		ORDER BY total DESC, category ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("aggregating category totals: %w", err)
	}
	defer rows.Close()

	var totals []expense.CategoryTotal

	for rows.Next() {
		var ct expense.CategoryTotal

		var category sql.NullString

		if err := rows.Scan(&category, &ct.TotalCents); err != nil {
			return nil, fmt.Errorf("scanning category total: %w", err)
		}

		ct.Category = category.String
		totals = append(totals, ct)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category total rows: %w", err)
	}

	return totals, nil
}

func (s *Store) CountExpenses(ctx context.Context) (int64, error) {
	var n int64

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting expenses: %w", err)
	}

	return n, nil
}
