// internal/adapters/db/expense_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
)

// expenseRepository implements ports.ExpenseRepository
type expenseRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *Database, logger *slog.Logger) ports.ExpenseRepository {
	return &expenseRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "expenses")),
	}
}

// Save creates a new expense record
func (r *expenseRepository) Save(ctx context.Context, expense *domain.Expense) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO expenses (exp, value)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		expense.Name, expense.Value,
	).Scan(&expense.ID, &expense.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}

	r.logger.DebugContext(ctx, "expense saved",
		slog.Int64("expense_id", expense.ID))

	return nil
}

// FindAll retrieves all expenses, newest first
func (r *expenseRepository) FindAll(ctx context.Context) ([]domain.Expense, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, exp, value, created_at
		FROM expenses
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.Name, &e.Value, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return expenses, nil
}

// Delete removes an expense
func (r *expenseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}

	return nil
}

// GroupByDay buckets expenses by calendar day, oldest period first
func (r *expenseRepository) GroupByDay(ctx context.Context) ([]domain.ExpenseGroup, error) {
	return r.groupByPeriod(ctx, "YYYY-MM-DD")
}

// GroupByMonth buckets expenses by calendar month, oldest period first
func (r *expenseRepository) GroupByMonth(ctx context.Context) ([]domain.ExpenseGroup, error) {
	return r.groupByPeriod(ctx, "YYYY-MM")
}

func (r *expenseRepository) groupByPeriod(ctx context.Context, format string) ([]domain.ExpenseGroup, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(created_at, $1), id, exp, value, created_at
		FROM expenses
		ORDER BY to_char(created_at, $1) ASC, created_at ASC`,
		format)
	if err != nil {
		return nil, fmt.Errorf("failed to query grouped expenses: %w", err)
	}
	defer rows.Close()

	var groups []domain.ExpenseGroup
	for rows.Next() {
		var period string
		var e domain.Expense
		if err := rows.Scan(&period, &e.ID, &e.Name, &e.Value, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}

		if len(groups) == 0 || groups[len(groups)-1].Period != period {
			groups = append(groups, domain.ExpenseGroup{
				Period: period,
				Total:  decimal.Zero,
			})
		}

		last := &groups[len(groups)-1]
		last.Expenses = append(last.Expenses, e)
		last.Total = last.Total.Add(e.Value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return groups, nil
}
