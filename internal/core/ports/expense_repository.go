// internal/core/ports/expense_repository.go
package ports

import (
	"context"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
)

// ExpenseRepository defines the persistence port for expense bookkeeping.
type ExpenseRepository interface {
	Save(ctx context.Context, expense *domain.Expense) error
	FindAll(ctx context.Context) ([]domain.Expense, error)
	Delete(ctx context.Context, id int64) error

	// GroupByDay and GroupByMonth bucket expenses by creation date, oldest
	// period first, each bucket carrying its member rows and total.
	GroupByDay(ctx context.Context) ([]domain.ExpenseGroup, error)
	GroupByMonth(ctx context.Context) ([]domain.ExpenseGroup, error)
}
