// internal/core/services/expenses.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
)

// ExpenseService handles expense bookkeeping
type ExpenseService struct {
	repo   ports.ExpenseRepository
	logger *slog.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(repo ports.ExpenseRepository, logger *slog.Logger) *ExpenseService {
	return &ExpenseService{
		repo:   repo,
		logger: logger.With(slog.String("service", "expenses")),
	}
}

// Record validates and persists a new expense
func (s *ExpenseService) Record(ctx context.Context, name string, value decimal.Decimal) (*domain.Expense, error) {
	expense := &domain.Expense{Name: name, Value: value}

	if err := expense.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.repo.Save(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}

	s.logger.InfoContext(ctx, "expense recorded",
		slog.Int64("expense_id", expense.ID),
		slog.String("name", expense.Name),
		slog.String("value", expense.Value.String()))

	return expense, nil
}

// List returns all expenses
func (s *ExpenseService) List(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	s.logger.InfoContext(ctx, "expense deleted", slog.Int64("expense_id", id))
	return nil
}

// DailyTotals buckets all expenses by calendar day
func (s *ExpenseService) DailyTotals(ctx context.Context) ([]domain.ExpenseGroup, error) {
	groups, err := s.repo.GroupByDay(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute daily totals: %w", err)
	}
	return groups, nil
}

// MonthlyTotals buckets all expenses by calendar month
func (s *ExpenseService) MonthlyTotals(ctx context.Context) ([]domain.ExpenseGroup, error) {
	groups, err := s.repo.GroupByMonth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly totals: %w", err)
	}
	return groups, nil
}
