// internal/core/domain/expense.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a flat bookkeeping record.
type Expense struct {
	ID        int64           `json:"id"`
	Name      string          `json:"exp"`
	Value     decimal.Decimal `json:"value"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Validate checks the required expense fields
func (e *Expense) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("exp is required")
	}
	if !e.Value.IsPositive() {
		return fmt.Errorf("value must be positive")
	}
	return nil
}

// ExpenseGroup is one bucket of the daily or monthly expense totals.
// Period is "2006-01-02" for daily grouping and "2006-01" for monthly.
type ExpenseGroup struct {
	Period   string          `json:"period"`
	Total    decimal.Decimal `json:"total"`
	Expenses []Expense       `json:"expenses"`
}
