// internal/handlers/expenses.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/services"
)

// ExpensesHandler handles expense bookkeeping HTTP requests
type ExpensesHandler struct {
	expenses *services.ExpenseService
	logger   *slog.Logger
}

// NewExpensesHandler creates a new expenses handler
func NewExpensesHandler(expenses *services.ExpenseService, logger *slog.Logger) *ExpensesHandler {
	return &ExpensesHandler{
		expenses: expenses,
		logger:   logger.With(slog.String("handler", "expenses")),
	}
}

// RecordExpense handles POST /api/v1/expenses
func (h *ExpensesHandler) RecordExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ExpenseRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	expense, err := h.expenses.Record(ctx, req.Name, req.Value)
	if err != nil {
		if isValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(ctx, "failed to record expense",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to record expense")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Expense recorded successfully",
		"expense": expense,
	})
}

// ListExpenses handles GET /api/v1/expenses
func (h *ExpensesHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	expenses, err := h.expenses.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list expenses",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list expenses")
		return
	}

	if expenses == nil {
		expenses = []domain.Expense{}
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"expenses": expenses})
}

// DeleteExpense handles DELETE /api/v1/expenses/{id}
func (h *ExpensesHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	expenseID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid expense ID format")
		return
	}

	if err := h.expenses.Delete(ctx, expenseID); err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			h.respondError(w, http.StatusNotFound, "Expense not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete expense",
			slog.Int64("expense_id", expenseID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to delete expense")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Expense deleted successfully",
		"expenseId": expenseID,
	})
}

// GetDailyTotals handles GET /api/v1/expenses/daily
func (h *ExpensesHandler) GetDailyTotals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	groups, err := h.expenses.DailyTotals(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load daily expense totals",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to load daily totals")
		return
	}

	if groups == nil {
		groups = []domain.ExpenseGroup{}
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"groups": groups})
}

// GetMonthlyTotals handles GET /api/v1/expenses/monthly
func (h *ExpensesHandler) GetMonthlyTotals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	groups, err := h.expenses.MonthlyTotals(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load monthly expense totals",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to load monthly totals")
		return
	}

	if groups == nil {
		groups = []domain.ExpenseGroup{}
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"groups": groups})
}

// Helper methods

func (h *ExpensesHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *ExpensesHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// Request/Response DTOs

// ExpenseRequest represents the request body for recording an expense
type ExpenseRequest struct {
	Name  string          `json:"exp"`
	Value decimal.Decimal `json:"value"`
}

// Validate validates the expense request
func (r *ExpenseRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("exp is required")
	}
	if !r.Value.IsPositive() {
		return fmt.Errorf("value must be positive")
	}
	return nil
}
