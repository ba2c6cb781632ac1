// internal/handlers/sales.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	redis_a "github.com/adesina-labs/pharmhub-be/internal/adapters/redis_adapter"
	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
)

// SalesHandler handles sale ledger HTTP requests
type SalesHandler struct {
	ledger ports.SaleLedger
	cache  ports.CacheRepository
	logger *slog.Logger
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(ledger ports.SaleLedger, cache ports.CacheRepository, logger *slog.Logger) *SalesHandler {
	return &SalesHandler{
		ledger: ledger,
		cache:  cache,
		logger: logger.With(slog.String("handler", "sales")),
	}
}

// RecordSale handles POST /api/v1/sales
func (h *SalesHandler) RecordSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RecordSaleRequest
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

	sale, err := h.ledger.RecordSale(ctx, req.ToInput())
	if err != nil {
		h.respondLedgerError(w, r, "failed to record sale", err)
		return
	}

	h.invalidateDashboards(r)

	h.logger.InfoContext(ctx, "sale recorded",
		slog.Int64("sale_id", sale.ID),
		slog.Int64("drug_id", sale.DrugID))

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Sale recorded successfully",
		"sale":    sale,
	})
}

// ListSales handles GET /api/v1/sales
func (h *SalesHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sales, err := h.ledger.ListSales(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list sales",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list sales")
		return
	}

	if sales == nil {
		sales = []domain.SaleWithDrug{}
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"sales": sales})
}

// UpdateSale handles PUT /api/v1/sales/{id}
func (h *SalesHandler) UpdateSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	saleID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid sale ID format")
		return
	}

	var req UpdateSaleRequest
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

	sale, err := h.ledger.UpdateSale(ctx, req.ToInput(saleID))
	if err != nil {
		h.respondLedgerError(w, r, "failed to update sale", err)
		return
	}

	h.invalidateDashboards(r)

	h.logger.InfoContext(ctx, "sale updated", slog.Int64("sale_id", saleID))
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Sale updated successfully",
		"sale":    sale,
	})
}

// DeleteSale handles DELETE /api/v1/sales/{id}
func (h *SalesHandler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	saleID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid sale ID format")
		return
	}

	if err := h.ledger.DeleteSale(ctx, saleID); err != nil {
		h.respondLedgerError(w, r, "failed to delete sale", err)
		return
	}

	h.invalidateDashboards(r)

	h.logger.InfoContext(ctx, "sale deleted", slog.Int64("sale_id", saleID))
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Sale deleted and stock restored",
		"saleId":  saleID,
	})
}

// respondLedgerError maps ledger sentinel errors onto HTTP statuses.
func (h *SalesHandler) respondLedgerError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()

	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		h.respondError(w, http.StatusBadRequest, "Insufficient stock for this sale")
	case errors.Is(err, domain.ErrDrugNotFound):
		h.respondError(w, http.StatusNotFound, "Drug not found")
	case errors.Is(err, domain.ErrSaleNotFound):
		h.respondError(w, http.StatusNotFound, "Sale not found")
	default:
		if isValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(ctx, msg, slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Something went wrong")
	}
}

// invalidateDashboards drops cached aggregates after a ledger write.
func (h *SalesHandler) invalidateDashboards(r *http.Request) {
	if h.cache == nil {
		return
	}
	ctx := r.Context()
	if err := h.cache.DeletePattern(ctx, string(redis_a.PrefixDashboard)+":*"); err != nil {
		h.logger.WarnContext(ctx, "failed to invalidate dashboard cache",
			slog.String("error", err.Error()))
	}
}

// Helper methods

func (h *SalesHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *SalesHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// Request/Response DTOs

// RecordSaleRequest represents the request body for recording a sale
type RecordSaleRequest struct {
	DrugID        int64           `json:"drugstoreId"`
	DoseSold      int64           `json:"doseSold"`
	UnitCostPrice decimal.Decimal `json:"unitCostPrice"`
	SalesPrice    decimal.Decimal `json:"salesPrice"`
	Closed        bool            `json:"closed,omitempty"`
}

// Validate validates the record sale request
func (r *RecordSaleRequest) Validate() error {
	if r.DrugID <= 0 {
		return fmt.Errorf("drugstoreId is required")
	}
	if r.DoseSold <= 0 {
		return fmt.Errorf("doseSold must be positive")
	}
	if !r.SalesPrice.IsPositive() {
		return fmt.Errorf("salesPrice must be positive")
	}
	if r.UnitCostPrice.IsNegative() {
		return fmt.Errorf("unitCostPrice cannot be negative")
	}
	return nil
}

// ToInput converts the request to a service input
func (r *RecordSaleRequest) ToInput() ports.RecordSaleInput {
	return ports.RecordSaleInput{
		DrugID:        r.DrugID,
		DoseSold:      r.DoseSold,
		UnitCostPrice: r.UnitCostPrice,
		SalesPrice:    r.SalesPrice,
		Closed:        r.Closed,
	}
}

// UpdateSaleRequest represents the request body for updating a sale
type UpdateSaleRequest struct {
	DoseSold      int64           `json:"doseSold"`
	UnitCostPrice decimal.Decimal `json:"unitCostPrice"`
	SalesPrice    decimal.Decimal `json:"salesPrice"`
	Closed        *bool           `json:"closed,omitempty"`
}

// Validate validates the update sale request
func (r *UpdateSaleRequest) Validate() error {
	if r.DoseSold <= 0 {
		return fmt.Errorf("doseSold must be positive")
	}
	if !r.SalesPrice.IsPositive() {
		return fmt.Errorf("salesPrice must be positive")
	}
	if r.UnitCostPrice.IsNegative() {
		return fmt.Errorf("unitCostPrice cannot be negative")
	}
	return nil
}

// ToInput converts the request to a service input
func (r *UpdateSaleRequest) ToInput(saleID int64) ports.UpdateSaleInput {
	return ports.UpdateSaleInput{
		SaleID:        saleID,
		DoseSold:      r.DoseSold,
		UnitCostPrice: r.UnitCostPrice,
		SalesPrice:    r.SalesPrice,
		Closed:        r.Closed,
	}
}

// isValidationError reports whether the service rejected the input before
// touching storage.
func isValidationError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "validation failed")
}
