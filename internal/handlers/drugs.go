// internal/handlers/drugs.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
)

// DrugsHandler handles drug catalogue HTTP requests
type DrugsHandler struct {
	service ports.DrugService
	logger  *slog.Logger
}

// NewDrugsHandler creates a new drugs handler
func NewDrugsHandler(service ports.DrugService, logger *slog.Logger) *DrugsHandler {
	return &DrugsHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "drugs")),
	}
}

// CreateDrug handles POST /api/v1/drugs
func (h *DrugsHandler) CreateDrug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DrugRequest
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

	drug := req.ToDomain()
	if err := h.service.SaveDrug(ctx, drug); err != nil {
		if isValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(ctx, "failed to create drug",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to create drug")
		return
	}

	h.logger.InfoContext(ctx, "drug created",
		slog.Int64("drug_id", drug.ID),
		slog.String("name", drug.Name))

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Drug created successfully",
		"drug":    drug,
	})
}

// GetDrug handles GET /api/v1/drugs/{id}
func (h *DrugsHandler) GetDrug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	drugID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid drug ID format")
		return
	}

	drug, err := h.service.GetByID(ctx, drugID)
	if err != nil {
		if errors.Is(err, domain.ErrDrugNotFound) {
			h.respondError(w, http.StatusNotFound, "Drug not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get drug",
			slog.Int64("drug_id", drugID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve drug")
		return
	}

	h.respondJSON(w, http.StatusOK, drug)
}

// ListDrugs handles GET /api/v1/drugs
func (h *DrugsHandler) ListDrugs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.service.List(ctx, h.parseListParams(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list drugs",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list drugs")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// UpdateDrug handles PUT /api/v1/drugs/{id}
func (h *DrugsHandler) UpdateDrug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	drugID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid drug ID format")
		return
	}

	var req DrugRequest
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

	drug := req.ToDomain()
	if err := h.service.UpdateDrug(ctx, drugID, drug); err != nil {
		if errors.Is(err, domain.ErrDrugNotFound) {
			h.respondError(w, http.StatusNotFound, "Drug not found")
			return
		}
		if isValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(ctx, "failed to update drug",
			slog.Int64("drug_id", drugID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to update drug")
		return
	}

	h.logger.InfoContext(ctx, "drug updated", slog.Int64("drug_id", drugID))
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Drug updated successfully",
		"drug":    drug,
	})
}

// DeleteDrug handles DELETE /api/v1/drugs/{id}
func (h *DrugsHandler) DeleteDrug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	drugID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid drug ID format")
		return
	}

	if err := h.service.DeleteDrug(ctx, drugID); err != nil {
		if errors.Is(err, domain.ErrDrugNotFound) {
			h.respondError(w, http.StatusNotFound, "Drug not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete drug",
			slog.Int64("drug_id", drugID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to delete drug")
		return
	}

	h.logger.InfoContext(ctx, "drug deleted", slog.Int64("drug_id", drugID))
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Drug deleted successfully",
		"drugId":  drugID,
	})
}

// parseListParams parses query parameters for listing drugs
func (h *DrugsHandler) parseListParams(r *http.Request) ports.DrugListParams {
	params := ports.DrugListParams{
		Page:      1,
		PageSize:  50,
		SortBy:    "updated",
		SortOrder: "desc",
	}

	q := r.URL.Query()

	if page := q.Get("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil && p > 0 {
			params.Page = p
		}
	}

	if limit := q.Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 {
			if l > 100 {
				params.PageSize = 100
			} else {
				params.PageSize = l
			}
		}
	}

	params.Search = q.Get("search")
	params.Status = q.Get("status")

	if storeID := q.Get("storeId"); storeID != "" {
		if id, err := strconv.ParseInt(storeID, 10, 64); err == nil && id > 0 {
			params.StoreID = id
		}
	}

	if days := q.Get("expiringInDays"); days != "" {
		if d, err := strconv.Atoi(days); err == nil && d > 0 {
			params.ExpiringInDay = d
		}
	}

	if sortBy := q.Get("sort"); sortBy != "" {
		params.SortBy = sortBy
	}
	if order := q.Get("order"); order == "asc" || order == "desc" {
		params.SortOrder = order
	}

	return params
}

// Helper methods

func (h *DrugsHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *DrugsHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// Request/Response DTOs

// DrugRequest represents the request body for creating or updating a drug
type DrugRequest struct {
	Name              string          `json:"name"`
	Brand             string          `json:"brand,omitempty"`
	Type              string          `json:"type,omitempty"`
	StockType         string          `json:"stockType,omitempty"`
	DoseQuantity      int64           `json:"doseQuantity"`
	Amount            int64           `json:"amount"`
	UnitCostPrice     decimal.Decimal `json:"unitCostPrice"`
	PurchasePrice     decimal.Decimal `json:"purchasePrice,omitempty"`
	SalesPrice        decimal.Decimal `json:"salesPrice"`
	RemainingQuantity int64           `json:"remainingQuantity,omitempty"`
	ManufacturedDate  *time.Time      `json:"manufacturedDate,omitempty"`
	ExpireDate        *time.Time      `json:"expireDate,omitempty"`
	Location          string          `json:"location,omitempty"`
	StoreID           int64           `json:"storeId,omitempty"`
}

// Validate validates the drug request
func (r *DrugRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.DoseQuantity <= 0 {
		return fmt.Errorf("doseQuantity must be positive")
	}
	if r.Amount < 0 {
		return fmt.Errorf("amount cannot be negative")
	}
	if r.RemainingQuantity < 0 {
		return fmt.Errorf("remainingQuantity cannot be negative")
	}
	if r.UnitCostPrice.IsNegative() {
		return fmt.Errorf("unitCostPrice cannot be negative")
	}
	if r.SalesPrice.IsNegative() {
		return fmt.Errorf("salesPrice cannot be negative")
	}
	return nil
}

// ToDomain converts the request to a domain model
func (r *DrugRequest) ToDomain() *domain.Drug {
	drug := &domain.Drug{
		Name:              r.Name,
		Brand:             r.Brand,
		Type:              r.Type,
		StockType:         domain.StockType(r.StockType),
		DoseQuantity:      r.DoseQuantity,
		Amount:            r.Amount,
		UnitCostPrice:     r.UnitCostPrice,
		PurchasePrice:     r.PurchasePrice,
		SalesPrice:        r.SalesPrice,
		RemainingQuantity: r.RemainingQuantity,
		Location:          r.Location,
		StoreID:           r.StoreID,
	}

	if r.ManufacturedDate != nil {
		drug.ManufacturedDate = *r.ManufacturedDate
	}
	if r.ExpireDate != nil {
		drug.ExpireDate = *r.ExpireDate
	}
	if drug.StockType == "" {
		drug.StockType = domain.StockOther
	}

	return drug
}
