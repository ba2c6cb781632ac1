// internal/handlers/stores.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
)

// StoresHandler handles store directory HTTP requests
type StoresHandler struct {
	stores ports.StoreRepository
	logger *slog.Logger
}

// NewStoresHandler creates a new stores handler
func NewStoresHandler(stores ports.StoreRepository, logger *slog.Logger) *StoresHandler {
	return &StoresHandler{
		stores: stores,
		logger: logger.With(slog.String("handler", "stores")),
	}
}

// CreateStore handles POST /api/v1/stores
func (h *StoresHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var store domain.Store
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&store); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := store.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.stores.Save(ctx, &store); err != nil {
		h.logger.ErrorContext(ctx, "failed to create store",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to create store")
		return
	}

	h.logger.InfoContext(ctx, "store created",
		slog.Int64("store_id", store.ID),
		slog.String("store_name", store.StoreName))

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Store created successfully",
		"store":   store,
	})
}

// ListStores handles GET /api/v1/stores
func (h *StoresHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stores, err := h.stores.FindAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list stores",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list stores")
		return
	}

	if stores == nil {
		stores = []domain.Store{}
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"stores": stores})
}

// UpdateStore handles PUT /api/v1/stores/{id}
func (h *StoresHandler) UpdateStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	storeID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid store ID format")
		return
	}

	var store domain.Store
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&store); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	store.ID = storeID

	if err := store.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.stores.Update(ctx, &store); err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			h.respondError(w, http.StatusNotFound, "Store not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to update store",
			slog.Int64("store_id", storeID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to update store")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Store updated successfully",
		"store":   store,
	})
}

// DeleteStore handles DELETE /api/v1/stores/{id}
func (h *StoresHandler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	storeID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid store ID format")
		return
	}

	if err := h.stores.Delete(ctx, storeID); err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			h.respondError(w, http.StatusNotFound, "Store not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete store",
			slog.Int64("store_id", storeID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to delete store")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Store deleted successfully",
		"storeId": storeID,
	})
}

// GetSummary handles GET /api/v1/stores/summary
func (h *StoresHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.stores.Summary(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load store summary",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to load store summary")
		return
	}

	if summary == nil {
		summary = []ports.LocationCount{}
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"locations": summary})
}

// Helper methods

func (h *StoresHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *StoresHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
