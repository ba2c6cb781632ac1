// internal/handlers/staff.go
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

// StaffHandler handles staff directory HTTP requests
type StaffHandler struct {
	staff  ports.StaffRepository
	logger *slog.Logger
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staff ports.StaffRepository, logger *slog.Logger) *StaffHandler {
	return &StaffHandler{
		staff:  staff,
		logger: logger.With(slog.String("handler", "staff")),
	}
}

// CreateStaff handles POST /api/v1/staff
func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var member domain.Staff
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&member); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := member.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.staff.Save(ctx, &member); err != nil {
		h.logger.ErrorContext(ctx, "failed to create staff",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to create staff")
		return
	}

	h.logger.InfoContext(ctx, "staff created",
		slog.Int64("staff_id", member.ID),
		slog.String("staff_name", member.StaffName))

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Staff created successfully",
		"staff":   member,
	})
}

// ListStaff handles GET /api/v1/staff
func (h *StaffHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	members, err := h.staff.FindAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list staff",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list staff")
		return
	}

	if members == nil {
		members = []domain.Staff{}
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"staff": members})
}

// UpdateStaff handles PUT /api/v1/staff/{id}
func (h *StaffHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	staffID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	var member domain.Staff
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&member); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	member.ID = staffID

	if err := member.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.staff.Update(ctx, &member); err != nil {
		if errors.Is(err, domain.ErrStaffNotFound) {
			h.respondError(w, http.StatusNotFound, "Staff not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to update staff",
			slog.Int64("staff_id", staffID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to update staff")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Staff updated successfully",
		"staff":   member,
	})
}

// DeleteStaff handles DELETE /api/v1/staff/{id}
func (h *StaffHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	staffID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	if err := h.staff.Delete(ctx, staffID); err != nil {
		if errors.Is(err, domain.ErrStaffNotFound) {
			h.respondError(w, http.StatusNotFound, "Staff not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete staff",
			slog.Int64("staff_id", staffID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to delete staff")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Staff deleted successfully",
		"staffId": staffID,
	})
}

// GetSummary handles GET /api/v1/staff/summary
func (h *StaffHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.staff.Summary(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load staff summary",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to load staff summary")
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}

// Helper methods

func (h *StaffHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *StaffHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
