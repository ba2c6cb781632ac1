// internal/handlers/export.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"

	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
	"github.com/adesina-labs/pharmhub-be/internal/workers"
)

// ExportHandler serves the synchronous sales workbook download and the
// async report pipeline backed by asynq.
type ExportHandler struct {
	ledger      ports.SaleLedger
	db          ports.Database
	asynqClient *asynq.Client
	logger      *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(ledger ports.SaleLedger, db ports.Database, asynqClient *asynq.Client, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		ledger:      ledger,
		db:          db,
		asynqClient: asynqClient,
		logger:      logger.With(slog.String("handler", "export")),
	}
}

// ExportSalesExcel handles GET /api/v1/export/sales.xlsx
func (h *ExportHandler) ExportSalesExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sales, err := h.ledger.ListSales(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load sales for export",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve data")
		return
	}

	file := workers.BuildSalesWorkbook(sales)
	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		h.logger.ErrorContext(ctx, "failed to generate workbook",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("sales_export_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.ErrorContext(ctx, "failed to write Excel response",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "sales export completed",
		slog.Int("total_rows", len(sales)),
		slog.String("filename", filename))
}

// RequestSalesReport handles POST /api/v1/reports/sales
func (h *ExportHandler) RequestSalesReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ReportRequest
	if r.ContentLength > 0 {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	jobID := uuid.New().String()

	if err := h.insertJob(ctx, jobID, workers.TypeSalesReport); err != nil {
		h.logger.ErrorContext(ctx, "failed to create report job",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to queue report")
		return
	}

	payload := workers.SalesReportPayload{
		JobID:      jobID,
		CustomerID: req.CustomerID,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to queue report")
		return
	}

	task := asynq.NewTask(workers.TypeSalesReport, b)
	info, err := h.asynqClient.Enqueue(task,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Retention(24*time.Hour))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to enqueue report task",
			slog.String("job_id", jobID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to queue report")
		return
	}

	h.logger.InfoContext(ctx, "sales report queued",
		slog.String("job_id", jobID),
		slog.String("task_id", info.ID))

	h.respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"message":   "Report queued successfully",
		"jobId":     jobID,
		"statusUrl": fmt.Sprintf("/api/v1/reports/status/%s", jobID),
	})
}

// GetReportStatus handles GET /api/v1/reports/status/{id}
func (h *ExportHandler) GetReportStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jobID := r.PathValue("id")
	if _, err := uuid.Parse(jobID); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	var status ReportStatusResponse
	var result, errMsg *string
	err := h.db.QueryRow(ctx, `
		SELECT id, type, status, result, error, created_at, completed_at
		FROM async_jobs
		WHERE id = $1`, jobID).Scan(
		&status.JobID,
		&status.Type,
		&status.Status,
		&result,
		&errMsg,
		&status.CreatedAt,
		&status.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			h.respondError(w, http.StatusNotFound, "Job not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to load job status",
			slog.String("job_id", jobID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to load job status")
		return
	}

	if result != nil {
		status.Result = json.RawMessage(*result)
	}
	status.Error = errMsg

	h.respondJSON(w, http.StatusOK, status)
}

func (h *ExportHandler) insertJob(ctx context.Context, jobID, jobType string) error {
	query := `
		INSERT INTO async_jobs (id, type, status, created_at, updated_at)
		VALUES ($1, $2, 'queued', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`

	_, err := h.db.Exec(ctx, query, jobID, jobType)
	return err
}

// Helper methods

func (h *ExportHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *ExportHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// Request/Response DTOs

// ReportRequest carries optional scoping for an async report.
type ReportRequest struct {
	CustomerID int64 `json:"customerId,omitempty"`
}

// ReportStatusResponse mirrors an async_jobs row.
type ReportStatusResponse struct {
	JobID       string          `json:"jobId"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	Result      json.RawMessage `json:"result,omitempty"`
	Error       *string         `json:"error,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
}
