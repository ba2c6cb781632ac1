// internal/workers/report_processor.go
package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/tealeg/xlsx/v3"

	"github.com/adesina-labs/pharmhub-be/internal/adapters/storage"
	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
)

// SalesReportResult is stored on the job row once generation finishes.
type SalesReportResult struct {
	Key            string `json:"key"`
	URL            string `json:"url"`
	Rows           int    `json:"rows"`
	ProcessingTime string `json:"processing_time"`
}

// ReportProcessor generates sales workbooks and uploads them to object storage.
type ReportProcessor struct {
	ledger ports.SaleLedger
	db     ports.Database
	store  storage.ReportStore
	logger *slog.Logger
}

// NewReportProcessor creates a new report processor
func NewReportProcessor(ledger ports.SaleLedger, db ports.Database, store storage.ReportStore, logger *slog.Logger) *ReportProcessor {
	return &ReportProcessor{
		ledger: ledger,
		db:     db,
		store:  store,
		logger: logger.With(slog.String("processor", "report")),
	}
}

// ProcessSalesReport handles report:sales tasks
func (p *ReportProcessor) ProcessSalesReport(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	var payload SalesReportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	p.logger.InfoContext(ctx, "generating sales report",
		slog.String("job_id", payload.JobID))

	_ = p.updateJobStatus(ctx, payload.JobID, "processing", nil)

	sales, err := p.ledger.ListSales(ctx)
	if err != nil {
		errMsg := fmt.Sprintf("failed to load sales: %v", err)
		_ = p.updateJobStatus(ctx, payload.JobID, "failed", &errMsg)
		return fmt.Errorf("failed to load sales: %w", err)
	}

	file := BuildSalesWorkbook(sales)
	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		errMsg := fmt.Sprintf("failed to write workbook: %v", err)
		_ = p.updateJobStatus(ctx, payload.JobID, "failed", &errMsg)
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	fileName := fmt.Sprintf("sales_%s.xlsx", time.Now().Format("20060102_150405"))
	key := storage.ReportKey(payload.CustomerID, "sales", fileName)

	if _, err := p.store.Upload(ctx, key, &buf, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"); err != nil {
		errMsg := fmt.Sprintf("failed to upload report: %v", err)
		_ = p.updateJobStatus(ctx, payload.JobID, "failed", &errMsg)
		return fmt.Errorf("failed to upload report: %w", err)
	}

	url, err := p.store.GetPresignedURL(ctx, key, 24*time.Hour)
	if err != nil {
		p.logger.WarnContext(ctx, "failed to presign report URL",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	result := SalesReportResult{
		Key:            key,
		URL:            url,
		Rows:           len(sales),
		ProcessingTime: time.Since(start).String(),
	}
	resultJSON, _ := json.Marshal(result)
	_ = p.updateJobStatusWithResult(ctx, payload.JobID, "completed", resultJSON)

	p.logger.InfoContext(ctx, "sales report completed",
		slog.String("job_id", payload.JobID),
		slog.String("key", key),
		slog.Int("rows", len(sales)))

	return nil
}

// BuildSalesWorkbook renders sales rows into a single-sheet workbook.
func BuildSalesWorkbook(sales []domain.SaleWithDrug) *xlsx.File {
	file := xlsx.NewFile()
	sheet, _ := file.AddSheet("Sales")

	headers := []string{
		"Sale ID", "Drug", "Dose Sold", "Unit Cost Price",
		"Sales Price", "Profit", "Closed", "Sold At",
	}
	headerRow := sheet.AddRow()
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, sale := range sales {
		row := sheet.AddRow()
		row.AddCell().SetInt64(sale.ID)
		row.AddCell().Value = sale.DrugName
		row.AddCell().SetInt64(sale.DoseSold)
		row.AddCell().Value = sale.UnitCostPrice.StringFixed(2)
		row.AddCell().Value = sale.SalesPrice.StringFixed(2)
		row.AddCell().Value = sale.Profit.StringFixed(2)
		if sale.Closed {
			row.AddCell().Value = "Yes"
		} else {
			row.AddCell().Value = "No"
		}
		row.AddCell().Value = sale.CreatedAt.Format("2006-01-02 15:04:05")
	}

	for i := range headers {
		sheet.SetColWidth(i, i, 15)
	}

	return file
}

func (p *ReportProcessor) updateJobStatus(ctx context.Context, jobID string, status string, errorMsg *string) error {
	query := `
		UPDATE async_jobs
		SET status = $2, error = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`

	_, err := p.db.Exec(ctx, query, jobID, status, errorMsg)
	return err
}

func (p *ReportProcessor) updateJobStatusWithResult(ctx context.Context, jobID string, status string, result json.RawMessage) error {
	query := `
		UPDATE async_jobs
		SET status = $2, result = $3, completed_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`

	_, err := p.db.Exec(ctx, query, jobID, status, result)
	return err
}
