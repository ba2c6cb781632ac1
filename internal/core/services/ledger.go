// internal/core/services/ledger.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
)

// SaleLedger keeps sales and drug stock consistent: recording a sale takes
// doses from the drug, editing a sale shifts stock by the dose difference,
// deleting a sale restores what it took. The paired writes are atomic at the
// repository, so the invariant remaining_quantity >= 0 holds even under
// concurrent sales of the same drug.
type SaleLedger struct {
	sales  ports.SaleRepository
	logger *slog.Logger
}

// Statically assert that *SaleLedger implements the SaleLedger port.
var _ ports.SaleLedger = (*SaleLedger)(nil)

// NewSaleLedger creates a new sale ledger service
func NewSaleLedger(sales ports.SaleRepository, logger *slog.Logger) *SaleLedger {
	return &SaleLedger{
		sales:  sales,
		logger: logger.With(slog.String("service", "sale_ledger")),
	}
}

// RecordSale validates the input, computes profit and persists the sale
// together with the stock decrement.
func (l *SaleLedger) RecordSale(ctx context.Context, in ports.RecordSaleInput) (*domain.Sale, error) {
	sale := &domain.Sale{
		DrugID:        in.DrugID,
		DoseSold:      in.DoseSold,
		UnitCostPrice: in.UnitCostPrice,
		SalesPrice:    in.SalesPrice,
		Closed:        in.Closed,
	}

	if err := sale.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	sale.ComputeProfit()

	if err := l.sales.Record(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	l.logger.InfoContext(ctx, "sale recorded",
		slog.Int64("sale_id", sale.ID),
		slog.Int64("drug_id", sale.DrugID),
		slog.Int64("dose_sold", sale.DoseSold),
		slog.String("profit", sale.Profit.String()))

	return sale, nil
}

// UpdateSale replaces the sale's figures and shifts stock by the dose
// difference against the stored record.
func (l *SaleLedger) UpdateSale(ctx context.Context, in ports.UpdateSaleInput) (*domain.Sale, error) {
	existing, err := l.sales.FindByID(ctx, in.SaleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sale: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrSaleNotFound
	}

	sale := &domain.Sale{
		ID:            existing.ID,
		DrugID:        existing.DrugID,
		DoseSold:      in.DoseSold,
		UnitCostPrice: in.UnitCostPrice,
		SalesPrice:    in.SalesPrice,
		Closed:        existing.Closed,
		CreatedAt:     existing.CreatedAt,
	}
	if in.Closed != nil {
		sale.Closed = *in.Closed
	}

	if err := sale.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	sale.ComputeProfit()

	doseDiff := existing.DoseDifference(in.DoseSold)
	if err := l.sales.Update(ctx, sale, doseDiff); err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	l.logger.InfoContext(ctx, "sale updated",
		slog.Int64("sale_id", sale.ID),
		slog.Int64("dose_difference", doseDiff))

	return sale, nil
}

// DeleteSale removes the sale and returns its doses to the drug's stock.
func (l *SaleLedger) DeleteSale(ctx context.Context, saleID int64) error {
	if err := l.sales.Delete(ctx, saleID); err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}

	l.logger.InfoContext(ctx, "sale deleted and stock restored",
		slog.Int64("sale_id", saleID))

	return nil
}

// ListSales returns all sales joined with drug display fields, newest first.
func (l *SaleLedger) ListSales(ctx context.Context) ([]domain.SaleWithDrug, error) {
	sales, err := l.sales.FindAllWithDrug(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}
