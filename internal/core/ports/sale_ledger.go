// internal/core/ports/sale_ledger.go
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
)

// SaleLedger is the application service port for recording sales against
// drug stock. Implementations guarantee that a sale and its inventory
// adjustment land together or not at all.
type SaleLedger interface {
	RecordSale(ctx context.Context, in RecordSaleInput) (*domain.Sale, error)
	UpdateSale(ctx context.Context, in UpdateSaleInput) (*domain.Sale, error)
	DeleteSale(ctx context.Context, saleID int64) error
	ListSales(ctx context.Context) ([]domain.SaleWithDrug, error)
}

// RecordSaleInput carries the validated fields for a new sale.
// SalesPrice is the total charged for the transaction.
type RecordSaleInput struct {
	DrugID        int64
	DoseSold      int64
	UnitCostPrice decimal.Decimal
	SalesPrice    decimal.Decimal
	Closed        bool
}

// UpdateSaleInput carries the replacement fields for an existing sale.
// A nil Closed leaves the stored flag unchanged.
type UpdateSaleInput struct {
	SaleID        int64
	DoseSold      int64
	UnitCostPrice decimal.Decimal
	SalesPrice    decimal.Decimal
	Closed        *bool
}
