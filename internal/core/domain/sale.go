// internal/core/domain/sale.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents a transaction that reduced a drug's remaining quantity.
// SalesPrice is the total amount charged for the whole transaction, not a
// per-unit price; UnitCostPrice is per unit.
type Sale struct {
	ID            int64           `json:"id"`
	DrugID        int64           `json:"drugstoreId"`
	DoseSold      int64           `json:"doseSold"`
	UnitCostPrice decimal.Decimal `json:"unitCostPrice"`
	SalesPrice    decimal.Decimal `json:"salesPrice"`
	Profit        decimal.Decimal `json:"profit"`
	Closed        bool            `json:"closed"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Validate performs domain validation on the sale record
func (s *Sale) Validate() error {
	if s.DrugID <= 0 {
		return fmt.Errorf("drugstoreId is required")
	}
	if s.DoseSold <= 0 {
		return fmt.Errorf("doseSold must be positive")
	}
	if !s.SalesPrice.IsPositive() {
		return fmt.Errorf("salesPrice must be positive")
	}
	if s.UnitCostPrice.IsNegative() {
		return fmt.Errorf("unitCostPrice cannot be negative")
	}
	return nil
}

// ComputeProfit sets Profit = SalesPrice - UnitCostPrice*DoseSold.
func (s *Sale) ComputeProfit() {
	cost := s.UnitCostPrice.Mul(decimal.NewFromInt(s.DoseSold))
	s.Profit = s.SalesPrice.Sub(cost)
}

// DoseDifference returns the stock delta a change to newDose would require:
// positive means additional stock must be taken, negative means stock returns.
func (s *Sale) DoseDifference(newDose int64) int64 {
	return newDose - s.DoseSold
}

// SaleWithDrug is a sale joined with display fields of the drug it references.
type SaleWithDrug struct {
	Sale
	DrugName     string `json:"drugName"`
	DoseQuantity int64  `json:"doseQuantity"`
}
