// internal/core/domain/drug.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DrugStatus represents the stock status of a drug
type DrugStatus string

// Status constants
const (
	StatusAvailable  DrugStatus = "AVAILABLE"
	StatusOutOfStock DrugStatus = "OUT_OF_STOCK"
	StatusExpired    DrugStatus = "EXPIRED"
)

// StockType represents the physical form a drug is stocked in
type StockType string

// Stock type constants
const (
	StockTablet    StockType = "tablet"
	StockCapsule   StockType = "capsule"
	StockSyrup     StockType = "syrup"
	StockInjection StockType = "injection"
	StockCream     StockType = "cream"
	StockDrops     StockType = "drops"
	StockOther     StockType = "other"
)

// Drug represents one stocked product at one store.
// RemainingQuantity is the stock-on-hand counter the sale ledger
// keeps non-negative and consistent with sale history.
type Drug struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Brand             string          `json:"brand"`
	Type              string          `json:"type"`
	StockType         StockType       `json:"stockType"`
	DoseQuantity      int64           `json:"doseQuantity"`
	Amount            int64           `json:"amount"`
	UnitCostPrice     decimal.Decimal `json:"unitCostPrice"`
	PurchasePrice     decimal.Decimal `json:"purchasePrice"`
	SalesPrice        decimal.Decimal `json:"salesPrice"`
	RemainingQuantity int64           `json:"remainingQuantity"`
	ManufacturedDate  time.Time       `json:"manufacturedDate"`
	ExpireDate        time.Time       `json:"expireDate"`
	Location          string          `json:"location,omitempty"`
	StoreID           int64           `json:"storeId"`
	Status            DrugStatus      `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// Validate performs domain validation on the drug record
func (d *Drug) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if d.DoseQuantity <= 0 {
		return fmt.Errorf("doseQuantity must be positive")
	}
	if d.Amount < 0 {
		return fmt.Errorf("amount cannot be negative")
	}
	if d.RemainingQuantity < 0 {
		return fmt.Errorf("remainingQuantity cannot be negative")
	}
	if d.UnitCostPrice.IsNegative() {
		return fmt.Errorf("unitCostPrice cannot be negative")
	}
	if d.SalesPrice.IsNegative() {
		return fmt.Errorf("salesPrice cannot be negative")
	}
	if !d.ExpireDate.IsZero() && !d.ManufacturedDate.IsZero() && d.ExpireDate.Before(d.ManufacturedDate) {
		return fmt.Errorf("expireDate cannot precede manufacturedDate")
	}
	if d.StockType == "" {
		d.StockType = StockOther
	}
	return nil
}

// IsExpired reports whether the drug is past its expiry date at the given time.
func (d *Drug) IsExpired(at time.Time) bool {
	return !d.ExpireDate.IsZero() && d.ExpireDate.Before(at)
}

// PrepareForStorage fills derived fields before the first insert.
// A fresh record starts with the full packaged quantity on hand.
func (d *Drug) PrepareForStorage() {
	if d.RemainingQuantity == 0 && d.Amount > 0 {
		d.RemainingQuantity = d.Amount * d.DoseQuantity
	}

	if d.Status == "" {
		d.Status = StatusAvailable
	}

	now := time.Now()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
}

// RefreshStatus recomputes Status from expiry and remaining stock.
// Expiry wins over stock level.
func (d *Drug) RefreshStatus(now time.Time) {
	switch {
	case d.IsExpired(now):
		d.Status = StatusExpired
	case d.RemainingQuantity <= 0:
		d.Status = StatusOutOfStock
	default:
		d.Status = StatusAvailable
	}
}
