// internal/core/ports/sale_repository.go
package ports

import (
	"context"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
)

// SaleRepository persists sales and keeps drug stock consistent with them.
// Every mutating operation pairs the sale write with the matching stock
// adjustment in one transaction: both commit or neither does. The stock
// decrement is a conditional update guarded on remaining_quantity, so a
// concurrent sale can never drive stock negative.
type SaleRepository interface {
	// Record inserts the sale and decrements the referenced drug's
	// remaining quantity by DoseSold. Returns domain.ErrDrugNotFound if the
	// drug is missing and domain.ErrInsufficientStock if the guard fails.
	Record(ctx context.Context, sale *domain.Sale) error

	// Update rewrites the sale row and shifts stock by doseDiff: a positive
	// difference takes additional stock (guarded), a negative one returns it.
	Update(ctx context.Context, sale *domain.Sale, doseDiff int64) error

	// Delete removes the sale and restores its DoseSold to the drug.
	Delete(ctx context.Context, saleID int64) error

	// FindByID returns (nil, nil) when no sale matches.
	FindByID(ctx context.Context, saleID int64) (*domain.Sale, error)
	FindAllWithDrug(ctx context.Context) ([]domain.SaleWithDrug, error)
	Count(ctx context.Context) (int64, error)
}
