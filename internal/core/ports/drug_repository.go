// internal/core/ports/drug_repository.go
package ports

import (
	"context"
	"time"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
)

// DrugRepository defines the persistence port for the drug catalogue.
// This interface is implemented by the database adapter.
type DrugRepository interface {
	Save(ctx context.Context, drug *domain.Drug) error
	Update(ctx context.Context, drug *domain.Drug) error
	// FindByID returns (nil, nil) when no drug matches.
	FindByID(ctx context.Context, id int64) (*domain.Drug, error)
	FindAll(ctx context.Context, params DrugQueryParams) ([]*domain.Drug, int64, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)

	// MarkExpired flags drugs whose expiry date has passed and returns how
	// many rows changed. Used by the periodic expiry sweep.
	MarkExpired(ctx context.Context, asOf time.Time) (int64, error)
	// MarkOutOfStock flags available drugs whose remaining quantity is zero.
	MarkOutOfStock(ctx context.Context) (int64, error)
}

// DrugQueryParams holds filters for listing the drug catalogue.
type DrugQueryParams struct {
	Search         string
	Status         domain.DrugStatus
	StoreID        int64
	ExpiringBefore *time.Time
	SortBy         string
	SortOrder      string
	Limit          int
	Offset         int
}
