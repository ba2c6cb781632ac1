// internal/core/ports/directory_repository.go
package ports

import (
	"context"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
)

// StoreRepository defines the persistence port for stores.
type StoreRepository interface {
	Save(ctx context.Context, store *domain.Store) error
	Update(ctx context.Context, store *domain.Store) error
	FindAll(ctx context.Context) ([]domain.Store, error)
	// FindByName returns (nil, nil) when no store matches.
	FindByName(ctx context.Context, storeName string) (*domain.Store, error)
	Delete(ctx context.Context, id int64) error
	// Summary counts stores per location.
	Summary(ctx context.Context) ([]LocationCount, error)
}

// StaffRepository defines the persistence port for staff records.
type StaffRepository interface {
	Save(ctx context.Context, staff *domain.Staff) error
	Update(ctx context.Context, staff *domain.Staff) error
	FindAll(ctx context.Context) ([]domain.Staff, error)
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context) (*StaffSummary, error)
}

// LocationCount is one bucket of a per-location grouping.
type LocationCount struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

// StaffSummary aggregates the staff directory for dashboards.
type StaffSummary struct {
	TotalStaff     int64           `json:"totalStaff"`
	TotalLocations int64           `json:"totalLocations"`
	LocationStats  []LocationCount `json:"locationStats"`
}
