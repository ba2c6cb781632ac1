// internal/core/ports/drug_service.go
package ports

import (
	"context"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
)

// DrugService defines the application service port for the drug catalogue.
type DrugService interface {
	SaveDrug(ctx context.Context, drug *domain.Drug) error
	GetByID(ctx context.Context, id int64) (*domain.Drug, error)
	UpdateDrug(ctx context.Context, id int64, drug *domain.Drug) error
	DeleteDrug(ctx context.Context, id int64) error
	List(ctx context.Context, params DrugListParams) (*DrugListResult, error)
}

// DrugListParams holds pagination and filters for listing drugs.
type DrugListParams struct {
	Search        string
	Status        string
	StoreID       int64
	ExpiringInDay int
	SortBy        string
	SortOrder     string
	Page          int
	PageSize      int
}

// DrugListResult holds one page of the drug catalogue.
type DrugListResult struct {
	Drugs      []*domain.Drug `json:"drugs"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalCount int64          `json:"totalCount"`
	TotalPages int            `json:"totalPages"`
}
