// internal/core/services/drugs.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
)

// DrugService handles drug catalogue business logic
type DrugService struct {
	repo   ports.DrugRepository
	logger *slog.Logger
}

// Statically assert that *DrugService implements the DrugService port.
var _ ports.DrugService = (*DrugService)(nil)

// NewDrugService creates a new drug service
func NewDrugService(repo ports.DrugRepository, logger *slog.Logger) *DrugService {
	return &DrugService{
		repo:   repo,
		logger: logger.With(slog.String("service", "drugs")),
	}
}

// SaveDrug validates and persists a new drug record
func (s *DrugService) SaveDrug(ctx context.Context, drug *domain.Drug) error {
	if err := drug.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	drug.PrepareForStorage()
	drug.RefreshStatus(time.Now())

	if err := s.repo.Save(ctx, drug); err != nil {
		return fmt.Errorf("failed to save drug: %w", err)
	}

	s.logger.InfoContext(ctx, "drug saved",
		slog.Int64("drug_id", drug.ID),
		slog.String("name", drug.Name),
		slog.Int64("remaining_quantity", drug.RemainingQuantity))

	return nil
}

// GetByID retrieves a drug by ID
func (s *DrugService) GetByID(ctx context.Context, id int64) (*domain.Drug, error) {
	drug, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get drug: %w", err)
	}
	if drug == nil {
		return nil, domain.ErrDrugNotFound
	}
	return drug, nil
}

// UpdateDrug updates an existing drug record
func (s *DrugService) UpdateDrug(ctx context.Context, id int64, drug *domain.Drug) error {
	drug.ID = id

	if err := drug.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	drug.RefreshStatus(time.Now())
	drug.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, drug); err != nil {
		return fmt.Errorf("failed to update drug: %w", err)
	}

	s.logger.InfoContext(ctx, "drug updated", slog.Int64("drug_id", id))
	return nil
}

// DeleteDrug removes a drug record
func (s *DrugService) DeleteDrug(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check drug existence: %w", err)
	}
	if !exists {
		return domain.ErrDrugNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete drug: %w", err)
	}

	s.logger.InfoContext(ctx, "drug deleted", slog.Int64("drug_id", id))
	return nil
}

// List retrieves drugs with filtering and pagination
func (s *DrugService) List(ctx context.Context, params ports.DrugListParams) (*ports.DrugListResult, error) {
	query := ports.DrugQueryParams{
		Search:    params.Search,
		Status:    domain.DrugStatus(params.Status),
		StoreID:   params.StoreID,
		SortBy:    params.SortBy,
		SortOrder: params.SortOrder,
		Limit:     params.PageSize,
		Offset:    (params.Page - 1) * params.PageSize,
	}
	if params.ExpiringInDay > 0 {
		cutoff := time.Now().AddDate(0, 0, params.ExpiringInDay)
		query.ExpiringBefore = &cutoff
	}

	drugs, totalCount, err := s.repo.FindAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list drugs: %w", err)
	}

	var totalPages int
	if params.PageSize > 0 {
		totalPages = int(totalCount) / params.PageSize
		if int(totalCount)%params.PageSize > 0 {
			totalPages++
		}
	}

	return &ports.DrugListResult{
		Drugs:      drugs,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}, nil
}
