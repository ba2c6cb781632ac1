// internal/adapters/db/store_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
)

// storeRepository implements ports.StoreRepository
type storeRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *Database, logger *slog.Logger) ports.StoreRepository {
	return &storeRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "stores")),
	}
}

// Save creates a new store
func (r *storeRepository) Save(ctx context.Context, store *domain.Store) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO stores (store_name, location, customer_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		store.StoreName, store.Location, store.CustomerID,
	).Scan(&store.ID, &store.CreatedAt, &store.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}

	r.logger.DebugContext(ctx, "store saved",
		slog.Int64("store_id", store.ID),
		slog.String("store_name", store.StoreName))

	return nil
}

// Update updates an existing store
func (r *storeRepository) Update(ctx context.Context, store *domain.Store) error {
	err := r.db.QueryRow(ctx, `
		UPDATE stores
		SET store_name = $2, location = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		store.ID, store.StoreName, store.Location,
	).Scan(&store.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrStoreNotFound
		}
		return fmt.Errorf("failed to update store: %w", err)
	}

	return nil
}

// FindAll retrieves all stores
func (r *storeRepository) FindAll(ctx context.Context) ([]domain.Store, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, store_name, location, customer_id, created_at, updated_at
		FROM stores
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	defer rows.Close()

	var stores []domain.Store
	for rows.Next() {
		var s domain.Store
		err := rows.Scan(&s.ID, &s.StoreName, &s.Location, &s.CustomerID,
			&s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return stores, nil
}

// FindByName retrieves a store by name, returning (nil, nil) on a miss
func (r *storeRepository) FindByName(ctx context.Context, storeName string) (*domain.Store, error) {
	s := &domain.Store{}
	err := r.db.QueryRow(ctx, `
		SELECT id, store_name, location, customer_id, created_at, updated_at
		FROM stores
		WHERE store_name = $1`, storeName,
	).Scan(&s.ID, &s.StoreName, &s.Location, &s.CustomerID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find store: %w", err)
	}
	return s, nil
}

// Delete removes a store
func (r *storeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrStoreNotFound
	}

	r.logger.InfoContext(ctx, "store deleted", slog.Int64("store_id", id))
	return nil
}

// Summary counts stores per location
func (r *storeRepository) Summary(ctx context.Context) ([]ports.LocationCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT location, COUNT(*)
		FROM stores
		GROUP BY location
		ORDER BY COUNT(*) DESC, location ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query store summary: %w", err)
	}
	defer rows.Close()

	var counts []ports.LocationCount
	for rows.Next() {
		var c ports.LocationCount
		if err := rows.Scan(&c.Location, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan location count: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return counts, nil
}
