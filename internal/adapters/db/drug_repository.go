// internal/adapters/db/drug_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
)

// drugRepository implements ports.DrugRepository
type drugRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewDrugRepository creates a new drug repository
func NewDrugRepository(db *Database, logger *slog.Logger) ports.DrugRepository {
	return &drugRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "drugs")),
	}
}

const drugColumns = `
	id, name, brand, type, stock_type, dose_quantity, amount,
	unit_cost_price, purchase_price, sales_price, remaining_quantity,
	manufactured_date, expire_date, location, store_id, status,
	created_at, updated_at
`

func scanDrug(row pgx.Row) (*domain.Drug, error) {
	d := &domain.Drug{}
	err := row.Scan(
		&d.ID, &d.Name, &d.Brand, &d.Type, &d.StockType, &d.DoseQuantity, &d.Amount,
		&d.UnitCostPrice, &d.PurchasePrice, &d.SalesPrice, &d.RemainingQuantity,
		&d.ManufacturedDate, &d.ExpireDate, &d.Location, &d.StoreID, &d.Status,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Save creates a new drug record
func (r *drugRepository) Save(ctx context.Context, drug *domain.Drug) error {
	query := `
		INSERT INTO drugs (
			name, brand, type, stock_type, dose_quantity, amount,
			unit_cost_price, purchase_price, sales_price, remaining_quantity,
			manufactured_date, expire_date, location, store_id, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		drug.Name, drug.Brand, drug.Type, drug.StockType, drug.DoseQuantity, drug.Amount,
		drug.UnitCostPrice, drug.PurchasePrice, drug.SalesPrice, drug.RemainingQuantity,
		drug.ManufacturedDate, drug.ExpireDate, drug.Location, drug.StoreID, drug.Status,
	).Scan(&drug.ID, &drug.CreatedAt, &drug.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to save drug: %w", err)
	}

	r.logger.DebugContext(ctx, "drug saved",
		slog.Int64("drug_id", drug.ID),
		slog.String("name", drug.Name))

	return nil
}

// Update updates an existing drug record
func (r *drugRepository) Update(ctx context.Context, drug *domain.Drug) error {
	query := `
		UPDATE drugs SET
			name = $2, brand = $3, type = $4, stock_type = $5,
			dose_quantity = $6, amount = $7, unit_cost_price = $8,
			purchase_price = $9, sales_price = $10, remaining_quantity = $11,
			manufactured_date = $12, expire_date = $13, location = $14,
			store_id = $15, status = $16, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		drug.ID, drug.Name, drug.Brand, drug.Type, drug.StockType,
		drug.DoseQuantity, drug.Amount, drug.UnitCostPrice,
		drug.PurchasePrice, drug.SalesPrice, drug.RemainingQuantity,
		drug.ManufacturedDate, drug.ExpireDate, drug.Location,
		drug.StoreID, drug.Status,
	).Scan(&drug.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrDrugNotFound
		}
		return fmt.Errorf("failed to update drug: %w", err)
	}

	r.logger.DebugContext(ctx, "drug updated", slog.Int64("drug_id", drug.ID))
	return nil
}

// FindByID retrieves a drug by ID, returning (nil, nil) on a miss
func (r *drugRepository) FindByID(ctx context.Context, id int64) (*domain.Drug, error) {
	query := `SELECT` + drugColumns + `FROM drugs WHERE id = $1`

	drug, err := scanDrug(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find drug: %w", err)
	}
	return drug, nil
}

// FindAll retrieves drugs with filtering and pagination
func (r *drugRepository) FindAll(ctx context.Context, params ports.DrugQueryParams) ([]*domain.Drug, int64, error) {
	applyFilters := func(qb squirrel.SelectBuilder) squirrel.SelectBuilder {
		if params.Search != "" {
			pattern := "%" + params.Search + "%"
			qb = qb.Where(squirrel.Or{
				squirrel.ILike{"name": pattern},
				squirrel.ILike{"brand": pattern},
				squirrel.ILike{"type": pattern},
			})
		}
		if params.Status != "" {
			qb = qb.Where(squirrel.Eq{"status": params.Status})
		}
		if params.StoreID > 0 {
			qb = qb.Where(squirrel.Eq{"store_id": params.StoreID})
		}
		if params.ExpiringBefore != nil {
			qb = qb.Where(squirrel.LtOrEq{"expire_date": *params.ExpiringBefore})
		}
		return qb
	}

	qb := applyFilters(squirrel.Select(
		"id", "name", "brand", "type", "stock_type", "dose_quantity", "amount",
		"unit_cost_price", "purchase_price", "sales_price", "remaining_quantity",
		"manufactured_date", "expire_date", "location", "store_id", "status",
		"created_at", "updated_at",
	).From("drugs").
		PlaceholderFormat(squirrel.Dollar))

	// Count total rows before pagination, same filters
	countSQL, countArgs, err := applyFilters(squirrel.Select("COUNT(*)").
		From("drugs").
		PlaceholderFormat(squirrel.Dollar)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count drugs: %w", err)
	}

	orderBy := "created_at DESC"
	if params.SortBy != "" {
		direction := "ASC"
		if params.SortOrder == "desc" {
			direction = "DESC"
		}

		switch params.SortBy {
		case "name":
			orderBy = fmt.Sprintf("name %s", direction)
		case "expire_date":
			orderBy = fmt.Sprintf("expire_date %s", direction)
		case "remaining_quantity":
			orderBy = fmt.Sprintf("remaining_quantity %s", direction)
		case "updated":
			orderBy = fmt.Sprintf("updated_at %s", direction)
		default:
			orderBy = fmt.Sprintf("created_at %s", direction)
		}
	}
	qb = qb.OrderBy(orderBy)

	if params.Limit > 0 {
		qb = qb.Limit(uint64(params.Limit))
	}
	if params.Offset > 0 {
		qb = qb.Offset(uint64(params.Offset))
	}

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query drugs: %w", err)
	}
	defer rows.Close()

	var drugs []*domain.Drug
	for rows.Next() {
		drug, err := scanDrug(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan drug: %w", err)
		}
		drugs = append(drugs, drug)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return drugs, totalCount, nil
}

// Delete removes a drug record
func (r *drugRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM drugs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete drug: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrDrugNotFound
	}

	r.logger.InfoContext(ctx, "drug deleted", slog.Int64("drug_id", id))
	return nil
}

// Exists checks if a drug exists
func (r *drugRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM drugs WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return exists, nil
}

// Count returns the total number of drugs
func (r *drugRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM drugs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count drugs: %w", err)
	}
	return count, nil
}

// MarkExpired flags drugs whose expiry date has passed
func (r *drugRepository) MarkExpired(ctx context.Context, asOf time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE drugs
		SET status = $1, updated_at = NOW()
		WHERE expire_date > '0001-01-01' AND expire_date <= $2 AND status != $1`,
		domain.StatusExpired, asOf)
	if err != nil {
		return 0, fmt.Errorf("failed to mark expired drugs: %w", err)
	}

	if tag.RowsAffected() > 0 {
		r.logger.InfoContext(ctx, "drugs marked expired",
			slog.Int64("count", tag.RowsAffected()))
	}

	return tag.RowsAffected(), nil
}

// MarkOutOfStock flags available drugs whose remaining quantity reached zero
func (r *drugRepository) MarkOutOfStock(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE drugs
		SET status = $1, updated_at = NOW()
		WHERE remaining_quantity = 0 AND status = $2`,
		domain.StatusOutOfStock, domain.StatusAvailable)
	if err != nil {
		return 0, fmt.Errorf("failed to mark out-of-stock drugs: %w", err)
	}

	if tag.RowsAffected() > 0 {
		r.logger.InfoContext(ctx, "drugs marked out of stock",
			slog.Int64("count", tag.RowsAffected()))
	}

	return tag.RowsAffected(), nil
}
