// internal/adapters/db/sale_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
)

// saleRepository implements ports.SaleRepository. Every mutating method runs
// the sale write and the paired stock adjustment inside one transaction. The
// decrement is guarded on remaining_quantity so concurrent sales of the same
// drug serialize on the row and the quantity can never go negative.
type saleRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *Database, logger *slog.Logger) ports.SaleRepository {
	return &saleRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "sales")),
	}
}

// takeStock decrements a drug's remaining quantity inside tx, distinguishing
// a missing drug from an insufficient balance.
func (r *saleRepository) takeStock(ctx context.Context, tx pgx.Tx, drugID, doses int64) error {
	tag, err := tx.Exec(ctx, `
		UPDATE drugs
		SET remaining_quantity = remaining_quantity - $2, updated_at = NOW()
		WHERE id = $1 AND remaining_quantity >= $2`,
		drugID, doses)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM drugs WHERE id = $1)`, drugID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check drug existence: %w", err)
	}
	if !exists {
		return domain.ErrDrugNotFound
	}
	return domain.ErrInsufficientStock
}

// returnStock adds doses back to a drug's remaining quantity inside tx.
func (r *saleRepository) returnStock(ctx context.Context, tx pgx.Tx, drugID, doses int64) error {
	tag, err := tx.Exec(ctx, `
		UPDATE drugs
		SET remaining_quantity = remaining_quantity + $2, updated_at = NOW()
		WHERE id = $1`,
		drugID, doses)
	if err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDrugNotFound
	}
	return nil
}

// Record inserts the sale and takes its doses from the drug's stock.
func (r *saleRepository) Record(ctx context.Context, sale *domain.Sale) error {
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		if err := r.takeStock(ctx, tx, sale.DrugID, sale.DoseSold); err != nil {
			return err
		}

		return tx.QueryRow(ctx, `
			INSERT INTO sales (drug_id, dose_sold, unit_cost_price, sales_price, profit, closed)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at`,
			sale.DrugID, sale.DoseSold, sale.UnitCostPrice, sale.SalesPrice,
			sale.Profit, sale.Closed,
		).Scan(&sale.ID, &sale.CreatedAt)
	})
	if err != nil {
		if err == domain.ErrDrugNotFound || err == domain.ErrInsufficientStock {
			return err
		}
		return fmt.Errorf("failed to record sale: %w", err)
	}

	r.logger.DebugContext(ctx, "sale recorded",
		slog.Int64("sale_id", sale.ID),
		slog.Int64("drug_id", sale.DrugID))

	return nil
}

// Update rewrites the sale row and shifts stock by doseDiff.
func (r *saleRepository) Update(ctx context.Context, sale *domain.Sale, doseDiff int64) error {
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		switch {
		case doseDiff > 0:
			if err := r.takeStock(ctx, tx, sale.DrugID, doseDiff); err != nil {
				return err
			}
		case doseDiff < 0:
			if err := r.returnStock(ctx, tx, sale.DrugID, -doseDiff); err != nil {
				return err
			}
		}

		tag, err := tx.Exec(ctx, `
			UPDATE sales
			SET dose_sold = $2, unit_cost_price = $3, sales_price = $4,
			    profit = $5, closed = $6
			WHERE id = $1`,
			sale.ID, sale.DoseSold, sale.UnitCostPrice, sale.SalesPrice,
			sale.Profit, sale.Closed)
		if err != nil {
			return fmt.Errorf("failed to update sale row: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrSaleNotFound
		}
		return nil
	})
	if err != nil {
		switch err {
		case domain.ErrDrugNotFound, domain.ErrInsufficientStock, domain.ErrSaleNotFound:
			return err
		}
		return fmt.Errorf("failed to update sale: %w", err)
	}

	r.logger.DebugContext(ctx, "sale updated",
		slog.Int64("sale_id", sale.ID),
		slog.Int64("dose_difference", doseDiff))

	return nil
}

// Delete removes the sale and returns its doses to the drug's stock.
func (r *saleRepository) Delete(ctx context.Context, saleID int64) error {
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		var drugID, doseSold int64
		err := tx.QueryRow(ctx,
			`SELECT drug_id, dose_sold FROM sales WHERE id = $1`, saleID,
		).Scan(&drugID, &doseSold)
		if err != nil {
			if err == pgx.ErrNoRows {
				return domain.ErrSaleNotFound
			}
			return fmt.Errorf("failed to load sale: %w", err)
		}

		if err := r.returnStock(ctx, tx, drugID, doseSold); err != nil {
			// The drug row may have been deleted since; the sale still goes.
			if err != domain.ErrDrugNotFound {
				return err
			}
		}

		_, err = tx.Exec(ctx, `DELETE FROM sales WHERE id = $1`, saleID)
		if err != nil {
			return fmt.Errorf("failed to delete sale row: %w", err)
		}
		return nil
	})
	if err != nil {
		if err == domain.ErrSaleNotFound {
			return err
		}
		return fmt.Errorf("failed to delete sale: %w", err)
	}

	r.logger.InfoContext(ctx, "sale deleted", slog.Int64("sale_id", saleID))
	return nil
}

// FindByID retrieves a sale by ID, returning (nil, nil) on a miss
func (r *saleRepository) FindByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	sale := &domain.Sale{}
	err := r.db.QueryRow(ctx, `
		SELECT id, drug_id, dose_sold, unit_cost_price, sales_price, profit, closed, created_at
		FROM sales
		WHERE id = $1`, saleID,
	).Scan(
		&sale.ID, &sale.DrugID, &sale.DoseSold, &sale.UnitCostPrice,
		&sale.SalesPrice, &sale.Profit, &sale.Closed, &sale.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}
	return sale, nil
}

// FindAllWithDrug retrieves all sales joined with drug display fields
func (r *saleRepository) FindAllWithDrug(ctx context.Context) ([]domain.SaleWithDrug, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.drug_id, s.dose_sold, s.unit_cost_price, s.sales_price,
		       s.profit, s.closed, s.created_at, d.name, d.dose_quantity
		FROM sales s
		JOIN drugs d ON d.id = s.drug_id
		ORDER BY s.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	var sales []domain.SaleWithDrug
	for rows.Next() {
		var s domain.SaleWithDrug
		err := rows.Scan(
			&s.ID, &s.DrugID, &s.DoseSold, &s.UnitCostPrice, &s.SalesPrice,
			&s.Profit, &s.Closed, &s.CreatedAt, &s.DrugName, &s.DoseQuantity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return sales, nil
}

// Count returns the total number of sales
func (r *saleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sales`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sales: %w", err)
	}
	return count, nil
}
