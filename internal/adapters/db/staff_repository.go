// internal/adapters/db/staff_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
)

// staffRepository implements ports.StaffRepository
type staffRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *Database, logger *slog.Logger) ports.StaffRepository {
	return &staffRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "staff")),
	}
}

// Save creates a new staff record
func (r *staffRepository) Save(ctx context.Context, staff *domain.Staff) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO staff (staff_name, email, phone, location, store_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		staff.StaffName, staff.Email, staff.Phone, staff.Location, staff.StoreID,
	).Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to save staff: %w", err)
	}

	r.logger.DebugContext(ctx, "staff saved",
		slog.Int64("staff_id", staff.ID),
		slog.String("staff_name", staff.StaffName))

	return nil
}

// Update updates an existing staff record
func (r *staffRepository) Update(ctx context.Context, staff *domain.Staff) error {
	err := r.db.QueryRow(ctx, `
		UPDATE staff
		SET staff_name = $2, email = $3, phone = $4, location = $5,
		    store_id = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`,
		staff.ID, staff.StaffName, staff.Email, staff.Phone,
		staff.Location, staff.StoreID,
	).Scan(&staff.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrStaffNotFound
		}
		return fmt.Errorf("failed to update staff: %w", err)
	}

	return nil
}

// FindAll retrieves all staff records
func (r *staffRepository) FindAll(ctx context.Context) ([]domain.Staff, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, staff_name, email, phone, location, store_id, created_at, updated_at
		FROM staff
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var members []domain.Staff
	for rows.Next() {
		var s domain.Staff
		err := rows.Scan(&s.ID, &s.StaffName, &s.Email, &s.Phone, &s.Location,
			&s.StoreID, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		members = append(members, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return members, nil
}

// Delete removes a staff record
func (r *staffRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrStaffNotFound
	}

	r.logger.InfoContext(ctx, "staff deleted", slog.Int64("staff_id", id))
	return nil
}

// Summary aggregates headcount and location spread
func (r *staffRepository) Summary(ctx context.Context) (*ports.StaffSummary, error) {
	summary := &ports.StaffSummary{}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(DISTINCT location)
		FROM staff`,
	).Scan(&summary.TotalStaff, &summary.TotalLocations)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff totals: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT location, COUNT(*)
		FROM staff
		GROUP BY location
		ORDER BY COUNT(*) DESC, location ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff locations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c ports.LocationCount
		if err := rows.Scan(&c.Location, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan location count: %w", err)
		}
		summary.LocationStats = append(summary.LocationStats, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return summary, nil
}
