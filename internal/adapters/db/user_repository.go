// internal/adapters/db/user_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
)

// userRepository implements ports.UserRepository
type userRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *Database, logger *slog.Logger) ports.UserRepository {
	return &userRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "users")),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Save inserts a bare user
func (r *userRepository) Save(ctx context.Context, user *domain.User) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, role, customer_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		user.Email, user.PasswordHash, user.Role, user.CustomerID,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to save user: %w", err)
	}

	r.logger.DebugContext(ctx, "user saved", slog.Int64("user_id", user.ID))
	return nil
}

// SaveWithCustomer inserts the customer and its first admin user in one
// transaction, linking the user to the new customer.
func (r *userRepository) SaveWithCustomer(ctx context.Context, customer *domain.Customer, user *domain.User) error {
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO customers (customer_name, store_name, location, phone1, phone2)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at`,
			customer.CustomerName, customer.StoreName, customer.Location,
			customer.Phone1, customer.Phone2,
		).Scan(&customer.ID, &customer.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to save customer: %w", err)
		}

		user.CustomerID = &customer.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO users (email, password_hash, role, customer_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at`,
			user.Email, user.PasswordHash, user.Role, user.CustomerID,
		).Scan(&user.ID, &user.CreatedAt)
		if err != nil {
			return err
		}
		return nil
	})

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to save customer account: %w", err)
	}

	r.logger.DebugContext(ctx, "customer account saved",
		slog.Int64("user_id", user.ID),
		slog.Int64("customer_id", customer.ID))

	return nil
}

// FindByEmail retrieves a user by email, returning (nil, nil) on a miss
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, customer_id, created_at
		FROM users
		WHERE email = $1`, email,
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role,
		&user.CustomerID, &user.CreatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// EmailExists checks whether an account already uses the email
func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}
