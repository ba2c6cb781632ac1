// internal/core/ports/user_repository.go
package ports

import (
	"context"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
)

// UserRepository defines the persistence port for accounts and the
// customers they belong to.
type UserRepository interface {
	// Save inserts a bare user. Returns domain.ErrEmailTaken on a
	// duplicate email.
	Save(ctx context.Context, user *domain.User) error

	// SaveWithCustomer inserts the customer and its first admin user in one
	// transaction, linking the user to the new customer.
	SaveWithCustomer(ctx context.Context, customer *domain.Customer, user *domain.User) error

	// FindByEmail returns (nil, nil) when no user matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
