// internal/core/domain/errors.go
package domain

import "errors"

// Sentinel errors shared by services and repositories. Handlers translate
// these into HTTP status codes with errors.Is; anything unrecognized is a 500.
var (
	ErrDrugNotFound    = errors.New("drug not found")
	ErrSaleNotFound    = errors.New("sale not found")
	ErrStoreNotFound   = errors.New("store not found")
	ErrStaffNotFound   = errors.New("staff not found")
	ErrExpenseNotFound = errors.New("expense not found")
	ErrUserNotFound    = errors.New("user not found")

	// ErrInsufficientStock is returned when a sale would take more doses
	// than the drug has remaining.
	ErrInsufficientStock = errors.New("not enough inventory")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
