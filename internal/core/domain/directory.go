// internal/core/domain/directory.go
package domain

import (
	"fmt"
	"time"
)

// Store is a pharmacy location owned by a customer.
type Store struct {
	ID         int64     `json:"id"`
	StoreName  string    `json:"storeName"`
	Location   string    `json:"location"`
	CustomerID int64     `json:"customerId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Validate checks the required store fields
func (s *Store) Validate() error {
	if s.StoreName == "" {
		return fmt.Errorf("storeName is required")
	}
	if s.Location == "" {
		return fmt.Errorf("location is required")
	}
	if s.CustomerID <= 0 {
		return fmt.Errorf("customerId is required")
	}
	return nil
}

// Staff is an employee record attached to a store.
type Staff struct {
	ID        int64     `json:"id"`
	StaffName string    `json:"staffName"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Location  string    `json:"location"`
	StoreID   int64     `json:"storeId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks the required staff fields
func (s *Staff) Validate() error {
	if s.StaffName == "" {
		return fmt.Errorf("staffName is required")
	}
	if s.Location == "" {
		return fmt.Errorf("location is required")
	}
	return nil
}

// Customer is the owning business a store and its users belong to.
type Customer struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customerName"`
	StoreName    string    `json:"storeName"`
	Location     string    `json:"location"`
	Phone1       string    `json:"phone1"`
	Phone2       string    `json:"phone2,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
