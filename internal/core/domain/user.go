// internal/core/domain/user.go
package domain

import (
	"fmt"
	"time"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleSuperAdmin Role = "SUPERADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleStaff      Role = "STAFF"
)

// ParseRole validates a raw role string against the closed enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleStaff:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

// Capability names an action a role may perform. Authorization checks go
// through Role.Can so role comparisons are not scattered through handlers.
type Capability string

const (
	CapManageStores   Capability = "stores:manage"
	CapManageStaff    Capability = "staff:manage"
	CapManageDrugs    Capability = "drugs:manage"
	CapRecordSales    Capability = "sales:record"
	CapManageExpenses Capability = "expenses:manage"
	CapViewDashboard  Capability = "dashboard:view"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleSuperAdmin: {
		CapManageStores:   true,
		CapManageStaff:    true,
		CapManageDrugs:    true,
		CapRecordSales:    true,
		CapManageExpenses: true,
		CapViewDashboard:  true,
	},
	RoleAdmin: {
		CapManageStaff:    true,
		CapManageDrugs:    true,
		CapRecordSales:    true,
		CapManageExpenses: true,
		CapViewDashboard:  true,
	},
	RoleStaff: {
		CapRecordSales:   true,
		CapViewDashboard: true,
	},
}

// Can reports whether the role grants the capability.
func (r Role) Can(c Capability) bool {
	return roleCapabilities[r][c]
}

// User is an authenticated account. PasswordHash is a bcrypt hash and is
// never serialized.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CustomerID   *int64    `json:"customerId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
