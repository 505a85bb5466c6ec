// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin manages user accounts.
	RoleAdmin Role = "ADMIN"
	// RoleCommerce registers debtors and debts.
	RoleCommerce Role = "COMERCIO"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCommerce:
		return true
	default:
		return false
	}
}
