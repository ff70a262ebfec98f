// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an account can have in the marketplace.
// The value set is closed: registration and token verification both reject
// anything outside these four constants.
type Role string

const (
	// RoleBuyer indicates a purchasing company account.
	RoleBuyer Role = "BUYER"
	// RoleSeller indicates a supplier/processor account.
	RoleSeller Role = "SELLER"
	// RoleAdmin indicates a platform administrator account.
	RoleAdmin Role = "ADMIN"
	// RoleSales indicates an internal sales employee account.
	RoleSales Role = "SALES"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin, RoleSales:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ParseRole converts a raw string to a Role, reporting whether it is one of
// the four enumerated values.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
