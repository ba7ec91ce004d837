// Package entity contains the core business objects of the storefront.
package entity

// Role is the backend-issued role of an identity. Each guarded page
// admits exactly one role.
type Role string

const (
	// RoleUser indicates a regular shopper.
	RoleUser Role = "user"
	// RoleAdmin indicates a store administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// OrDefault returns r, or RoleUser when r is unset. Registration without a
// role creates a shopper.
func (r Role) OrDefault() Role {
	if r == "" {
		return RoleUser
	}

	return r
}
