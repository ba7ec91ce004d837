package entity

// Identity is the logged-in person as seen by the client. It is created on
// login/register and destroyed on logout.
type Identity struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// HasRole reports whether the identity carries exactly the given role.
func (i *Identity) HasRole(role Role) bool {
	return i != nil && i.Role == role
}

// IsAdmin reports whether the identity may reach the admin pages.
func (i *Identity) IsAdmin() bool {
	return i.HasRole(RoleAdmin)
}
