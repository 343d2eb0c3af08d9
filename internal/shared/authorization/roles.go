package authorization

// UserRole is one of the two incidentdesk roles. There is exactly one admin
// row in the directory; everyone else reports tickets as a user.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

// IsAdmin reports whether r may triage tickets.
func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// ParseUserRole reads a role stored in the directory or sent as a filter.
// Unknown values fall back to RoleUser, never to RoleAdmin.
func ParseUserRole(s string) UserRole {
	if role := UserRole(s); role.IsValid() {
		return role
	}
	return RoleUser
}
