package domain

// Role identifies the permission level of an authenticated user.
type Role string

// The set of roles known to the system. Every user holds exactly one.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}
