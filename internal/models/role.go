package models

// Role is the closed set of access levels a user can hold.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// ParseRole returns the Role for s, or false if s is not a known role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleModerator, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

func (r Role) IsValid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// IsAdmin reports whether the role grants full catalog and user management.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// CanModerate reports whether the role may edit or delete other users'
// reviews and comments.
func (r Role) CanModerate() bool {
	switch r {
	case RoleAdmin, RoleModerator:
		return true
	case RoleUser:
		return false
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
