// Package session defines the authenticated identity held by the client and
// the store that keeps it consistent with the persisted credential.
package session

// Role is the closed set of roles the backend assigns to accounts.
type Role string

const (
	RoleUser   Role = "user"
	RoleMember Role = "member"
	RoleLeader Role = "leader"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleMember, RoleLeader, RoleAdmin:
		return true
	default:
		return false
	}
}

// User is the identity returned by the backend for an authenticated account.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// HasRole reports whether the user satisfies the required role. An empty
// requirement is satisfied by any user and admins satisfy every requirement.
func (u User) HasRole(required Role) bool {
	if required == "" || u.Role == RoleAdmin {
		return true
	}
	return u.Role == required
}

// Session is the current identity plus the credential that proves it.
// User is set if and only if Token is set.
type Session struct {
	User  *User
	Token string
}

// Authenticated returns true when the session carries a validated identity.
func (s Session) Authenticated() bool {
	return s.User != nil && s.Token != ""
}
