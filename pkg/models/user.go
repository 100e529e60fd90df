package models

// Role is the role of a user account. It determines the permissions
// of the account.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// Roles returns all built-in roles.
func Roles() []Role {
	return []Role{RoleAdmin, RoleEditor, RoleViewer}
}

// ParseRole returns the Role for s and whether s names a built-in role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleEditor, RoleViewer:
		return Role(s), true
	}
	return "", false
}

// UserAccount is the profile record of an authenticated user.
type UserAccount struct {
	UID   string `json:"uid" example:"0190d3a4-1111-7c2b-9a1d-3e4f5a6b7c8d"`
	Email string `json:"email" example:"ana@example.com"`
	Role  Role   `json:"role" example:"viewer"`
}

// Document returns the representation of the account in the document store.
func (u UserAccount) Document() map[string]any {
	return map[string]any{
		"uid":   u.UID,
		"email": u.Email,
		"role":  string(u.Role),
	}
}
