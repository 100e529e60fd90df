// Package permissions contains the static mapping from roles to the
// capabilities they grant.
package permissions

import (
	"slices"

	"github.com/nremp/dashboard/pkg/models"
)

// Module is a feature area of the dashboard that is gated by role.
type Module string

const (
	ModuleDashboard  Module = "dashboard"
	ModuleManagement Module = "management"
	ModuleFleet      Module = "fleet"
	ModuleUsers      Module = "users"
)

// Modules returns all modules in navigation order.
func Modules() []Module {
	return []Module{ModuleDashboard, ModuleManagement, ModuleFleet, ModuleUsers}
}

// ParseModule returns the Module for s and whether s names a module.
func ParseModule(s string) (Module, bool) {
	m := Module(s)
	if slices.Contains(Modules(), m) {
		return m, true
	}
	return "", false
}

// Permissions is the capability set of a role.
type Permissions struct {
	CanEdit bool     `json:"canEdit" example:"true"`
	CanView bool     `json:"canView" example:"true"`
	Modules []Module `json:"modules" example:"dashboard,management,fleet"`
}

// Has reports whether the permissions include access to the module.
func (p Permissions) Has(m Module) bool {
	return slices.Contains(p.Modules, m)
}

// For returns the permissions of a role. Roles without an entry get the
// viewer permissions.
//
// The returned value is a copy, modifying it does not change the table.
func For(role models.Role) Permissions {
	var p Permissions

	switch role {
	case models.RoleAdmin:
		p = Permissions{CanEdit: true, CanView: true, Modules: []Module{ModuleDashboard, ModuleManagement, ModuleFleet, ModuleUsers}}
	case models.RoleEditor:
		p = Permissions{CanEdit: true, CanView: true, Modules: []Module{ModuleDashboard, ModuleManagement, ModuleFleet}}
	default:
		p = Permissions{CanEdit: false, CanView: true, Modules: []Module{ModuleDashboard}}
	}

	return p
}

// Profile is an authenticated principal resolved to its account and
// permissions.
type Profile struct {
	UID         string      `json:"uid" example:"0190d3a4-1111-7c2b-9a1d-3e4f5a6b7c8d"`
	Email       string      `json:"email" example:"ana@example.com"`
	Role        models.Role `json:"role" example:"admin"`
	Permissions Permissions `json:"permissions"`
}

// NewProfile resolves the permissions for the account.
func NewProfile(uid, email string, role models.Role) *Profile {
	return &Profile{
		UID:         uid,
		Email:       email,
		Role:        role,
		Permissions: For(role),
	}
}

// HasModuleAccess reports whether the profile may use the module. A nil
// profile has access to nothing.
func HasModuleAccess(p *Profile, m Module) bool {
	if p == nil {
		return false
	}
	return p.Permissions.Has(m)
}

// CanEdit reports whether the profile may write to the module.
func CanEdit(p *Profile, m Module) bool {
	return HasModuleAccess(p, m) && p.Permissions.CanEdit
}
