package access

import "github.com/jhoicas/obra-admin/internal/domain/entity"

// Tipos de inconsistencia entre navegación y permisos.
const (
	// HiddenModule el rol puede abrir el módulo por URL pero no lo ve en la navegación.
	HiddenModule = "permiso-sin-navegacion"
	// UnreachableItem el rol ve la entrada pero el guard lo redirigiría.
	UnreachableItem = "navegacion-sin-permiso"
)

// Inconsistency desajuste detectado para un rol y un módulo.
type Inconsistency struct {
	Role   Role
	Module Module
	Kind   string
	Path   string
}

// CheckConsistency compara la tabla de permisos con las listas de roles de la
// navegación y reporta los desajustes en orden de roles y módulos.
func CheckConsistency(table PermissionTable, items []NavItem) []Inconsistency {
	d := NewDecider(table)
	var out []Inconsistency
	for _, role := range Roles() {
		user := &entity.SessionUser{Role: role.Label()}
		visible := FilterNavigation(items, user)

		shown := make(map[Module]bool, len(visible))
		for _, it := range visible {
			shown[it.Module] = true
			if !d.RoleAllowed(user.Role, string(it.Module)) {
				out = append(out, Inconsistency{Role: role, Module: it.Module, Kind: UnreachableItem, Path: it.Path})
			}
		}
		for _, m := range Modules() {
			if d.RoleAllowed(user.Role, string(m)) && !shown[m] {
				out = append(out, Inconsistency{Role: role, Module: m, Kind: HiddenModule})
			}
		}
	}
	return out
}
