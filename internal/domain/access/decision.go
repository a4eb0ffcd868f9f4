package access

import "github.com/jhoicas/obra-admin/internal/domain/entity"

// Decider aplica la tabla de permisos. Es puro: no hace I/O ni guarda estado.
type Decider struct {
	table PermissionTable
}

// NewDecider construye el decisor sobre la tabla dada.
func NewDecider(table PermissionTable) *Decider {
	return &Decider{table: table}
}

// Allowed decide si user, con la credencial token, puede abrir target
// (clave de módulo o segmento de ruta). Reglas en orden:
//  1. sin usuario o sin token: deniega
//  2. súper-rol: permite
//  3. target en los módulos del rol, o wildcard: permite
//  4. en otro caso deniega
func (d *Decider) Allowed(user *entity.SessionUser, token, target string) bool {
	if user == nil || token == "" {
		return false
	}
	return d.RoleAllowed(user.Role, target)
}

// RoleAllowed aplica las reglas 2-4 solo con la etiqueta de rol.
func (d *Decider) RoleAllowed(roleLabel, target string) bool {
	role := Role(NormalizeRole(roleLabel))
	if role == SuperRole {
		return true
	}
	module := NormalizeModule(target)
	if module == "" {
		return false
	}
	return d.table.ModulesFor(role).Has(module)
}
