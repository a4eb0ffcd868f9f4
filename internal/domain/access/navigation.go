package access

import "github.com/jhoicas/obra-admin/internal/domain/entity"

// NavItem entrada de la navegación lateral. Roles guarda etiquetas legibles
// ("Director de Proyectos"); se normalizan al comparar.
type NavItem struct {
	Label  string
	Path   string
	Icon   string
	Module Module
	Roles  []string
}

// seeEverything roles que reciben la navegación completa sin filtrar.
var seeEverything = map[Role]struct{}{
	RoleCEO:            {},
	RoleGerenteGeneral: {},
}

// DefaultNavigation navegación estática de la aplicación.
func DefaultNavigation() []NavItem {
	return []NavItem{
		{Label: "Dashboard", Path: "/app/dashboard", Icon: "gauge", Module: ModuleDashboard,
			Roles: []string{"Director de Proyectos", "Residente de Obra", "Contador", "Recursos Humanos", "Analista de Licitaciones", "Administrador"}},
		{Label: "Proyectos", Path: "/app/proyectos", Icon: "building", Module: ModuleProyectos,
			Roles: []string{"Director de Proyectos", "Residente de Obra", "Analista de Licitaciones", "Dibujante"}},
		{Label: "Inventario", Path: "/app/inventario", Icon: "boxes", Module: ModuleInventario,
			Roles: []string{"Bodeguero"}},
		{Label: "Finanzas", Path: "/app/finanzas", Icon: "wallet", Module: ModuleFinanzas,
			Roles: []string{"Contador"}},
		{Label: "Recursos Humanos", Path: "/app/rrhh", Icon: "users", Module: ModuleRRHH,
			Roles: []string{"Recursos Humanos"}},
		{Label: "Licitaciones", Path: "/app/licitaciones", Icon: "gavel", Module: ModuleLicitaciones,
			Roles: []string{"Director de Proyectos", "Analista de Licitaciones"}},
		{Label: "Planos", Path: "/app/planos", Icon: "ruler", Module: ModulePlanos,
			Roles: []string{"Director de Proyectos", "Residente de Obra", "Dibujante"}},
		{Label: "Reportes diarios", Path: "/app/reportes", Icon: "clipboard", Module: ModuleReportes,
			Roles: []string{"Director de Proyectos", "Residente de Obra"}},
		{Label: "Solicitudes de materiales", Path: "/app/solicitudes/materiales", Icon: "truck", Module: ModuleSolicitudes,
			Roles: []string{"Director de Proyectos", "Residente de Obra", "Contador"}},
		{Label: "Solicitudes de dinero", Path: "/app/solicitudes/dinero", Icon: "cash", Module: ModuleSolicitudes,
			Roles: []string{"Director de Proyectos", "Residente de Obra", "Contador"}},
		{Label: "Usuarios", Path: "/app/usuarios", Icon: "shield", Module: ModuleUsuarios,
			Roles: []string{"Administrador"}},
	}
}

// FilterNavigation devuelve, en el mismo orden, las entradas visibles para user.
// Los roles de visión total reciben la lista completa.
func FilterNavigation(items []NavItem, user *entity.SessionUser) []NavItem {
	if user == nil {
		return []NavItem{}
	}
	role := Role(NormalizeRole(user.Role))
	if _, ok := seeEverything[role]; ok {
		out := make([]NavItem, len(items))
		copy(out, items)
		return out
	}
	out := make([]NavItem, 0, len(items))
	for _, it := range items {
		if itemAllows(it, role) {
			out = append(out, it)
		}
	}
	return out
}

func itemAllows(it NavItem, role Role) bool {
	if role == "" {
		return false
	}
	for _, label := range it.Roles {
		if Role(NormalizeRole(label)) == role {
			return true
		}
	}
	return false
}
