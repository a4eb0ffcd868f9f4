package access

import "github.com/jhoicas/obra-admin/pkg/textnorm"

// Module área funcional de la aplicación; unidad con la que se otorgan permisos.
type Module string

const (
	ModuleDashboard    Module = "dashboard"
	ModuleProyectos    Module = "proyectos"
	ModuleInventario   Module = "inventario"
	ModuleFinanzas     Module = "finanzas"
	ModuleRRHH         Module = "rrhh"
	ModuleLicitaciones Module = "licitaciones"
	ModulePlanos       Module = "planos"
	ModuleReportes     Module = "reportes"
	ModuleSolicitudes  Module = "solicitudes"
	ModuleUsuarios     Module = "usuarios"

	// Wildcard en un ModuleSet equivale a todos los módulos.
	Wildcard Module = "*"
)

// Modules devuelve los módulos definidos en orden estable.
func Modules() []Module {
	return []Module{
		ModuleDashboard, ModuleProyectos, ModuleInventario, ModuleFinanzas, ModuleRRHH,
		ModuleLicitaciones, ModulePlanos, ModuleReportes, ModuleSolicitudes, ModuleUsuarios,
	}
}

// NormalizeModule lleva un identificador de módulo o segmento de ruta a su forma canónica.
func NormalizeModule(raw string) Module {
	return Module(textnorm.Fold(raw))
}

// ModuleSet conjunto de módulos permitidos.
type ModuleSet map[Module]struct{}

// NewModuleSet construye un conjunto con los módulos dados (normalizados).
func NewModuleSet(mods ...Module) ModuleSet {
	s := make(ModuleSet, len(mods))
	for _, m := range mods {
		s[NormalizeModule(string(m))] = struct{}{}
	}
	return s
}

// Has informa si m está en el conjunto o si el conjunto contiene el wildcard.
func (s ModuleSet) Has(m Module) bool {
	if len(s) == 0 {
		return false
	}
	if _, ok := s[Wildcard]; ok {
		return true
	}
	_, ok := s[m]
	return ok
}
