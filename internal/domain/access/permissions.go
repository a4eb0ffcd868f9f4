package access

// PermissionTable asocia cada rol con los módulos a los que puede entrar.
// Es de solo lectura una vez construida.
type PermissionTable map[Role]ModuleSet

// DefaultPermissions tabla de permisos de la constructora. El CEO no aparece:
// lo cubre el bypass del súper-rol.
func DefaultPermissions() PermissionTable {
	return PermissionTable{
		RoleGerenteGeneral: NewModuleSet(Wildcard),
		RoleDirectorProyectos: NewModuleSet(
			ModuleDashboard, ModuleProyectos, ModulePlanos, ModuleReportes,
			ModuleSolicitudes, ModuleLicitaciones,
		),
		RoleResidenteObra: NewModuleSet(
			ModuleDashboard, ModuleProyectos, ModuleReportes, ModuleSolicitudes, ModulePlanos,
		),
		RoleBodeguero:            NewModuleSet(ModuleInventario),
		RoleContador:             NewModuleSet(ModuleDashboard, ModuleFinanzas, ModuleSolicitudes),
		RoleRecursosHumanos:      NewModuleSet(ModuleDashboard, ModuleRRHH),
		RoleAnalistaLicitaciones: NewModuleSet(ModuleDashboard, ModuleLicitaciones, ModuleProyectos),
		RoleDibujante:            NewModuleSet(ModulePlanos, ModuleProyectos),
		RoleAdministrador:        NewModuleSet(ModuleDashboard, ModuleUsuarios),
	}
}

// ModulesFor devuelve el conjunto del rol, o nil si el rol no tiene entrada.
func (t PermissionTable) ModulesFor(r Role) ModuleSet {
	return t[r]
}
