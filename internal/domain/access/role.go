// Package access resuelve qué puede ver y abrir cada rol: normalización de
// etiquetas de rol, tabla de permisos por módulo, decisión de acceso, filtro
// de navegación y evaluación de rutas protegidas.
package access

import (
	"fmt"

	"github.com/jhoicas/obra-admin/internal/domain"
	"github.com/jhoicas/obra-admin/pkg/textnorm"
)

// Role clave canónica de un rol (minúsculas, sin tildes). Solo los valores
// declarados abajo son válidos; ParseRole rechaza el resto.
type Role string

const (
	RoleCEO                  Role = "ceo"
	RoleGerenteGeneral       Role = "gerente general"
	RoleDirectorProyectos    Role = "director de proyectos"
	RoleResidenteObra        Role = "residente de obra"
	RoleBodeguero            Role = "bodeguero"
	RoleContador             Role = "contador"
	RoleRecursosHumanos      Role = "recursos humanos"
	RoleAnalistaLicitaciones Role = "analista de licitaciones"
	RoleDibujante            Role = "dibujante"
	RoleAdministrador        Role = "administrador"
)

// SuperRole tiene acceso a todos los módulos, incluso los que no están en la tabla.
const SuperRole = RoleCEO

var roleLabels = map[Role]string{
	RoleCEO:                  "CEO",
	RoleGerenteGeneral:       "Gerente General",
	RoleDirectorProyectos:    "Director de Proyectos",
	RoleResidenteObra:        "Residente de Obra",
	RoleBodeguero:            "Bodeguero",
	RoleContador:             "Contador",
	RoleRecursosHumanos:      "Recursos Humanos",
	RoleAnalistaLicitaciones: "Analista de Licitaciones",
	RoleDibujante:            "Dibujante",
	RoleAdministrador:        "Administrador",
}

// Roles devuelve todos los roles conocidos en orden estable.
func Roles() []Role {
	return []Role{
		RoleCEO, RoleGerenteGeneral, RoleDirectorProyectos, RoleResidenteObra,
		RoleBodeguero, RoleContador, RoleRecursosHumanos, RoleAnalistaLicitaciones,
		RoleDibujante, RoleAdministrador,
	}
}

// NormalizeRole convierte una etiqueta de rol escrita a mano en su forma canónica.
// Entrada vacía da cadena vacía.
func NormalizeRole(raw string) string {
	return textnorm.Fold(raw)
}

// ParseRole normaliza la etiqueta y la valida contra la lista cerrada de roles.
func ParseRole(label string) (Role, error) {
	r := Role(NormalizeRole(label))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownRole, label)
	}
	return r, nil
}

// Valid informa si r es un rol declarado.
func (r Role) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

// Label devuelve la etiqueta de presentación del rol.
func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return string(r)
}
