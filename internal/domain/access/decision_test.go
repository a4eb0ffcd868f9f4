package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/obra-admin/internal/domain/access"
	"github.com/jhoicas/obra-admin/internal/domain/entity"
)

const token = "upstream-token"

func user(role string) *entity.SessionUser {
	return &entity.SessionUser{ID: "u-1", Name: "Prueba", Role: role}
}

func TestAllowed_Reglas(t *testing.T) {
	d := access.NewDecider(access.DefaultPermissions())

	tests := []struct {
		name   string
		user   *entity.SessionUser
		token  string
		target string
		want   bool
	}{
		{"sin usuario", nil, token, "inventario", false},
		{"sin token", user("CEO"), "", "inventario", false},
		{"ceo cualquier módulo", user("CEO"), token, "finanzas", true},
		{"ceo módulo inexistente", user("ceo"), token, "modulo-futuro", true},
		{"bodeguero inventario", user("Bodeguero"), token, "inventario", true},
		{"bodeguero con mayúsculas y tildes", user(" BODEGUÉRO "), token, "Inventario", true},
		{"bodeguero finanzas", user("Bodeguero"), token, "finanzas", false},
		{"gerente wildcard", user("Gerente General"), token, "usuarios", true},
		{"gerente módulo vacío", user("Gerente General"), token, "", false},
		{"contador solicitudes", user("Contador"), token, "solicitudes", true},
		{"rol desconocido", user("Maestro de obra"), token, "proyectos", false},
		{"rol vacío", user(""), token, "dashboard", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Allowed(tt.user, tt.token, tt.target))
		})
	}
}

func TestAllowed_SuperRolIncluyeModulosNuevos(t *testing.T) {
	table := access.DefaultPermissions()
	table[access.RoleDibujante] = access.NewModuleSet(access.ModulePlanos, "maquinaria")
	d := access.NewDecider(table)

	assert.True(t, d.Allowed(user("CEO"), token, "maquinaria"))
	for _, m := range access.Modules() {
		assert.True(t, d.Allowed(user("CEO"), token, string(m)), "ceo debe acceder a %s", m)
	}
}

func TestAllowed_DeniegaLoNoListado(t *testing.T) {
	table := access.DefaultPermissions()
	d := access.NewDecider(table)
	for _, r := range access.Roles() {
		if r == access.SuperRole {
			continue
		}
		set := table.ModulesFor(r)
		for _, m := range append(access.Modules(), "maquinaria") {
			want := set.Has(m)
			assert.Equal(t, want, d.Allowed(user(r.Label()), token, string(m)), "rol %s módulo %s", r, m)
		}
	}
}

func TestAllowed_Determinista(t *testing.T) {
	d := access.NewDecider(access.DefaultPermissions())
	targets := []string{"finanzas", "inventario", "Inventário", "rrhh", "finanzas", "planos"}

	first := make([]bool, len(targets))
	for i, tg := range targets {
		first[i] = d.Allowed(user("Residente de Obra"), token, tg)
	}
	// orden inverso: mismo resultado por objetivo
	for i := len(targets) - 1; i >= 0; i-- {
		assert.Equal(t, first[i], d.Allowed(user("residente de obra"), token, targets[i]))
	}
}
