package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/obra-admin/internal/domain/access"
)

func labels(items []access.NavItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Label)
	}
	return out
}

func TestFilterNavigation_Bodeguero(t *testing.T) {
	got := access.FilterNavigation(access.DefaultNavigation(), user("Bodeguero"))
	assert.Equal(t, []string{"Inventario"}, labels(got))
}

func TestFilterNavigation_VisionTotal(t *testing.T) {
	all := access.DefaultNavigation()
	for _, role := range []string{"CEO", "gerente  general"} {
		got := access.FilterNavigation(all, user(role))
		assert.Equal(t, labels(all), labels(got), "rol %s", role)
	}
}

func TestFilterNavigation_SinUsuario(t *testing.T) {
	assert.Empty(t, access.FilterNavigation(access.DefaultNavigation(), nil))
}

func TestFilterNavigation_SubconjuntoOrdenado(t *testing.T) {
	all := access.DefaultNavigation()
	index := make(map[string]int, len(all))
	for i, it := range all {
		index[it.Path] = i
	}
	roles := append([]string{"", "Maestro de obra"}, func() []string {
		var out []string
		for _, r := range access.Roles() {
			out = append(out, r.Label())
		}
		return out
	}()...)

	for _, role := range roles {
		got := access.FilterNavigation(all, user(role))
		last := -1
		for _, it := range got {
			i, ok := index[it.Path]
			assert.True(t, ok, "rol %q: entrada %q no está en la lista original", role, it.Path)
			assert.Greater(t, i, last, "rol %q: orden alterado", role)
			last = i
		}
	}
}

func TestFilterNavigation_ContadorVeSolicitudes(t *testing.T) {
	got := access.FilterNavigation(access.DefaultNavigation(), user("contador"))
	assert.Equal(t, []string{"Dashboard", "Finanzas", "Solicitudes de materiales", "Solicitudes de dinero"}, labels(got))
}
