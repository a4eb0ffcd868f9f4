package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obra-admin/internal/domain"
	"github.com/jhoicas/obra-admin/internal/domain/access"
)

func TestNormalizeRole_EtiquetasEquivalentes(t *testing.T) {
	variants := []string{
		"Director de Proyectos",
		"director de proyectos",
		"  DIRECTOR DE PROYECTOS  ",
		"Dirêctor de Próyectos",
		"Director   de\tProyectos",
	}
	for _, v := range variants {
		assert.Equal(t, "director de proyectos", access.NormalizeRole(v), "variante %q", v)
	}
	assert.Equal(t, "", access.NormalizeRole(""))
}

func TestNormalizeRole_Idempotente(t *testing.T) {
	for _, r := range access.Roles() {
		once := access.NormalizeRole(r.Label())
		assert.Equal(t, once, access.NormalizeRole(once))
		assert.Equal(t, string(r), once, "la etiqueta de %q debe normalizar a su clave", r)
	}
}

func TestParseRole(t *testing.T) {
	r, err := access.ParseRole("Bodeguero")
	require.NoError(t, err)
	assert.Equal(t, access.RoleBodeguero, r)
	assert.Equal(t, "Bodeguero", r.Label())

	r, err = access.ParseRole("Analista de Licitaciónes")
	require.NoError(t, err)
	assert.Equal(t, access.RoleAnalistaLicitaciones, r)

	_, err = access.ParseRole("Maestro de obra")
	assert.ErrorIs(t, err, domain.ErrUnknownRole)

	_, err = access.ParseRole("")
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}
