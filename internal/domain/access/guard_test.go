package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/obra-admin/internal/domain/access"
)

func TestModuleFromPath(t *testing.T) {
	cases := map[string]access.Module{
		"/app/inventario":               "inventario",
		"/app/inventario/42/ajuste":     "inventario",
		"/app/solicitudes/dinero":       "solicitudes",
		"/app/Finanzas":                 "finanzas",
		"/app/":                         "",
		"/login":                        "",
		"/application/finanzas":         "",
	}
	for path, want := range cases {
		assert.Equal(t, want, access.ModuleFromPath(path), "ruta %s", path)
	}
}

func TestEvaluate_Estados(t *testing.T) {
	d := access.NewDecider(access.DefaultPermissions())

	assert.Equal(t, access.GuardLoading, d.Evaluate(false, user("CEO"), token, "/app/finanzas"))
	assert.Equal(t, access.GuardUnauthenticated, d.Evaluate(true, nil, "", "/app/finanzas"))
	assert.Equal(t, access.GuardUnauthenticated, d.Evaluate(true, user("CEO"), "", "/app/finanzas"))
	assert.Equal(t, access.GuardAllowed, d.Evaluate(true, user("CEO"), token, "/app/finanzas"))
	assert.Equal(t, access.GuardAllowed, d.Evaluate(true, user("Bodeguero"), token, "/app/inventario/7"))
	assert.Equal(t, access.GuardDenied, d.Evaluate(true, user("Bodeguero"), token, "/app/finanzas"))
	assert.Equal(t, "denied", access.GuardDenied.String())
}
