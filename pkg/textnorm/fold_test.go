package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/obra-admin/pkg/textnorm"
)

func TestFold(t *testing.T) {
	cases := map[string]string{
		"":                          "",
		"   ":                       "",
		"Bodeguero":                 "bodeguero",
		"  Director de  Proyectos ": "director de proyectos",
		"Analista de Licitaciónes":  "analista de licitaciones",
		"ÑANDÚ":                     "nandu",
		"Gerente\tGeneral":          "gerente general",
	}
	for in, want := range cases {
		assert.Equal(t, want, textnorm.Fold(in), "Fold(%q)", in)
	}
}

func TestFold_Idempotente(t *testing.T) {
	for _, s := range []string{"Résidente de Obra", "CEO", "  recursos   HUMANOS", "dibujante"} {
		once := textnorm.Fold(s)
		assert.Equal(t, once, textnorm.Fold(once))
	}
}

func TestContains(t *testing.T) {
	assert.True(t, textnorm.Contains("Cemento Pórtland gris", "portland"))
	assert.True(t, textnorm.Contains("Varilla corrugada", ""))
	assert.False(t, textnorm.Contains("Ladrillo", "bloque"))
}
