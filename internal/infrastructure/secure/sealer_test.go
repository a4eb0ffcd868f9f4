package secure_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obra-admin/internal/infrastructure/secure"
)

func TestSealer_IdaYVuelta(t *testing.T) {
	for _, key := range []string{"", "frase de prueba", base64.StdEncoding.EncodeToString(make([]byte, 32))} {
		s, err := secure.NewSealer(key)
		require.NoError(t, err)

		sealed, err := s.Seal([]byte("bearer-del-api"))
		require.NoError(t, err)
		assert.NotContains(t, string(sealed), "bearer-del-api")

		plain, err := s.Open(sealed)
		require.NoError(t, err)
		assert.Equal(t, "bearer-del-api", string(plain))
	}
}

func TestSealer_MismaFraseMismaLlave(t *testing.T) {
	a, err := secure.NewSealer("llave-compartida")
	require.NoError(t, err)
	b, err := secure.NewSealer("llave-compartida")
	require.NoError(t, err)

	sealed, err := a.Seal([]byte("x"))
	require.NoError(t, err)
	plain, err := b.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "x", string(plain))
}

func TestSealer_Manipulado(t *testing.T) {
	s, err := secure.NewSealer("k")
	require.NoError(t, err)
	sealed, err := s.Seal([]byte("dato"))
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xff
	_, err = s.Open(sealed)
	assert.Error(t, err)

	_, err = s.Open([]byte("corto"))
	assert.Error(t, err)
}
