// Package secure cifra en reposo el bearer del API externo que guarda el
// almacén de sesiones (XChaCha20-Poly1305).
package secure

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// Sealer cifra y descifra con autenticación. El nonce va antepuesto al texto cifrado.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer construye el cifrador. key puede ser base64 de 32 bytes o una frase
// cualquiera (se deriva con SHA-256). Con key vacía se genera una llave aleatoria:
// las sesiones persistidas no sobrevivirán un reinicio.
func NewSealer(key string) (*Sealer, error) {
	var k []byte
	switch {
	case key == "":
		k = make([]byte, chacha20poly1305.KeySize)
		if _, err := io.ReadFull(rand.Reader, k); err != nil {
			return nil, fmt.Errorf("secure: generar llave: %w", err)
		}
	default:
		decoded, err := base64.StdEncoding.DecodeString(key)
		if err == nil && len(decoded) == chacha20poly1305.KeySize {
			k = decoded
		} else {
			sum := sha256.Sum256([]byte(key))
			k = sum[:]
		}
	}
	aead, err := chacha20poly1305.NewX(k)
	if err != nil {
		return nil, fmt.Errorf("secure: crear AEAD: %w", err)
	}
	return &Sealer{aead: aead}, nil
}

// Seal cifra plain y devuelve nonce||ciphertext.
func (s *Sealer) Seal(plain []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plain)+s.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("secure: generar nonce: %w", err)
	}
	return s.aead.Seal(nonce, nonce, plain, nil), nil
}

// Open descifra lo producido por Seal.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	ns := s.aead.NonceSize()
	if len(sealed) < ns+s.aead.Overhead() {
		return nil, errors.New("secure: datos cifrados demasiado cortos")
	}
	plain, err := s.aead.Open(nil, sealed[:ns], sealed[ns:], nil)
	if err != nil {
		return nil, fmt.Errorf("secure: descifrar: %w", err)
	}
	return plain, nil
}
