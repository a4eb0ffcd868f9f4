// Package textnorm normaliza texto libre (roles, búsquedas) para comparaciones
// insensibles a mayúsculas, tildes y espacios.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold devuelve s en minúsculas, sin diacríticos, sin espacios en los extremos
// y con los espacios internos colapsados a uno solo. Es idempotente.
func Fold(s string) string {
	if s == "" {
		return ""
	}
	// transform.Chain guarda estado: se crea uno por llamada.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

// Contains informa si needle aparece en haystack tras normalizar ambos.
// Un needle vacío siempre coincide.
func Contains(haystack, needle string) bool {
	n := Fold(needle)
	if n == "" {
		return true
	}
	return strings.Contains(Fold(haystack), n)
}
