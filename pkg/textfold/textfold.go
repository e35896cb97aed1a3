// Package textfold normaliza texto para comparaciones insensibles a
// mayúsculas y acentos (encabezados CSV bilingües, búsqueda en catálogo).
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold devuelve el texto en minúsculas, sin marcas diacríticas y sin espacios
// en los extremos: "Descripción " -> "descripcion".
func Fold(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// Contains reporta si s contiene substr comparando con Fold en ambos lados.
func Contains(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
