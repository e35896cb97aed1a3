// Package sanitize normaliza valores crudos provenientes de archivos CSV
// (celdas que pueden faltar, no ser texto o traer caracteres peligrosos)
// a primitivas seguras del dominio.
//
// Todas las funciones son totales: nunca retornan error. Una celda malformada
// degrada a un valor seguro ("" o 0) en lugar de abortar la ingesta completa;
// el filtrado de filas inválidas ocurre aguas abajo.
package sanitize

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Text convierte un valor arbitrario en texto seguro: si no es string retorna
// cadena vacía; si lo es, elimina los caracteres '<' y '>' (defensa contra
// inyección de marcado) y recorta espacios en los extremos. Idempotente.
func Text(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	s = strings.Map(func(r rune) rune {
		if r == '<' || r == '>' {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// Amount convierte un valor arbitrario en un monto decimal no negativo.
// Números pasan directo; strings se parsean como decimal. Cualquier entrada
// no parseable o negativa degrada a cero.
func Amount(v any) decimal.Decimal {
	var d decimal.Decimal
	switch n := v.(type) {
	case decimal.Decimal:
		d = n
	case float64:
		// NewFromFloat entra en pánico con NaN/Inf; aquí degradan a cero.
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero
		}
		d = decimal.NewFromFloat(n)
	case float32:
		f := float64(n)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero
		}
		d = decimal.NewFromFloat(f)
	case int:
		d = decimal.NewFromInt(int64(n))
	case int64:
		d = decimal.NewFromInt(n)
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero
		}
		d = parsed
	default:
		return decimal.Zero
	}
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
