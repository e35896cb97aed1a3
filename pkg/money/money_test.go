package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cotizador-api/pkg/money"
)

func TestFormat_SeparadorDeMilesChileno(t *testing.T) {
	f := money.NewFormatter("es-CL", "$")
	cases := []struct {
		in   int64
		want string
	}{
		{0, "$0"},
		{50, "$50"},
		{12345, "$12.345"},
		{125000, "$125.000"},
		{1500000, "$1.500.000"},
	}
	for _, tc := range cases {
		got := f.Format(decimal.NewFromInt(tc.in))
		assert.Equal(t, tc.want, got, "monto %d", tc.in)
	}
}

func TestFormat_RedondeaAlEntero(t *testing.T) {
	f := money.NewFormatter("es-CL", "$")
	assert.Equal(t, "$13", f.Format(decimal.RequireFromString("12.5")),
		"el peso chileno no usa decimales")
}

func TestNewFormatter_LocalidadInvalidaCaeAEspanol(t *testing.T) {
	f := money.NewFormatter("???", "")
	assert.Equal(t, "$12.345", f.Format(decimal.NewFromInt(12345)))
}
