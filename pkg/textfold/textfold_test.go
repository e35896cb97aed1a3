package textfold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cotizador-api/pkg/textfold"
)

func TestFold_QuitaAcentosYMayusculas(t *testing.T) {
	cases := map[string]string{
		"Descripción":  "descripcion",
		"CATEGORÍA":    "categoria",
		" Precio ":     "precio",
		"name":         "name",
		"Ñandú":        "nandu",
	}
	for in, want := range cases {
		assert.Equal(t, want, textfold.Fold(in), "Fold(%q)", in)
	}
}

func TestContains_InsensibleAAcentos(t *testing.T) {
	assert.True(t, textfold.Contains("Taladro Eléctrico", "electrico"))
	assert.True(t, textfold.Contains("CATEGORÍA", "categoria"))
	assert.False(t, textfold.Contains("Martillo", "taladro"))
}
