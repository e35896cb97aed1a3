package quote_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cotizador-api/internal/application/quote"
	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

func producto(id, name string, price int64) entity.Product {
	return entity.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.NewFromInt(price),
		Unit:     entity.DefaultUnit,
		Category: entity.DefaultCategory,
	}
}

// verifica los invariantes estructurales del carrito: subtotales derivados,
// total igual a la suma y sin ids duplicadas.
func verificarInvariantes(t *testing.T, s *quote.Store) {
	t.Helper()
	suma := decimal.Zero
	vistos := make(map[string]bool)
	for _, it := range s.Items() {
		esperado := it.Product.Price.Mul(decimal.NewFromInt(it.Quantity))
		assert.True(t, it.Subtotal.Equal(esperado),
			"subtotal de %s debe ser precio*cantidad", it.Product.ID)
		assert.False(t, vistos[it.Product.ID], "id duplicada en el carrito: %s", it.Product.ID)
		vistos[it.Product.ID] = true
		suma = suma.Add(it.Subtotal)
	}
	assert.True(t, s.Total().Equal(suma), "el total debe ser la suma de subtotales")
}

// ──────────────────────────────────────────────────────────────────────────────
// Add
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_ProductoNuevo(t *testing.T) {
	s := quote.NewStore()
	require.NoError(t, s.Add(producto("1", "Widget", 1000), 2))

	items := s.Items()
	require.Len(t, items, 1)
	assert.EqualValues(t, 2, items[0].Quantity)
	assert.True(t, items[0].Subtotal.Equal(decimal.NewFromInt(2000)))
	verificarInvariantes(t, s)
}

func TestAdd_MismaIDAcumula(t *testing.T) {
	s := quote.NewStore()
	p := producto("1", "Widget", 1000)
	require.NoError(t, s.Add(p, 2))
	require.NoError(t, s.Add(p, 3))

	items := s.Items()
	require.Len(t, items, 1, "agregar el mismo producto no debe duplicar la entrada")
	assert.EqualValues(t, 5, items[0].Quantity, "las cantidades se acumulan")
	assert.True(t, items[0].Subtotal.Equal(decimal.NewFromInt(5000)))
	verificarInvariantes(t, s)
}

func TestAdd_CantidadInvalidaNoMuta(t *testing.T) {
	s := quote.NewStore()
	assert.ErrorIs(t, s.Add(producto("1", "Widget", 1000), 0), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, s.Add(producto("1", "Widget", 1000), -3), domain.ErrInvalidQuantity)
	assert.Empty(t, s.Items(), "el carrito no debe cambiar con cantidad inválida")
}

func TestAdd_CopiaElProductoAlAgregar(t *testing.T) {
	s := quote.NewStore()
	p := producto("1", "Widget", 1000)
	require.NoError(t, s.Add(p, 1))

	// cambios posteriores del catálogo no afectan ítems ya cotizados
	p.Price = decimal.NewFromInt(9999)
	items := s.Items()
	assert.True(t, items[0].Product.Price.Equal(decimal.NewFromInt(1000)))
	assert.True(t, items[0].Subtotal.Equal(decimal.NewFromInt(1000)))
}

func TestAdd_ConservaOrdenDeInsercion(t *testing.T) {
	s := quote.NewStore()
	require.NoError(t, s.Add(producto("b", "Beta", 10), 1))
	require.NoError(t, s.Add(producto("a", "Alfa", 20), 1))
	require.NoError(t, s.Add(producto("b", "Beta", 10), 1))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].Product.ID, "acumular no reordena")
	assert.Equal(t, "a", items[1].Product.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateQuantity / Remove / Clear
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateQuantity_FijaNoIncrementa(t *testing.T) {
	s := quote.NewStore()
	p := producto("1", "Widget", 1000)
	require.NoError(t, s.Add(p, 2))

	s.UpdateQuantity("1", 7)

	items := s.Items()
	assert.EqualValues(t, 7, items[0].Quantity, "update fija la cantidad, no suma (7, no 9)")
	assert.True(t, items[0].Subtotal.Equal(decimal.NewFromInt(7000)))
	verificarInvariantes(t, s)
}

func TestUpdateQuantity_CeroElimina(t *testing.T) {
	s := quote.NewStore()
	require.NoError(t, s.Add(producto("1", "Widget", 1000), 2))

	s.UpdateQuantity("1", 0)

	assert.Empty(t, s.Items(), "cantidad cero elimina el ítem por completo")
	assert.True(t, s.Total().IsZero())
}

func TestUpdateQuantity_NegativaElimina(t *testing.T) {
	s := quote.NewStore()
	require.NoError(t, s.Add(producto("1", "Widget", 1000), 2))
	s.UpdateQuantity("1", -4)
	assert.Empty(t, s.Items())
}

func TestUpdateQuantity_IDAusenteEsNoOp(t *testing.T) {
	s := quote.NewStore()
	require.NoError(t, s.Add(producto("1", "Widget", 1000), 2))
	s.UpdateQuantity("inexistente", 5)
	require.Len(t, s.Items(), 1)
	assert.EqualValues(t, 2, s.Items()[0].Quantity)
}

func TestRemove(t *testing.T) {
	s := quote.NewStore()
	require.NoError(t, s.Add(producto("1", "Widget", 1000), 2))
	require.NoError(t, s.Add(producto("2", "Bolt", 50), 1))

	s.Remove("1")

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].Product.ID)
	assert.True(t, s.Total().Equal(decimal.NewFromInt(50)))

	// id ausente: no-op, no error
	s.Remove("1")
	assert.Len(t, s.Items(), 1)
}

func TestClear(t *testing.T) {
	s := quote.NewStore()
	require.NoError(t, s.Add(producto("1", "Widget", 1000), 2))
	require.NoError(t, s.Add(producto("2", "Bolt", 50), 1))

	s.Clear()

	assert.Empty(t, s.Items())
	assert.True(t, s.Total().IsZero(), "el total de un carrito vacío es cero")

	s.Clear() // idempotente
	assert.Empty(t, s.Items())
}

// ──────────────────────────────────────────────────────────────────────────────
// Total y escenario completo
// ──────────────────────────────────────────────────────────────────────────────

func TestTotal_EscenarioCompleto(t *testing.T) {
	s := quote.NewStore()
	widget := producto("1", "Widget", 1000)
	bolt := producto("product-2", "Bolt", 50)

	require.NoError(t, s.Add(widget, 2))
	assert.True(t, s.Total().Equal(decimal.NewFromInt(2000)))

	require.NoError(t, s.Add(bolt, 1))
	assert.True(t, s.Total().Equal(decimal.NewFromInt(2050)))

	s.Remove("1")
	assert.True(t, s.Total().Equal(decimal.NewFromInt(50)))
	verificarInvariantes(t, s)
}

func TestTotal_CarritoVacioEsCero(t *testing.T) {
	assert.True(t, quote.NewStore().Total().IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestSetCatalog_NoTocaElCarrito(t *testing.T) {
	s := quote.NewStore()
	s.SetCatalog([]entity.Product{producto("1", "Widget", 1000)})
	require.NoError(t, s.Add(producto("1", "Widget", 1000), 1))

	s.SetCatalog([]entity.Product{producto("2", "Bolt", 50)})

	require.Len(t, s.Items(), 1, "recargar el catálogo conserva el carrito")
	assert.Equal(t, "1", s.Items()[0].Product.ID)
}

func TestProductByID(t *testing.T) {
	s := quote.NewStore()
	s.SetCatalog([]entity.Product{producto("1", "Widget", 1000)})

	require.NotNil(t, s.ProductByID("1"))
	assert.Nil(t, s.ProductByID("99"))
}

func TestSearchProducts(t *testing.T) {
	s := quote.NewStore()
	s.SetCatalog([]entity.Product{
		{ID: "1", Name: "Taladro Eléctrico", Description: "750W", Price: decimal.NewFromInt(45990), Category: "Herramientas"},
		{ID: "2", Name: "Martillo", Description: "Mango de goma", Price: decimal.NewFromInt(12990), Category: "Herramientas"},
		{ID: "3", Name: "Casco", Description: "Certificado", Price: decimal.NewFromInt(8990), Category: "Seguridad"},
	})

	assert.Len(t, s.SearchProducts("", ""), 3, "sin filtros devuelve todo")
	assert.Len(t, s.SearchProducts("electrico", ""), 1, "búsqueda insensible a acentos")
	assert.Len(t, s.SearchProducts("goma", ""), 1, "busca también en la descripción")
	assert.Len(t, s.SearchProducts("", "Seguridad"), 1)
	assert.Empty(t, s.SearchProducts("taladro", "Seguridad"), "ambos filtros se combinan")

	cats := s.Categories()
	assert.Equal(t, []string{"Herramientas", "Seguridad"}, cats)
}
