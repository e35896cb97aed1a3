package quote_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cotizador-api/internal/application/quote"
	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// generadorFalso captura la cotización recibida y devuelve bytes fijos.
type generadorFalso struct {
	recibida *entity.Quote
}

func (g *generadorFalso) GenerateQuotePDF(_ context.Context, q *entity.Quote) ([]byte, error) {
	g.recibida = q
	return []byte("%PDF-falso"), nil
}

func TestGenerateQuotePDF_CongelaElEstadoDelCarrito(t *testing.T) {
	s := quote.NewStore()
	require.NoError(t, s.Add(producto("1", "Widget", 1000), 2))
	require.NoError(t, s.Add(producto("2", "Bolt", 50), 1))

	gen := &generadorFalso{}
	uc := quote.NewPDFUseCase(gen)

	pdf, filename, err := uc.GenerateQuotePDF(context.Background(), s, entity.CustomerInfo{
		Name:    "  <b>Constructora Andes</b>  ",
		Email:   "contacto@andes.cl",
		Phone:   "+56 9 1234 5678",
		Company: "Andes Ltda.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	require.NotNil(t, gen.recibida)
	assert.Len(t, gen.recibida.Items, 2)
	assert.True(t, gen.recibida.Total.Equal(decimal.NewFromInt(2050)),
		"el total congelado debe coincidir con el carrito")
	assert.Equal(t, "bConstructora Andes/b", gen.recibida.Customer.Name,
		"los datos del cliente pasan por el sanitizador")
	assert.Equal(t, gen.recibida.Number+".pdf", filename)
}

func TestGenerateQuotePDF_CarritoVacioFalla(t *testing.T) {
	uc := quote.NewPDFUseCase(&generadorFalso{})
	_, _, err := uc.GenerateQuotePDF(context.Background(), quote.NewStore(), entity.CustomerInfo{})
	assert.ErrorIs(t, err, domain.ErrEmptyQuote)
}

func TestNewQuoteNumber_Formato(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
	num := quote.NewQuoteNumber(now)
	assert.Regexp(t, regexp.MustCompile(`^COT-20260831-\d{3}$`), num)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registry
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistry_SesionesAisladas(t *testing.T) {
	r := quote.NewRegistry(time.Hour)
	idA := r.Create()
	idB := r.Create()

	storeA, err := r.Get(idA)
	require.NoError(t, err)
	storeB, err := r.Get(idB)
	require.NoError(t, err)

	require.NoError(t, storeA.Add(producto("1", "Widget", 1000), 2))

	assert.Empty(t, storeB.Items(), "mutaciones de una sesión no se ven en otra")
	assert.Len(t, storeA.Items(), 1)
}

func TestRegistry_SesionDesconocida(t *testing.T) {
	r := quote.NewRegistry(time.Hour)
	_, err := r.Get("no-existe")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestRegistry_SesionExpira(t *testing.T) {
	r := quote.NewRegistry(time.Millisecond)
	id := r.Create()

	time.Sleep(5 * time.Millisecond)

	_, err := r.Get(id)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestRegistry_CatalogoPorDefecto(t *testing.T) {
	r := quote.NewRegistry(time.Hour)
	r.SetDefaultCatalog([]entity.Product{producto("1", "Widget", 1000)})

	store, err := r.Get(r.Create())
	require.NoError(t, err)
	assert.Len(t, store.Products(), 1, "las sesiones nuevas parten con el catálogo de ejemplo")
}
