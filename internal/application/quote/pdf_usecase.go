package quote

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/pkg/sanitize"
)

// PDFUseCase arma la instantánea final de la cotización y delega la
// generación del documento al puerto QuotePDFGenerator.
type PDFUseCase struct {
	generator QuotePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(generator QuotePDFGenerator) *PDFUseCase {
	return &PDFUseCase{generator: generator}
}

// GenerateQuotePDF toma el estado actual del carrito, lo congela en una
// entity.Quote (número correlativo, fecha, total derivado) y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrEmptyQuote       si el carrito está vacío.
func (uc *PDFUseCase) GenerateQuotePDF(
	ctx context.Context,
	store *Store,
	customer entity.CustomerInfo,
) (pdfBytes []byte, filename string, err error) {
	items := store.Items()
	if len(items) == 0 {
		return nil, "", domain.ErrEmptyQuote
	}

	q := &entity.Quote{
		Number: NewQuoteNumber(time.Now()),
		Date:   time.Now(),
		Items:  items,
		Total:  store.Total(),
		Customer: entity.CustomerInfo{
			Name:    sanitize.Text(customer.Name),
			Email:   sanitize.Text(customer.Email),
			Phone:   sanitize.Text(customer.Phone),
			Company: sanitize.Text(customer.Company),
		},
	}

	pdfBytes, err = uc.generator.GenerateQuotePDF(ctx, q)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar cotización: %w", err)
	}
	return pdfBytes, q.Number + ".pdf", nil
}

// NewQuoteNumber genera un número de cotización COT-AAAAMMDD-NNN, con un
// sufijo aleatorio de tres dígitos. No garantiza unicidad global: es un
// correlativo legible para el documento, no una clave.
func NewQuoteNumber(now time.Time) string {
	return fmt.Sprintf("COT-%s-%03d", now.Format("20060102"), rand.Intn(1000))
}
