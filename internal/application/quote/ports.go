package quote

import (
	"context"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// QuotePDFGenerator es el colaborador que materializa la cotización como PDF.
// Recibe la instantánea finalizada (líneas validadas y total consistente);
// el formato exacto del documento es responsabilidad de la implementación.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, q *entity.Quote) ([]byte, error)
}
