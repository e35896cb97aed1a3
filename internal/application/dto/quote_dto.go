package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/pkg/money"
)

// AddItemRequest agrega un producto del catálogo al carrito.
type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// UpdateItemRequest fija la cantidad exacta de un ítem (0 lo elimina).
type UpdateItemRequest struct {
	Quantity int64 `json:"quantity"`
}

// QuoteItemResponse una línea del carrito con su subtotal derivado.
type QuoteItemResponse struct {
	Product           ProductResponse `json:"product"`
	Quantity          int64           `json:"quantity"`
	Subtotal          string          `json:"subtotal"`
	FormattedSubtotal string          `json:"formatted_subtotal"`
}

// QuoteResponse estado actual del carrito.
type QuoteResponse struct {
	Items          []QuoteItemResponse `json:"items"`
	Total          string              `json:"total"`
	FormattedTotal string              `json:"formatted_total"`
}

// CustomerInfoRequest datos opcionales del cliente para el PDF.
type CustomerInfoRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// GeneratePDFRequest cuerpo de la generación del documento.
type GeneratePDFRequest struct {
	Customer CustomerInfoRequest `json:"customer_info"`
}

// SessionResponse token de la sesión recién creada.
type SessionResponse struct {
	Token string `json:"token"`
}

// ToQuoteResponse arma la respuesta del carrito formateando los montos.
func ToQuoteResponse(items []entity.QuoteItem, total decimal.Decimal, fmtr *money.Formatter) QuoteResponse {
	out := make([]QuoteItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, QuoteItemResponse{
			Product:           ToProductResponse(it.Product),
			Quantity:          it.Quantity,
			Subtotal:          it.Subtotal.String(),
			FormattedSubtotal: fmtr.Format(it.Subtotal),
		})
	}
	return QuoteResponse{
		Items:          out,
		Total:          total.String(),
		FormattedTotal: fmtr.Format(total),
	}
}
