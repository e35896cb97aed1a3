package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteItem es una línea de la cotización: un producto con cantidad acumulada
// y subtotal derivado. Subtotal se recalcula en cada mutación, nunca se
// almacena de forma independiente de sus entradas.
//
// Product es una copia al momento de agregar: cambios posteriores del catálogo
// no afectan ítems ya cotizados.
type QuoteItem struct {
	Product  Product         `json:"product"`
	Quantity int64           `json:"quantity"` // siempre > 0
	Subtotal decimal.Decimal `json:"subtotal"` // == Product.Price * Quantity
}

// CustomerInfo datos opcionales del cliente para el encabezado de la cotización.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// Quote es la instantánea finalizada que consume el generador de PDF:
// número correlativo, fecha, líneas validadas y total consistente.
type Quote struct {
	Number   string          `json:"number"` // formato COT-AAAAMMDD-NNN
	Date     time.Time       `json:"date"`
	Items    []QuoteItem     `json:"items"`
	Total    decimal.Decimal `json:"total"` // == suma de subtotales
	Customer CustomerInfo    `json:"customer"`
}
