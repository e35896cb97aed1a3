package entity

import "github.com/shopspring/decimal"

// Valores por defecto aplicados durante la ingesta cuando la columna falta o viene vacía.
const (
	DefaultUnit     = "unidad"
	DefaultCategory = "General"
)

// Product representa un producto del catálogo cargado desde un CSV.
// La identidad es ID: dos productos con el mismo ID son la misma entrada.
// El catálogo vive solo en memoria durante la sesión.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"` // precio unitario, nunca negativo
	Unit        string          `json:"unit"`
	Category    string          `json:"category"`
}
