package dto

import (
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// ProductResponse representa un producto del catálogo en respuestas JSON.
// Price se serializa como string decimal para no perder precisión.
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Unit        string `json:"unit"`
	Category    string `json:"category"`
}

// CatalogResponse listado de productos cargados.
type CatalogResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// CategoriesResponse categorías distintas del catálogo.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ToProductResponse convierte la entidad a su representación JSON.
func ToProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		Unit:        p.Unit,
		Category:    p.Category,
	}
}

// ToCatalogResponse convierte el listado completo.
func ToCatalogResponse(products []entity.Product) CatalogResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}
	return CatalogResponse{Items: items, Total: len(items)}
}
