// Package quote mantiene el estado de una cotización en curso: el catálogo
// cargado y el carrito de ítems con cantidades acumuladas y subtotales
// derivados. Todo vive en memoria; nada se persiste entre sesiones.
package quote

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/pkg/textfold"
)

// Store es la máquina de estados del carrito de cotización.
//
// Invariantes:
//   - cada producto aparece a lo más una vez (agregar acumula cantidades);
//   - Subtotal de cada ítem == Price * Quantity, recalculado en cada mutación;
//   - el orden de inserción de los ítems se conserva.
//
// Las operaciones son sincrónicas y totales: un id ausente es un no-op, no un
// error. El mutex existe porque los handlers HTTP corren concurrentes; dentro
// de una sesión las mutaciones siguen siendo secuenciales.
type Store struct {
	mu       sync.Mutex
	products []entity.Product
	items    []entity.QuoteItem
}

// NewStore crea un carrito vacío sin catálogo.
func NewStore() *Store {
	return &Store{}
}

// ── Catálogo ──────────────────────────────────────────────────────────────────

// SetCatalog reemplaza el catálogo completo. El carrito no se toca: los ítems
// ya agregados conservan su copia del producto.
func (s *Store) SetCatalog(products []entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make([]entity.Product, len(products))
	copy(s.products, products)
}

// Products devuelve una copia del catálogo actual.
func (s *Store) Products() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductByID busca un producto del catálogo; nil si no existe.
func (s *Store) ProductByID(id string) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p
		}
	}
	return nil
}

// SearchProducts filtra el catálogo por texto (nombre o descripción,
// insensible a mayúsculas y acentos) y opcionalmente por categoría exacta.
// Query y categoría vacías devuelven el catálogo completo.
func (s *Store) SearchProducts(query, category string) []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && !textfold.Contains(p.Category, category) {
			continue
		}
		if query != "" && !textfold.Contains(p.Name, query) && !textfold.Contains(p.Description, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories devuelve las categorías distintas del catálogo, en orden de aparición.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]bool, len(s.products))
	out := make([]string, 0)
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// ── Carrito ───────────────────────────────────────────────────────────────────

// Add agrega un producto al carrito. Si el producto ya tiene una entrada
// (misma ID), la cantidad se acumula y el subtotal se recalcula; si no,
// se agrega una entrada nueva al final. El ítem guarda una copia del
// producto tal como existe ahora.
//
// Retorna domain.ErrInvalidQuantity si quantity <= 0; el carrito no cambia.
func (s *Store) Add(product entity.Product, quantity int64) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity += quantity
			s.items[i].Subtotal = s.items[i].Product.Price.Mul(decimal.NewFromInt(s.items[i].Quantity))
			return nil
		}
	}
	s.items = append(s.items, entity.QuoteItem{
		Product:  product,
		Quantity: quantity,
		Subtotal: product.Price.Mul(decimal.NewFromInt(quantity)),
	})
	return nil
}

// UpdateQuantity fija la cantidad exacta del ítem (no incrementa) y recalcula
// el subtotal. Cantidad <= 0 equivale a Remove. Id ausente es un no-op.
func (s *Store) UpdateQuantity(productID string, quantity int64) {
	if quantity <= 0 {
		s.Remove(productID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			s.items[i].Subtotal = s.items[i].Product.Price.Mul(decimal.NewFromInt(quantity))
			return
		}
	}
}

// Remove elimina la entrada con la id indicada; no-op si no existe.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear vacía el carrito incondicionalmente.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items devuelve una copia de los ítems en su orden de inserción.
func (s *Store) Items() []entity.QuoteItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.QuoteItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total devuelve la suma de los subtotales; cero para un carrito vacío.
// Siempre derivado, nunca almacenado.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Subtotal)
	}
	return total
}
