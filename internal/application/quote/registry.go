package quote

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// Registry mantiene un Store por sesión, en memoria, con expiración por
// inactividad. Las sesiones nuevas parten con el catálogo por defecto
// (el CSV de ejemplo empaquetado, si se cargó al arranque).
type Registry struct {
	mu             sync.Mutex
	sessions       map[string]*sessionEntry
	ttl            time.Duration
	defaultCatalog []entity.Product
}

type sessionEntry struct {
	store    *Store
	lastSeen time.Time
}

// NewRegistry construye el registro con la vida máxima de sesión indicada.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
	}
}

// SetDefaultCatalog define el catálogo inicial de las sesiones nuevas.
func (r *Registry) SetDefaultCatalog(products []entity.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultCatalog = make([]entity.Product, len(products))
	copy(r.defaultCatalog, products)
}

// Create abre una sesión nueva y devuelve su id.
func (r *Registry) Create() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictExpired()

	id := uuid.New().String()
	store := NewStore()
	if len(r.defaultCatalog) > 0 {
		store.SetCatalog(r.defaultCatalog)
	}
	r.sessions[id] = &sessionEntry{store: store, lastSeen: time.Now()}
	return id
}

// Get devuelve el Store de la sesión y renueva su marca de actividad.
// Retorna domain.ErrSessionExpired si la sesión no existe o ya expiró.
func (r *Registry) Get(sessionID string) (*Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionExpired
	}
	if time.Since(entry.lastSeen) > r.ttl {
		delete(r.sessions, sessionID)
		return nil, domain.ErrSessionExpired
	}
	entry.lastSeen = time.Now()
	return entry.store, nil
}

// Len devuelve la cantidad de sesiones vivas (para métricas y tests).
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// evictExpired purga sesiones vencidas. Llamar con el mutex tomado.
func (r *Registry) evictExpired() {
	cutoff := time.Now().Add(-r.ttl)
	for id, entry := range r.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
		}
	}
}
