package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cotizador-api/internal/application/catalog"
	"github.com/jhoicas/cotizador-api/internal/application/quote"
	"github.com/jhoicas/cotizador-api/pkg/logger"
	"github.com/jhoicas/cotizador-api/pkg/money"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Pipeline       *catalog.Pipeline
	Registry       *quote.Registry
	PDFUseCase     *quote.PDFUseCase
	Formatter      *money.Formatter
	Log            *logger.Logger
	SessionSecret  string
	SessionIssuer  string
	SessionTTLMin  int
	CatalogMaxByte int64
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sesiones (público): abre un carrito nuevo y entrega su token
	sessionHandler := NewSessionHandler(deps.Registry, deps.SessionSecret, deps.SessionIssuer, deps.SessionTTLMin)
	api.Post("/sessions", sessionHandler.Create)

	// Rutas de sesión (requieren Bearer Token)
	protected := api.Group("/", SessionMiddleware(deps.SessionSecret, deps.Registry))

	// Catálogo
	catalogGroup := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.Pipeline, deps.Log, deps.CatalogMaxByte)
	catalogGroup.Post("/", catalogHandler.Upload)
	catalogGroup.Get("/", catalogHandler.List)
	catalogGroup.Get("/categories", catalogHandler.Categories)

	// Cotización
	quoteGroup := protected.Group("/quote")
	quoteHandler := NewQuoteHandler(deps.PDFUseCase, deps.Formatter)
	quoteGroup.Get("/", quoteHandler.Get)
	quoteGroup.Delete("/", quoteHandler.Clear)
	quoteGroup.Post("/items", quoteHandler.AddItem)
	quoteGroup.Put("/items/:productId", quoteHandler.UpdateItem)
	quoteGroup.Delete("/items/:productId", quoteHandler.RemoveItem)
	quoteGroup.Post("/pdf", quoteHandler.GeneratePDF)
}
