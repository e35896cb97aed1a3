package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/jhoicas/cotizador-api/internal/application/catalog"
	"github.com/jhoicas/cotizador-api/internal/application/quote"
	"github.com/jhoicas/cotizador-api/internal/infrastructure/assets"
	infrapdf "github.com/jhoicas/cotizador-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/cotizador-api/internal/interfaces/http"
	"github.com/jhoicas/cotizador-api/pkg/config"
	"github.com/jhoicas/cotizador-api/pkg/logger"
	"github.com/jhoicas/cotizador-api/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	// Sin secret configurado se genera uno por proceso: las sesiones no
	// sobreviven un reinicio, que es exactamente el contrato del sistema.
	sessionSecret := cfg.Session.Secret
	if sessionSecret == "" {
		sessionSecret = uuid.New().String()
		log.Warn().Msg("SESSION_SECRET no definido, usando secret efímero por proceso")
	}

	pipeline := catalog.NewPipeline(log)
	registry := quote.NewRegistry(time.Duration(cfg.Session.TTLMinutes) * time.Minute)

	// Catálogo de ejemplo empaquetado: pasa por la misma tubería de ingesta
	// que los archivos del usuario y queda como catálogo inicial de sesiones.
	if products, err := pipeline.Ingest(assets.ExampleCatalog); err != nil {
		log.Warn().Err(err).Msg("no se pudo cargar el catálogo de ejemplo")
	} else {
		registry.SetDefaultCatalog(products)
		log.Info().Int("productos", len(products)).Msg("catálogo de ejemplo cargado")
	}

	fmtr := money.NewFormatter(cfg.Quote.CurrencyLocale, cfg.Quote.CurrencySymbol)
	pdfGenerator := infrapdf.NewMarotoQuoteGenerator(fmtr, cfg.Quote.ValidityDays)
	pdfUC := quote.NewPDFUseCase(pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Catalog.MaxFileMB * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cotizador API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Pipeline:       pipeline,
		Registry:       registry,
		PDFUseCase:     pdfUC,
		Formatter:      fmtr,
		Log:            log,
		SessionSecret:  sessionSecret,
		SessionIssuer:  cfg.Session.Issuer,
		SessionTTLMin:  cfg.Session.TTLMinutes,
		CatalogMaxByte: int64(cfg.Catalog.MaxFileMB) * 1024 * 1024,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
