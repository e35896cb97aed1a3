package http

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cotizador-api/internal/application/catalog"
	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/pkg/logger"
)

// CatalogHandler maneja la carga y consulta del catálogo de productos.
type CatalogHandler struct {
	pipeline *catalog.Pipeline
	log      *logger.Logger
	maxBytes int64
}

// NewCatalogHandler construye el handler. maxBytes limita el tamaño del CSV subido.
func NewCatalogHandler(pipeline *catalog.Pipeline, log *logger.Logger, maxBytes int64) *CatalogHandler {
	return &CatalogHandler{pipeline: pipeline, log: log, maxBytes: maxBytes}
}

// Upload godoc
// @Summary      Cargar catálogo desde CSV
// @Description  Valida la estructura, parsea las filas y reemplaza el catálogo de la sesión. Si la ingesta falla, el catálogo anterior no se toca.
// @Tags         catalog
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo CSV (columnas mínimas: name/nombre y price/precio)"
// @Success      200   {object}  dto.CatalogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      413   {object}  dto.ErrorResponse
// @Router       /api/catalog [post]
func (h *CatalogHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'file' requerido"})
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE_TYPE", Message: domain.ErrInvalidFileType.Error()})
	}
	if fileHeader.Size > h.maxBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: domain.ErrFileTooLarge.Error()})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: domain.ErrIngestionFailed.Error()})
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: domain.ErrIngestionFailed.Error()})
	}

	products, err := h.pipeline.Ingest(data)
	if err != nil {
		// El catálogo previo de la sesión queda intacto en cualquier falla.
		switch {
		case errors.Is(err, domain.ErrMissingColumns):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_COLUMNS", Message: err.Error()})
		case errors.Is(err, domain.ErrNoValidProducts):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_VALID_PRODUCTS", Message: err.Error()})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: domain.ErrIngestionFailed.Error()})
		}
	}

	store := GetStore(c)
	store.SetCatalog(products)

	h.log.Info().
		Str("session", GetSessionID(c)).
		Str("archivo", fileHeader.Filename).
		Int("productos", len(products)).
		Msg("catálogo cargado")

	return c.JSON(dto.ToCatalogResponse(products))
}

// List godoc
// @Summary      Listar y buscar productos del catálogo
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Texto a buscar en nombre y descripción (insensible a acentos)"
// @Param        category  query  string  false  "Filtro por categoría"
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	store := GetStore(c)
	products := store.SearchProducts(c.Query("search"), c.Query("category"))
	return c.JSON(dto.ToCatalogResponse(products))
}

// Categories godoc
// @Summary      Categorías del catálogo
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoriesResponse
// @Router       /api/catalog/categories [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	store := GetStore(c)
	return c.JSON(dto.CategoriesResponse{Categories: store.Categories()})
}
