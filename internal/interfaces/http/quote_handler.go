package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/application/quote"
	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/pkg/money"
)

// QuoteHandler maneja las mutaciones del carrito y la exportación del PDF.
type QuoteHandler struct {
	pdfUC *quote.PDFUseCase
	fmtr  *money.Formatter
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(pdfUC *quote.PDFUseCase, fmtr *money.Formatter) *QuoteHandler {
	return &QuoteHandler{pdfUC: pdfUC, fmtr: fmtr}
}

func (h *QuoteHandler) cartResponse(store *quote.Store) dto.QuoteResponse {
	return dto.ToQuoteResponse(store.Items(), store.Total(), h.fmtr)
}

// Get godoc
// @Summary      Estado actual de la cotización
// @Tags         quote
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.QuoteResponse
// @Router       /api/quote [get]
func (h *QuoteHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.cartResponse(GetStore(c)))
}

// AddItem godoc
// @Summary      Agregar producto a la cotización
// @Description  Si el producto ya está en el carrito, la cantidad se acumula.
// @Tags         quote
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "Producto y cantidad"
// @Success      201   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quote/items [post]
func (h *QuoteHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: domain.ErrInvalidInput.Error()})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}

	store := GetStore(c)
	product := store.ProductByID(in.ProductID)
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: domain.ErrProductNotFound.Error()})
	}
	if err := store.Add(*product, in.Quantity); err != nil {
		if errors.Is(err, domain.ErrInvalidQuantity) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(h.cartResponse(store))
}

// UpdateItem godoc
// @Summary      Fijar la cantidad de un ítem
// @Description  Fija la cantidad exacta (no incrementa). Cantidad 0 o negativa elimina el ítem. Un id que no está en el carrito es un no-op.
// @Tags         quote
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.UpdateItemRequest  true  "Cantidad"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/quote/items/{productId} [put]
func (h *QuoteHandler) UpdateItem(c *fiber.Ctx) error {
	productID := c.Params("productId")
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: domain.ErrInvalidInput.Error()})
	}
	store := GetStore(c)
	store.UpdateQuantity(productID, in.Quantity)
	return c.JSON(h.cartResponse(store))
}

// RemoveItem godoc
// @Summary      Quitar un producto de la cotización
// @Tags         quote
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.QuoteResponse
// @Router       /api/quote/items/{productId} [delete]
func (h *QuoteHandler) RemoveItem(c *fiber.Ctx) error {
	store := GetStore(c)
	store.Remove(c.Params("productId"))
	return c.JSON(h.cartResponse(store))
}

// Clear godoc
// @Summary      Vaciar la cotización
// @Tags         quote
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.QuoteResponse
// @Router       /api/quote [delete]
func (h *QuoteHandler) Clear(c *fiber.Ctx) error {
	store := GetStore(c)
	store.Clear()
	return c.JSON(h.cartResponse(store))
}

// GeneratePDF godoc
// @Summary      Exportar la cotización como PDF
// @Tags         quote
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.GeneratePDFRequest  false  "Datos opcionales del cliente"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/quote/pdf [post]
func (h *QuoteHandler) GeneratePDF(c *fiber.Ctx) error {
	var in dto.GeneratePDFRequest
	// Cuerpo opcional: sin cuerpo se genera sin datos de cliente.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: domain.ErrInvalidInput.Error()})
		}
	}

	store := GetStore(c)
	pdfBytes, filename, err := h.pdfUC.GenerateQuotePDF(c.Context(), store, entity.CustomerInfo{
		Name:    in.Customer.Name,
		Email:   in.Customer.Email,
		Phone:   in.Customer.Phone,
		Company: in.Customer.Company,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuote) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_QUOTE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
