package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/application/quote"
	"github.com/jhoicas/cotizador-api/pkg/session"
)

// SessionHandler abre sesiones efímeras (un carrito por sesión).
type SessionHandler struct {
	registry   *quote.Registry
	secret     string
	issuer     string
	ttlMinutes int
}

// NewSessionHandler construye el handler.
func NewSessionHandler(registry *quote.Registry, secret, issuer string, ttlMinutes int) *SessionHandler {
	return &SessionHandler{registry: registry, secret: secret, issuer: issuer, ttlMinutes: ttlMinutes}
}

// Create godoc
// @Summary      Abrir sesión de cotización
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  dto.SessionResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/sessions [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	sessionID := h.registry.Create()
	token, err := session.Generate(h.secret, sessionID, h.issuer, h.ttlMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SessionResponse{Token: token})
}
