package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/application/quote"
	"github.com/jhoicas/cotizador-api/pkg/session"
)

// Locals keys para la sesión en Fiber.
const (
	LocalSessionID    = "session_id"
	LocalSessionStore = "session_store"
)

// SessionMiddleware valida el Bearer Token de sesión y resuelve el carrito
// correspondiente en el registro, dejándolo en c.Locals.
func SessionMiddleware(secret string, registry *quote.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		sessionID, err := session.Parse(secret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		store, err := registry.Get(sessionID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "sesión inválida o expirada"})
		}
		c.Locals(LocalSessionID, sessionID)
		c.Locals(LocalSessionStore, store)
		return c.Next()
	}
}

// GetSessionID devuelve el id de sesión del contexto (después del middleware).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetStore devuelve el carrito de la sesión del contexto (después del middleware).
func GetStore(c *fiber.Ctx) *quote.Store {
	v := c.Locals(LocalSessionStore)
	if v == nil {
		return nil
	}
	s, _ := v.(*quote.Store)
	return s
}
