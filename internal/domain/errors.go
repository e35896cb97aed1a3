package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// Ingesta de catálogos CSV.
	ErrMissingColumns  = errors.New("el archivo no contiene las columnas requeridas")
	ErrIngestionFailed = errors.New("no se pudo procesar el archivo")
	ErrNoValidProducts = errors.New("no se encontraron productos válidos en el archivo")
	ErrInvalidFileType = errors.New("el archivo debe tener extensión .csv")
	ErrFileTooLarge    = errors.New("el archivo excede el tamaño máximo permitido")

	// Carrito de cotización.
	ErrProductNotFound = errors.New("producto no encontrado en el catálogo")
	ErrInvalidQuantity = errors.New("la cantidad debe ser un entero positivo")
	ErrEmptyQuote      = errors.New("la cotización no tiene ítems")

	// Sesiones.
	ErrSessionExpired = errors.New("sesión inválida o expirada")

	ErrInvalidInput = errors.New("entrada inválida")
)
