package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrLeadNotClosedWon   = errors.New("el lead debe estar en closed_won para registrar la venta")
	ErrPostSaleExists     = errors.New("ya existe un registro de postventa para este lead")
	ErrSelfDelete         = errors.New("no puede eliminar su propia cuenta")
)
