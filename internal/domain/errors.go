package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// ConflictError conflicto con un recurso ya existente. ExistingID identifica la
// fila que ya ocupa el lugar (ej. inventario para el mismo producto+bodega).
type ConflictError struct {
	ExistingID string
}

func (e *ConflictError) Error() string {
	return ErrConflict.Error()
}

// Unwrap permite detectar el conflicto con errors.Is(err, ErrConflict).
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
