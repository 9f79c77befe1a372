package conversations

import "context"

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Repository es append-only: no hay update ni delete.
// Append es atómico por registro y devuelve el Turn con ID asignado.
type Repository interface {
	Append(ctx context.Context, t Turn) (Turn, error)
	// ListByPersona devuelve los turnos en orden de creación (más viejo primero).
	ListByPersona(ctx context.Context, personaID int64, limit int) ([]Turn, error)
}

// NormalizeLimit aplica default y tope de listado.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
