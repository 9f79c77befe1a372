package diaries

import "context"

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type Repository interface {
	// Create es atómico por registro y asigna el ID.
	Create(ctx context.Context, e Entry) (Entry, error)
	// ListByPersona devuelve las entradas más recientes primero.
	ListByPersona(ctx context.Context, personaID int64, limit int) ([]Entry, error)
}

func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
