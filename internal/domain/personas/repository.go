package personas

import "context"

// Repository persiste personas. Create asigna el ID.
// GetByID devuelve ErrNotFound si no existe.
type Repository interface {
	Create(ctx context.Context, p Persona) (Persona, error)
	GetByID(ctx context.Context, id int64) (Persona, error)
	ListByOwner(ctx context.Context, ownerAccountID string) ([]Persona, error)
}
