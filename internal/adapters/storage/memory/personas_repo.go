package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"mypets-voice/internal/domain/personas"
)

type personaRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]personas.Persona
}

func NewPersonaRepo() personas.Repository {
	return &personaRepo{
		byID: make(map[int64]personas.Persona),
	}
}

func (r *personaRepo) Create(ctx context.Context, p personas.Persona) (personas.Persona, error) {
	if strings.TrimSpace(p.OwnerAccountID) == "" {
		return personas.Persona{}, errors.New("persona owner required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *personaRepo) GetByID(ctx context.Context, id int64) (personas.Persona, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return personas.Persona{}, personas.ErrNotFound
	}
	return p, nil
}

func (r *personaRepo) ListByOwner(ctx context.Context, ownerAccountID string) ([]personas.Persona, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]personas.Persona, 0)
	for _, p := range r.byID {
		if p.OwnerAccountID == ownerAccountID {
			out = append(out, p)
		}
	}

	// IDs crecientes = orden de creación
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
