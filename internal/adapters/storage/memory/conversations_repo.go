package memory

import (
	"context"
	"errors"
	"sync"

	"mypets-voice/internal/domain/conversations"
)

type turnRepo struct {
	mu        sync.RWMutex
	nextID    int64
	byPersona map[int64][]conversations.Turn
}

func NewTurnRepo() conversations.Repository {
	return &turnRepo{
		byPersona: make(map[int64][]conversations.Turn),
	}
}

func (r *turnRepo) Append(ctx context.Context, t conversations.Turn) (conversations.Turn, error) {
	if t.PersonaID <= 0 {
		return conversations.Turn{}, errors.New("turn persona id required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	t.ID = r.nextID
	r.byPersona[t.PersonaID] = append(r.byPersona[t.PersonaID], t)
	return t, nil
}

// ListByPersona devuelve los últimos `limit` turnos, más viejo primero.
func (r *turnRepo) ListByPersona(ctx context.Context, personaID int64, limit int) ([]conversations.Turn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byPersona[personaID]
	limit = conversations.NormalizeLimit(limit)
	if len(items) > limit {
		items = items[len(items)-limit:]
	}

	out := make([]conversations.Turn, len(items))
	copy(out, items)
	return out, nil
}
