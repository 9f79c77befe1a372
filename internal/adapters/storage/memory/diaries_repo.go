package memory

import (
	"context"
	"errors"
	"sync"

	"mypets-voice/internal/domain/diaries"
)

type diaryRepo struct {
	mu        sync.RWMutex
	nextID    int64
	byPersona map[int64][]diaries.Entry
}

func NewDiaryRepo() diaries.Repository {
	return &diaryRepo{
		byPersona: make(map[int64][]diaries.Entry),
	}
}

func (r *diaryRepo) Create(ctx context.Context, e diaries.Entry) (diaries.Entry, error) {
	if e.PersonaID <= 0 {
		return diaries.Entry{}, errors.New("diary persona id required")
	}
	if e.LikeCount < 0 {
		return diaries.Entry{}, errors.New("diary like count must be >= 0")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	e.ID = r.nextID
	r.byPersona[e.PersonaID] = append(r.byPersona[e.PersonaID], e)
	return e, nil
}

// ListByPersona: más reciente primero.
func (r *diaryRepo) ListByPersona(ctx context.Context, personaID int64, limit int) ([]diaries.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byPersona[personaID]
	limit = diaries.NormalizeLimit(limit)

	out := make([]diaries.Entry, 0, min(len(items), limit))
	for i := len(items) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, items[i])
	}
	return out, nil
}
