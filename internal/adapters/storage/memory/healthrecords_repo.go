package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"mypets-voice/internal/domain/healthrecords"
)

type healthRecordRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]healthrecords.Record
}

func NewHealthRecordRepo() healthrecords.Repository {
	return &healthRecordRepo{
		byID: make(map[int64]healthrecords.Record),
	}
}

func (r *healthRecordRepo) Create(ctx context.Context, rec healthrecords.Record) (healthrecords.Record, error) {
	if rec.PersonaID <= 0 {
		return healthrecords.Record{}, errors.New("health record persona id required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	rec.ID = r.nextID
	r.byID[rec.ID] = rec
	return rec, nil
}

func (r *healthRecordRepo) ListByPersona(ctx context.Context, personaID int64, filter healthrecords.ListFilter) ([]healthrecords.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]healthrecords.Record, 0)
	for _, rec := range r.byID {
		if rec.PersonaID != personaID || !filter.Matches(rec) {
			continue
		}
		out = append(out, rec)
	}

	// Más reciente primero; a igual CreatedAt decide el ID.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	if limit := healthrecords.NormalizeLimit(filter.Limit); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
