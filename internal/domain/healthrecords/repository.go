package healthrecords

import (
	"context"
	"time"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type Repository interface {
	// Create asigna el ID.
	Create(ctx context.Context, rec Record) (Record, error)
	// ListByPersona devuelve los registros más recientes primero (por CreatedAt).
	ListByPersona(ctx context.Context, personaID int64, filter ListFilter) ([]Record, error)
}

// ListFilter: From/To acotan RecordDate (inclusive).
type ListFilter struct {
	Types []RecordType
	From  *time.Time
	To    *time.Time
	Limit int
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

// Matches aplica Types/From/To sobre un registro. Lo usan los repos sin SQL.
func (f ListFilter) Matches(rec Record) bool {
	if len(f.Types) > 0 {
		ok := false
		for _, t := range f.Types {
			if rec.Type == t {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if f.From != nil && rec.RecordDate.Before(*f.From) {
		return false
	}
	if f.To != nil && rec.RecordDate.After(*f.To) {
		return false
	}
	return true
}
