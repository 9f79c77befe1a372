package healthrecords

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"mypets-voice/internal/domain/personas"
)

var ErrInvalidInput = errors.New("invalid input")

// PersonaGetter hace fetch + authorize de la persona (personas.Service).
type PersonaGetter interface {
	GetPersona(ctx context.Context, id int64, requestingAccountID string) (personas.Persona, error)
}

type Service struct {
	repo     Repository
	personas PersonaGetter
	now      func() time.Time
}

func NewService(repo Repository, personasSvc PersonaGetter) *Service {
	return &Service{
		repo:     repo,
		personas: personasSvc,
		now:      time.Now,
	}
}

type CreateInput struct {
	Type        RecordType
	Title       string
	Description string
	RecordDate  time.Time
}

// Create registra un hecho de salud. Solo el owner de la persona.
func (s *Service) Create(ctx context.Context, personaID int64, requestingAccountID string, in CreateInput) (Record, error) {
	p, err := s.personas.GetPersona(ctx, personaID, requestingAccountID)
	if err != nil {
		return Record{}, err
	}

	typ := RecordType(strings.ToLower(strings.TrimSpace(string(in.Type))))
	title := strings.TrimSpace(in.Title)
	if typ == "" || utf8.RuneCountInString(string(typ)) > MaxTypeLen {
		return Record{}, ErrInvalidInput
	}
	if title == "" || utf8.RuneCountInString(title) > MaxTitleLen {
		return Record{}, ErrInvalidInput
	}
	if in.RecordDate.IsZero() {
		return Record{}, ErrInvalidInput
	}

	return s.repo.Create(ctx, Record{
		PersonaID:   p.ID,
		Type:        typ,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		RecordDate:  DateOnly(in.RecordDate),
		CreatedAt:   s.now(),
	})
}

// ListByPersona lista los registros de la persona, más recientes primero.
func (s *Service) ListByPersona(ctx context.Context, personaID int64, requestingAccountID string, filter ListFilter) ([]Record, error) {
	p, err := s.personas.GetPersona(ctx, personaID, requestingAccountID)
	if err != nil {
		return nil, err
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, ErrInvalidInput
	}

	filter.Limit = NormalizeLimit(filter.Limit)
	return s.repo.ListByPersona(ctx, p.ID, filter)
}

// DateOnly deja solo la fecha (medianoche UTC).
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
