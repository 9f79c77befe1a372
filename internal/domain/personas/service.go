package personas

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("persona not found")
	ErrForbidden    = errors.New("persona not owned by account")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name     string
	Species  string
	Breed    string
	Gender   string
	Neutered bool

	Personality   string
	SpeakingStyle string
	UserNickname  string
	Likes         string
	Dislikes      string
	Habits        string

	Characteristics string
	FamilyInfo      string
	OtherInfo       string
}

func (s *Service) Create(ctx context.Context, ownerAccountID string, in CreateInput) (Persona, error) {
	ownerAccountID = strings.TrimSpace(ownerAccountID)
	if ownerAccountID == "" {
		return Persona{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Species) == "" {
		return Persona{}, ErrInvalidInput
	}

	now := s.now()
	p := Persona{
		OwnerAccountID: ownerAccountID,

		Name:     strings.TrimSpace(in.Name),
		Species:  strings.TrimSpace(in.Species),
		Breed:    strings.TrimSpace(in.Breed),
		Gender:   strings.TrimSpace(in.Gender),
		Neutered: in.Neutered,

		Personality:   strings.TrimSpace(in.Personality),
		SpeakingStyle: strings.TrimSpace(in.SpeakingStyle),
		UserNickname:  strings.TrimSpace(in.UserNickname),
		Likes:         strings.TrimSpace(in.Likes),
		Dislikes:      strings.TrimSpace(in.Dislikes),
		Habits:        strings.TrimSpace(in.Habits),

		Characteristics: strings.TrimSpace(in.Characteristics),
		FamilyInfo:      strings.TrimSpace(in.FamilyInfo),
		OtherInfo:       strings.TrimSpace(in.OtherInfo),

		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Persona, error) {
	if id <= 0 {
		return Persona{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// GetPersona trae la persona y recién después autoriza:
// inexistente => ErrNotFound, de otra cuenta => ErrForbidden.
func (s *Service) GetPersona(ctx context.Context, id int64, requestingAccountID string) (Persona, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Persona{}, err
	}

	if strings.TrimSpace(requestingAccountID) == "" || p.OwnerAccountID != requestingAccountID {
		return Persona{}, ErrForbidden
	}
	return p, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerAccountID string) ([]Persona, error) {
	ownerAccountID = strings.TrimSpace(ownerAccountID)
	if ownerAccountID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByOwner(ctx, ownerAccountID)
}
