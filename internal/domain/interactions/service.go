package interactions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mypets-voice/internal/domain/conversations"
	"mypets-voice/internal/domain/diaries"
	"mypets-voice/internal/domain/personas"
	"mypets-voice/internal/domain/prompts"
	"mypets-voice/internal/platform/logger"
	"mypets-voice/internal/ports/generation"
)

// Política de generación por tipo de tarea.
const (
	ConversationMaxTokens   = 500
	ConversationTemperature = 0.7

	DiaryMaxTokens   = 800
	DiaryTemperature = 0.8

	DefaultGenerationTimeout = 30 * time.Second
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrPersistence  = errors.New("persistence failure")
)

// PersistenceError envuelve la falla del repo; matchea ErrPersistence.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrPersistence.Error(), e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }

// PersonaGetter es lo que el orquestador necesita del store de personas.
// personas.Service lo implementa (fetch + authorize).
type PersonaGetter interface {
	GetPersona(ctx context.Context, id int64, requestingAccountID string) (personas.Persona, error)
}

type Options struct {
	// Tope para la llamada al generador. Vencido => TransportError.
	GenerationTimeout time.Duration
	Logger            logger.Logger
}

// Service orquesta: persona -> prompt -> generación -> persistencia.
// No guarda estado mutable propio; cada llamada es independiente.
type Service struct {
	personas PersonaGetter
	turns    conversations.Repository
	entries  diaries.Repository
	gen      generation.Generator

	timeout time.Duration
	log     logger.Logger
	now     func() time.Time
}

func NewService(
	personasSvc PersonaGetter,
	turns conversations.Repository,
	entries diaries.Repository,
	gen generation.Generator,
	opts Options,
) *Service {
	timeout := opts.GenerationTimeout
	if timeout <= 0 {
		timeout = DefaultGenerationTimeout
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Service{
		personas: personasSvc,
		turns:    turns,
		entries:  entries,
		gen:      gen,
		timeout:  timeout,
		log:      log.With(map[string]any{"component": "interactions"}),
		now:      time.Now,
	}
}

// Converse genera la respuesta de la mascota y guarda el turno.
// Si la generación falla no se escribe nada.
func (s *Service) Converse(ctx context.Context, personaID int64, requestingAccountID, userMessage string) (conversations.Turn, error) {
	log := s.log.WithContext(ctx).With(map[string]any{"op": "converse", "persona_id": personaID})

	p, err := s.personas.GetPersona(ctx, personaID, requestingAccountID)
	if err != nil {
		log.Info("persona lookup rejected", map[string]any{"error": err})
		return conversations.Turn{}, err
	}

	if !s.configured() {
		log.Warn("generation not configured", nil)
		return conversations.Turn{}, generation.ErrUnconfigured
	}

	prompt := prompts.ComposeConversationPrompt(p, userMessage)
	reply, err := s.generate(ctx, generation.Request{
		System:          prompt.System,
		User:            prompt.User,
		MaxOutputTokens: ConversationMaxTokens,
		Temperature:     ConversationTemperature,
	})
	if err != nil {
		log.Warn("generation failed", map[string]any{"error": err})
		return conversations.Turn{}, err
	}

	turn, err := s.turns.Append(ctx, conversations.Turn{
		PersonaID:      p.ID,
		UserMessage:    userMessage,
		GeneratedReply: reply,
		CreatedAt:      s.now(),
	})
	if err != nil {
		log.Error("storing conversation turn failed", map[string]any{"error": err})
		return conversations.Turn{}, &PersistenceError{Op: "append conversation turn", Err: err}
	}

	log.Info("conversation turn stored", map[string]any{"turn_id": turn.ID})
	return turn, nil
}

type DiaryInput struct {
	Title      string
	DaySummary string
	Weather    string // vacío => diaries.DefaultWeather
	Visibility diaries.Visibility
}

// GenerateDiaryEntry escribe el diario del día como la mascota y lo guarda.
func (s *Service) GenerateDiaryEntry(ctx context.Context, personaID int64, requestingAccountID string, in DiaryInput) (diaries.Entry, error) {
	log := s.log.WithContext(ctx).With(map[string]any{"op": "diary", "persona_id": personaID})

	p, err := s.personas.GetPersona(ctx, personaID, requestingAccountID)
	if err != nil {
		log.Info("persona lookup rejected", map[string]any{"error": err})
		return diaries.Entry{}, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return diaries.Entry{}, ErrInvalidInput
	}
	vis, err := diaries.ParseVisibility(string(in.Visibility))
	if err != nil {
		return diaries.Entry{}, ErrInvalidInput
	}
	weather := strings.TrimSpace(in.Weather)
	if weather == "" {
		weather = diaries.DefaultWeather
	}

	if !s.configured() {
		log.Warn("generation not configured", nil)
		return diaries.Entry{}, generation.ErrUnconfigured
	}

	prompt := prompts.ComposeDiaryPrompt(p, in.DaySummary, weather)
	content, err := s.generate(ctx, generation.Request{
		System:          prompt.System,
		User:            prompt.User,
		MaxOutputTokens: DiaryMaxTokens,
		Temperature:     DiaryTemperature,
	})
	if err != nil {
		log.Warn("generation failed", map[string]any{"error": err})
		return diaries.Entry{}, err
	}

	now := s.now()
	entry, err := s.entries.Create(ctx, diaries.Entry{
		PersonaID:  p.ID,
		Title:      title,
		Content:    content,
		Weather:    weather,
		Visibility: vis,
		LikeCount:  0,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		log.Error("storing diary entry failed", map[string]any{"error": err})
		return diaries.Entry{}, &PersistenceError{Op: "create diary entry", Err: err}
	}

	log.Info("diary entry stored", map[string]any{"entry_id": entry.ID, "visibility": string(vis)})
	return entry, nil
}

// History devuelve el historial de chat de una persona (solo el owner).
func (s *Service) History(ctx context.Context, personaID int64, requestingAccountID string, limit int) ([]conversations.Turn, error) {
	p, err := s.personas.GetPersona(ctx, personaID, requestingAccountID)
	if err != nil {
		return nil, err
	}
	return s.turns.ListByPersona(ctx, p.ID, conversations.NormalizeLimit(limit))
}

// Diary devuelve las entradas del diario de una persona (solo el owner).
func (s *Service) Diary(ctx context.Context, personaID int64, requestingAccountID string, limit int) ([]diaries.Entry, error) {
	p, err := s.personas.GetPersona(ctx, personaID, requestingAccountID)
	if err != nil {
		return nil, err
	}
	return s.entries.ListByPersona(ctx, p.ID, diaries.NormalizeLimit(limit))
}

func (s *Service) configured() bool {
	return s.gen != nil && s.gen.Configured()
}

// generate hace un único intento con timeout acotado y normaliza los errores
// a los tipos de generation.
func (s *Service) generate(ctx context.Context, req generation.Request) (string, error) {
	gctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.gen.Generate(gctx, req)
	if err != nil {
		switch {
		case errors.Is(err, generation.ErrUnconfigured),
			errors.Is(err, generation.ErrEmptyResponse),
			errors.Is(err, generation.ErrTransport):
			return "", err
		case errors.Is(gctx.Err(), context.DeadlineExceeded):
			return "", generation.NewTransportError("timeout", err, true)
		default:
			return "", generation.NewTransportError(err.Error(), err, false)
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", generation.ErrEmptyResponse
	}
	return text, nil
}
