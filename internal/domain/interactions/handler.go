package interactions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"mypets-voice/internal/domain/conversations"
	"mypets-voice/internal/domain/diaries"
	"mypets-voice/internal/domain/personas"
	"mypets-voice/internal/middleware"
	"mypets-voice/internal/ports/generation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/personas/{personaID}/chat", func(cr chi.Router) {
		cr.Post("/", chatHandler(svc))
		cr.Get("/", historyHandler(svc))
	})

	r.Route("/personas/{personaID}/diary", func(dr chi.Router) {
		dr.Post("/", createDiaryHandler(svc))
		dr.Get("/", listDiaryHandler(svc))
	})
}

type chatRequest struct {
	Message string `json:"message"`
}

type turnResponse struct {
	ID             int64     `json:"id"`
	PersonaID      int64     `json:"persona_id"`
	UserMessage    string    `json:"user_message"`
	GeneratedReply string    `json:"reply"`
	CreatedAt      time.Time `json:"created_at"`
}

type diaryRequest struct {
	Title      string `json:"title"`
	DaySummary string `json:"day_summary"`
	Weather    string `json:"weather"`
	Visibility string `json:"visibility"` // "public" | "private"
}

type entryResponse struct {
	ID         int64     `json:"id"`
	PersonaID  int64     `json:"persona_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Weather    string    `json:"weather"`
	Visibility string    `json:"visibility"`
	LikeCount  int       `json:"like_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// chatHandler godoc
// @Summary Hablar con la mascota
// @Description Genera la respuesta en la voz de la mascota y guarda el turno. Solo el owner.
// @Tags interactions
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param personaID path int true "ID de la mascota"
// @Param payload body chatRequest true "Mensaje del owner"
// @Success 201 {object} turnResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "persona not found"
// @Failure 502 {string} string "generation failed"
// @Failure 503 {string} string "generation not configured"
// @Router /personas/{personaID}/chat [post]
func chatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := middleware.GetAccount(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := personas.ParseID(chi.URLParam(r, "personaID"))
		if err != nil {
			http.Error(w, "persona not found", http.StatusNotFound)
			return
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		turn, err := svc.Converse(r.Context(), id, acc.ID, req.Message)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toTurnResponse(turn))
	}
}

// historyHandler godoc
// @Summary Historial de chat
// @Description Turnos más viejos primero. limit por defecto 50, máximo 200.
// @Tags interactions
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param personaID path int true "ID de la mascota"
// @Param limit query int false "Cantidad máxima de turnos"
// @Success 200 {array} turnResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "persona not found"
// @Router /personas/{personaID}/chat [get]
func historyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := middleware.GetAccount(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := personas.ParseID(chi.URLParam(r, "personaID"))
		if err != nil {
			http.Error(w, "persona not found", http.StatusNotFound)
			return
		}

		limit, err := parseLimit(r)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}

		items, err := svc.History(r.Context(), id, acc.ID, limit)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]turnResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTurnResponse(t))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createDiaryHandler godoc
// @Summary Escribir el diario del día
// @Description La mascota escribe su diario a partir del resumen del día. weather vacío => sunny, visibility vacío => private.
// @Tags interactions
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param personaID path int true "ID de la mascota"
// @Param payload body diaryRequest true "Resumen del día"
// @Success 201 {object} entryResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "persona not found"
// @Failure 502 {string} string "generation failed"
// @Failure 503 {string} string "generation not configured"
// @Router /personas/{personaID}/diary [post]
func createDiaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := middleware.GetAccount(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := personas.ParseID(chi.URLParam(r, "personaID"))
		if err != nil {
			http.Error(w, "persona not found", http.StatusNotFound)
			return
		}

		var req diaryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.GenerateDiaryEntry(r.Context(), id, acc.ID, DiaryInput{
			Title:      req.Title,
			DaySummary: req.DaySummary,
			Weather:    req.Weather,
			Visibility: diaries.Visibility(req.Visibility),
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toEntryResponse(e))
	}
}

// listDiaryHandler godoc
// @Summary Ver el diario
// @Description Entradas más nuevas primero. limit por defecto 50, máximo 200.
// @Tags interactions
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param personaID path int true "ID de la mascota"
// @Param limit query int false "Cantidad máxima de entradas"
// @Success 200 {array} entryResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "persona not found"
// @Router /personas/{personaID}/diary [get]
func listDiaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := middleware.GetAccount(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := personas.ParseID(chi.URLParam(r, "personaID"))
		if err != nil {
			http.Error(w, "persona not found", http.StatusNotFound)
			return
		}

		limit, err := parseLimit(r)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}

		items, err := svc.Diary(r.Context(), id, acc.ID, limit)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]entryResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEntryResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// writeError traduce los errores del orquestador a HTTP.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, personas.ErrNotFound):
		http.Error(w, "persona not found", http.StatusNotFound)
	case errors.Is(err, personas.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "invalid input: title is required and visibility must be public or private", http.StatusBadRequest)
	case errors.Is(err, generation.ErrUnconfigured):
		http.Error(w, "generation not configured: set OPENAI_API_KEY", http.StatusServiceUnavailable)
	case errors.Is(err, generation.ErrEmptyResponse):
		http.Error(w, "generation returned an empty reply", http.StatusBadGateway)
	case errors.Is(err, generation.ErrTransport):
		var te *generation.TransportError
		if errors.As(err, &te) && te.Timeout {
			http.Error(w, "generation timed out", http.StatusBadGateway)
			return
		}
		http.Error(w, "generation failed", http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, ErrInvalidInput
	}
	return n, nil
}

func toTurnResponse(t conversations.Turn) turnResponse {
	return turnResponse{
		ID:             t.ID,
		PersonaID:      t.PersonaID,
		UserMessage:    t.UserMessage,
		GeneratedReply: t.GeneratedReply,
		CreatedAt:      t.CreatedAt,
	}
}

func toEntryResponse(e diaries.Entry) entryResponse {
	return entryResponse{
		ID:         e.ID,
		PersonaID:  e.PersonaID,
		Title:      e.Title,
		Content:    e.Content,
		Weather:    e.Weather,
		Visibility: string(e.Visibility),
		LikeCount:  e.LikeCount,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
