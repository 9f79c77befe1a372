package personas

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"mypets-voice/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/personas", func(pr chi.Router) {
		pr.Post("/", createPersonaHandler(svc))
		pr.Get("/", listPersonasHandler(svc))
		pr.Get("/{personaID}", getPersonaHandler(svc))
	})
}

type createPersonaRequest struct {
	Name     string `json:"name"`
	Species  string `json:"species"`
	Breed    string `json:"breed"`
	Gender   string `json:"gender"`
	Neutered bool   `json:"neutered"`

	Personality   string `json:"personality"`
	SpeakingStyle string `json:"speaking_style"`
	UserNickname  string `json:"user_nickname"`
	Likes         string `json:"likes"`
	Dislikes      string `json:"dislikes"`
	Habits        string `json:"habits"`

	Characteristics string `json:"characteristics"`
	FamilyInfo      string `json:"family_info"`
	OtherInfo       string `json:"other_info"`
}

type personaResponse struct {
	ID             int64  `json:"id"`
	OwnerAccountID string `json:"owner_account_id"`

	Name     string `json:"name"`
	Species  string `json:"species"`
	Breed    string `json:"breed"`
	Gender   string `json:"gender"`
	Neutered bool   `json:"neutered"`

	Personality   string `json:"personality"`
	SpeakingStyle string `json:"speaking_style"`
	UserNickname  string `json:"user_nickname,omitempty"`
	Likes         string `json:"likes"`
	Dislikes      string `json:"dislikes"`
	Habits        string `json:"habits"`

	Characteristics string `json:"characteristics,omitempty"`
	FamilyInfo      string `json:"family_info,omitempty"`
	OtherInfo       string `json:"other_info,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// createPersonaHandler godoc
// @Summary Registrar mascota
// @Description Crea la persona de una mascota para la cuenta autenticada. name y species son obligatorios.
// @Tags personas
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param payload body createPersonaRequest true "Datos de la mascota"
// @Success 201 {object} personaResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /personas [post]
func createPersonaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := middleware.GetAccount(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createPersonaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), acc.ID, CreateInput{
			Name:            req.Name,
			Species:         req.Species,
			Breed:           req.Breed,
			Gender:          req.Gender,
			Neutered:        req.Neutered,
			Personality:     req.Personality,
			SpeakingStyle:   req.SpeakingStyle,
			UserNickname:    req.UserNickname,
			Likes:           req.Likes,
			Dislikes:        req.Dislikes,
			Habits:          req.Habits,
			Characteristics: req.Characteristics,
			FamilyInfo:      req.FamilyInfo,
			OtherInfo:       req.OtherInfo,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "name and species are required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toPersonaResponse(p))
	}
}

// listPersonasHandler godoc
// @Summary Listar mis mascotas
// @Tags personas
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Success 200 {array} personaResponse
// @Failure 401 {string} string "unauthorized"
// @Router /personas [get]
func listPersonasHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := middleware.GetAccount(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), acc.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]personaResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPersonaResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getPersonaHandler godoc
// @Summary Ver mascota
// @Description Solo el owner. 404 si no existe, 403 si es de otra cuenta.
// @Tags personas
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param personaID path int true "ID de la mascota"
// @Success 200 {object} personaResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "persona not found"
// @Router /personas/{personaID} [get]
func getPersonaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acc, ok := middleware.GetAccount(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := ParseID(chi.URLParam(r, "personaID"))
		if err != nil {
			http.Error(w, "persona not found", http.StatusNotFound)
			return
		}

		p, err := svc.GetPersona(r.Context(), id, acc.ID)
		switch {
		case err == nil:
		case errors.Is(err, ErrNotFound):
			http.Error(w, "persona not found", http.StatusNotFound)
			return
		case errors.Is(err, ErrForbidden):
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toPersonaResponse(p))
	}
}

// ParseID parsea el {personaID} de la ruta. Lo reusan otros módulos.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrNotFound
	}
	return id, nil
}

func toPersonaResponse(p Persona) personaResponse {
	return personaResponse{
		ID:              p.ID,
		OwnerAccountID:  p.OwnerAccountID,
		Name:            p.Name,
		Species:         p.Species,
		Breed:           p.Breed,
		Gender:          p.Gender,
		Neutered:        p.Neutered,
		Personality:     p.Personality,
		SpeakingStyle:   p.SpeakingStyle,
		UserNickname:    p.UserNickname,
		Likes:           p.Likes,
		Dislikes:        p.Dislikes,
		Habits:          p.Habits,
		Characteristics: p.Characteristics,
		FamilyInfo:      p.FamilyInfo,
		OtherInfo:       p.OtherInfo,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
