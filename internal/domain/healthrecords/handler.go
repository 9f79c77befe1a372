package healthrecords

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mypets-voice/internal/domain/personas"
	"mypets-voice/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/personas/{personaID}/health-records", func(hr chi.Router) {
		hr.Post("/", createRecordHandler(svc))
		hr.Get("/", listRecordsHandler(svc))
	})
}

type createRecordRequest struct {
	Type        string `json:"type" enums:"allergy,illness,surgery,vaccine,medication,checkup"`
	Title       string `json:"title"`
	Description string `json:"description"`
	RecordDate  string `json:"record_date"` // YYYY-MM-DD
}

type recordResponse struct {
	ID          int64     `json:"id"`
	PersonaID   int64     `json:"persona_id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	RecordDate  string    `json:"record_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// createRecordHandler godoc
// @Summary Registrar dato de salud
// @Description Alergias, enfermedades, cirugías, vacunas, etc. Solo el owner. record_date en formato YYYY-MM-DD.
// @Tags health-records
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param personaID path int true "ID de la mascota"
// @Param payload body createRecordRequest true "Dato de salud"
// @Success 201 {object} recordResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "persona not found"
// @Router /personas/{personaID}/health-records [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
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

		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := time.Parse(RecordDateLayout, strings.TrimSpace(req.RecordDate))
		if err != nil {
			http.Error(w, "record_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		rec, err := svc.Create(r.Context(), id, acc.ID, CreateInput{
			Type:        RecordType(req.Type),
			Title:       req.Title,
			Description: req.Description,
			RecordDate:  date,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

// listRecordsHandler godoc
// @Summary Libreta sanitaria
// @Description Más recientes primero. Filtros opcionales por tipo y rango de record_date.
// @Tags health-records
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param personaID path int true "ID de la mascota"
// @Param types query string false "Lista CSV de tipos (ej: allergy,vaccine)"
// @Param from query string false "record_date mínima (YYYY-MM-DD)"
// @Param to query string false "record_date máxima (YYYY-MM-DD)"
// @Param limit query int false "Máximo a devolver (1-200). Por defecto 50"
// @Success 200 {array} recordResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "persona not found"
// @Router /personas/{personaID}/health-records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
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

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByPersona(r.Context(), id, acc.ID, filter)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()
	filter := ListFilter{}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return ListFilter{}, errors.New("invalid limit")
		}
		filter.Limit = n
	}

	// types=allergy,vaccine
	if v := strings.TrimSpace(q.Get("types")); v != "" {
		for _, p := range strings.Split(v, ",") {
			if t := strings.ToLower(strings.TrimSpace(p)); t != "" {
				filter.Types = append(filter.Types, RecordType(t))
			}
		}
	}

	if v := strings.TrimSpace(q.Get("from")); v != "" {
		t, err := time.Parse(RecordDateLayout, v)
		if err != nil {
			return ListFilter{}, errors.New("from must be YYYY-MM-DD")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		t, err := time.Parse(RecordDateLayout, v)
		if err != nil {
			return ListFilter{}, errors.New("to must be YYYY-MM-DD")
		}
		filter.To = &t
	}

	return filter, nil
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, personas.ErrNotFound):
		http.Error(w, "persona not found", http.StatusNotFound)
	case errors.Is(err, personas.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "invalid input: type, title and record_date are required", http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toRecordResponse(rec Record) recordResponse {
	return recordResponse{
		ID:          rec.ID,
		PersonaID:   rec.PersonaID,
		Type:        string(rec.Type),
		Title:       rec.Title,
		Description: rec.Description,
		RecordDate:  rec.RecordDate.Format(RecordDateLayout),
		CreatedAt:   rec.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
