package diaries

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidInput = errors.New("invalid input")

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// ParseVisibility: vacío => private.
func ParseVisibility(raw string) (Visibility, error) {
	switch Visibility(strings.ToLower(strings.TrimSpace(raw))) {
	case "", VisibilityPrivate:
		return VisibilityPrivate, nil
	case VisibilityPublic:
		return VisibilityPublic, nil
	default:
		return "", ErrInvalidInput
	}
}

// DefaultWeather se usa cuando el owner no indica el clima.
const DefaultWeather = "sunny"

// Entry es una entrada de diario generada. Content nunca se edita a mano;
// likes y visibilidad se cambian fuera de este servicio.
type Entry struct {
	ID        int64
	PersonaID int64

	Title      string
	Content    string
	Weather    string
	Visibility Visibility
	LikeCount  int

	CreatedAt time.Time
	UpdatedAt time.Time
}
