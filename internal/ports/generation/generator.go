package generation

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnconfigured: no hay credencial. Se detecta antes de cualquier llamada de red.
	ErrUnconfigured = errors.New("generation service not configured")
	// ErrEmptyResponse: el servicio respondió OK pero sin texto utilizable.
	ErrEmptyResponse = errors.New("generation service returned empty response")
	// ErrTransport matchea cualquier *TransportError vía errors.Is.
	ErrTransport = errors.New("generation transport failure")
)

// Request es una única llamada bloqueante de completado de texto.
type Request struct {
	System          string
	User            string
	MaxOutputTokens int
	Temperature     float64 // [0,1]
}

// Generator es el borde hacia el servicio externo de generación.
type Generator interface {
	// Configured reporta si hay credencial, sin tocar la red.
	Configured() bool
	Generate(ctx context.Context, req Request) (string, error)
}

// TransportError cubre fallas de red, respuestas no-2xx y timeouts.
type TransportError struct {
	Detail  string
	Timeout bool
	Err     error
}

func (e *TransportError) Error() string {
	if e.Detail == "" {
		return ErrTransport.Error()
	}
	return fmt.Sprintf("%s: %s", ErrTransport.Error(), e.Detail)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

func NewTransportError(detail string, err error, timeout bool) *TransportError {
	return &TransportError{Detail: detail, Err: err, Timeout: timeout}
}
