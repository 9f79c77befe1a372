package httpclient

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

const (
	// Generar texto tarda segundos; el default es más holgado que el de un IAM.
	DefaultTimeout = 30 * time.Second
)

// New crea un *http.Client con timeout para adapters salientes.
func New(timeout time.Duration) *http.Client {
	return NewWithTransport(timeout, nil)
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(timeout time.Duration, tr http.RoundTripper) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tr == nil {
		tr = http.DefaultTransport
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: tr,
	}
}

// IsTimeout reporta si err viene de un deadline (contexto o red).
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
