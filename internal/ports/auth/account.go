package auth

import "context"

// Account es la cuenta que hace el request. El ID es opaco para el core.
type Account struct {
	ID    string
	Email string
}

// AuthVerifier verifica un bearer token y devuelve la cuenta o error.
// Sesiones/cookies/OAuth viven fuera de este servicio.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Account, error)
}
