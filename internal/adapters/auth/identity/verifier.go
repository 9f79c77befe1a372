package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mypets-voice/internal/ports/auth"
)

var ErrTokenEmpty = errors.New("token is empty")

// Verifier implementa auth.AuthVerifier usando el Client.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Account, error) {
	if v == nil || v.client == nil {
		return auth.Account{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Account{}, ErrTokenEmpty
	}

	acc, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		return auth.Account{}, fmt.Errorf("identity verify failed: %w", err)
	}
	if acc.ID == "" {
		return auth.Account{}, errors.New("identity response missing account id")
	}
	return acc, nil
}

var _ auth.AuthVerifier = (*Verifier)(nil)
