package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mypets-voice/internal/platform/httpclient"
	"mypets-voice/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("identity client not configured")
	ErrUnauthorized  = errors.New("identity unauthorized")
	ErrUpstream      = errors.New("identity upstream error")
)

const (
	DefaultAPIKeyHeader = "X-Api-Key"
	DefaultTimeout      = 5 * time.Second
)

// Config del cliente. VerifyURL y APIKey vienen de AUTH_VERIFY_URL y AUTH_API_KEY.
type Config struct {
	VerifyURL string
	APIKey    string

	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

// Client habla con el servicio de cuentas que emite los tokens.
type Client struct {
	verifyURL    string
	apiKey       string
	apiKeyHeader string
	httpClient   *http.Client
}

func NewClient(cfg Config) *Client {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = DefaultAPIKeyHeader
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		verifyURL:    strings.TrimSpace(cfg.VerifyURL),
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
		httpClient:   httpclient.New(timeout),
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.verifyURL != "" && c.apiKey != ""
}

// VerifyToken hace POST {"token": ...} y espera {"account_id", "email"}.
func (c *Client) VerifyToken(ctx context.Context, token string) (auth.Account, error) {
	if !c.IsConfigured() {
		return auth.Account{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Account{}, ErrUnauthorized
	}

	b, _ := json.Marshal(map[string]string{"token": token})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, bytes.NewReader(b))
	if err != nil {
		return auth.Account{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(c.apiKeyHeader, c.apiKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return auth.Account{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return auth.Account{}, ErrUnauthorized
	default:
		return auth.Account{}, fmt.Errorf("%w: status=%d", ErrUpstream, resp.StatusCode)
	}

	var out struct {
		AccountID string `json:"account_id"`
		Email     string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return auth.Account{}, fmt.Errorf("%w: invalid json: %v", ErrUpstream, err)
	}

	return auth.Account{
		ID:    strings.TrimSpace(out.AccountID),
		Email: strings.TrimSpace(out.Email),
	}, nil
}
