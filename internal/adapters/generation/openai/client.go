package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mypets-voice/internal/platform/httpclient"
	"mypets-voice/internal/platform/logger"
	"mypets-voice/internal/ports/generation"

	"github.com/google/uuid"
	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

const (
	DefaultModel = "gpt-4o-mini"

	// Header que OpenAI acepta para correlacionar requests del cliente.
	requestIDHeader = "X-Client-Request-Id"
)

// Config del cliente. APIKey normalmente viene de OPENAI_API_KEY.
type Config struct {
	APIKey  string
	BaseURL string // opcional (proxy / tests)
	Model   string
	Timeout time.Duration

	// Opcional: si es nil se arma uno con httpclient.New(Timeout).
	HTTPClient *http.Client
}

// Client implementa generation.Generator contra la Responses API.
// Un intento por llamada: los reintentos del SDK quedan desactivados.
type Client struct {
	api        oai.Client
	model      string
	configured bool
	log        logger.Logger
}

func NewClient(cfg Config, log logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = httpclient.New(cfg.Timeout)
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(hc),
		option.WithMaxRetries(0),
	}
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		opts = append(opts, option.WithBaseURL(base))
	}

	return &Client{
		api:        oai.NewClient(opts...),
		model:      model,
		configured: apiKey != "",
		log:        log.With(map[string]any{"component": "openai", "model": model}),
	}
}

func (c *Client) Configured() bool {
	return c != nil && c.configured
}

func (c *Client) Generate(ctx context.Context, req generation.Request) (string, error) {
	if !c.Configured() {
		return "", generation.ErrUnconfigured
	}

	params := responses.ResponseNewParams{
		Model:           c.model,
		Instructions:    oai.String(req.System),
		MaxOutputTokens: oai.Int(int64(req.MaxOutputTokens)),
		Temperature:     oai.Float(req.Temperature),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(req.User, responses.EasyInputMessageRoleUser),
			},
		},
	}

	callID := uuid.NewString()
	log := c.log.WithContext(ctx).With(map[string]any{"call_id": callID})
	start := time.Now()

	resp, err := c.api.Responses.New(ctx, params, option.WithHeader(requestIDHeader, callID))
	if err != nil {
		terr := classify(ctx, err)
		log.Warn("generation call failed", map[string]any{
			"error":       err,
			"timeout":     terr.Timeout,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return "", terr
	}

	text := strings.TrimSpace(resp.OutputText())
	log.Debug("generation call done", map[string]any{
		"duration_ms": time.Since(start).Milliseconds(),
		"chars":       len(text),
	})
	if text == "" {
		return "", generation.ErrEmptyResponse
	}
	return text, nil
}

func classify(ctx context.Context, err error) *generation.TransportError {
	timeout := httpclient.IsTimeout(err) ||
		errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		strings.Contains(strings.ToLower(err.Error()), "timeout exceeded")

	var apiErr *oai.Error
	if errors.As(err, &apiErr) {
		return generation.NewTransportError(fmt.Sprintf("status=%d", apiErr.StatusCode), err, timeout)
	}
	if timeout {
		return generation.NewTransportError("timeout", err, true)
	}
	return generation.NewTransportError(err.Error(), err, false)
}
