package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"mypets-voice/internal/ports/generation"
)

const okBody = `{
  "id": "resp_123",
  "object": "response",
  "created_at": 1760000000,
  "status": "completed",
  "model": "gpt-4o-mini",
  "output": [{
    "type": "message",
    "id": "msg_1",
    "status": "completed",
    "role": "assistant",
    "content": [{"type": "output_text", "text": "%s", "annotations": []}]
  }]
}`

type fakeAPI struct {
	hits atomic.Int32

	mu      sync.Mutex
	lastReq map[string]any
	lastHdr http.Header

	status int
	text   string
	delay  time.Duration
}

func (f *fakeAPI) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)

		if !strings.HasSuffix(r.URL.Path, "/responses") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		f.lastHdr = r.Header.Clone()
		f.lastReq = body
		f.mu.Unlock()

		if f.delay > 0 {
			time.Sleep(f.delay)
		}

		w.Header().Set("Content-Type", "application/json")
		if f.status != 0 && f.status != http.StatusOK {
			w.WriteHeader(f.status)
			_, _ = w.Write([]byte(`{"error":{"message":"upstream broke","type":"server_error"}}`))
			return
		}
		_, _ = w.Write([]byte(strings.Replace(okBody, "%s", f.text, 1)))
	}
}

func newTestClient(t *testing.T, f *fakeAPI, apiKey string, timeout time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)

	return NewClient(Config{
		APIKey:  apiKey,
		BaseURL: srv.URL + "/v1/",
		Model:   "gpt-4o-mini",
		Timeout: timeout,
	}, nil)
}

func TestGenerate_Success(t *testing.T) {
	f := &fakeAPI{text: "Woof! Great day chasing balls!"}
	c := newTestClient(t, f, "sk-test", time.Second)

	got, err := c.Generate(context.Background(), generation.Request{
		System:          "You are Rex, a dog (Labrador).",
		User:            "how was your day",
		MaxOutputTokens: 500,
		Temperature:     0.7,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "Woof! Great day chasing balls!" {
		t.Fatalf("got %q", got)
	}

	if f.hits.Load() != 1 {
		t.Fatalf("expected 1 call, got %d", f.hits.Load())
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lastHdr.Get("Authorization") != "Bearer sk-test" {
		t.Fatalf("Authorization=%q", f.lastHdr.Get("Authorization"))
	}
	if f.lastHdr.Get(requestIDHeader) == "" {
		t.Fatalf("expected %s header", requestIDHeader)
	}
	if f.lastReq["instructions"] != "You are Rex, a dog (Labrador)." {
		t.Fatalf("instructions=%v", f.lastReq["instructions"])
	}
	if f.lastReq["max_output_tokens"] != float64(500) {
		t.Fatalf("max_output_tokens=%v", f.lastReq["max_output_tokens"])
	}
	if f.lastReq["temperature"] != 0.7 {
		t.Fatalf("temperature=%v", f.lastReq["temperature"])
	}
	if f.lastReq["model"] != "gpt-4o-mini" {
		t.Fatalf("model=%v", f.lastReq["model"])
	}
}

func TestGenerate_Unconfigured_NoNetwork(t *testing.T) {
	f := &fakeAPI{text: "unused"}
	c := newTestClient(t, f, "  ", time.Second)

	if c.Configured() {
		t.Fatalf("client without key must not be configured")
	}
	_, err := c.Generate(context.Background(), generation.Request{System: "s", User: "u"})
	if !errors.Is(err, generation.ErrUnconfigured) {
		t.Fatalf("expected ErrUnconfigured, got %v", err)
	}
	if f.hits.Load() != 0 {
		t.Fatalf("expected no network calls, got %d", f.hits.Load())
	}
}

func TestGenerate_ServerError_SingleAttempt(t *testing.T) {
	f := &fakeAPI{status: http.StatusInternalServerError}
	c := newTestClient(t, f, "sk-test", time.Second)

	_, err := c.Generate(context.Background(), generation.Request{System: "s", User: "u"})
	if !errors.Is(err, generation.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	var te *generation.TransportError
	if !errors.As(err, &te) || te.Detail != "status=500" {
		t.Fatalf("expected status=500 detail, got %v", err)
	}
	if f.hits.Load() != 1 {
		t.Fatalf("expected exactly one attempt, got %d", f.hits.Load())
	}
}

func TestGenerate_Timeout(t *testing.T) {
	f := &fakeAPI{text: "late", delay: 300 * time.Millisecond}
	c := newTestClient(t, f, "sk-test", 50*time.Millisecond)

	_, err := c.Generate(context.Background(), generation.Request{System: "s", User: "u"})
	var te *generation.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if !te.Timeout {
		t.Fatalf("expected timeout flag, got %+v", te)
	}
}

func TestGenerate_EmptyResponse(t *testing.T) {
	f := &fakeAPI{text: "   "}
	c := newTestClient(t, f, "sk-test", time.Second)

	_, err := c.Generate(context.Background(), generation.Request{System: "s", User: "u"})
	if !errors.Is(err, generation.ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}
