package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newIdentityServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(DefaultAPIKeyHeader) != "svc-key" {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		var body struct {
			Token string `json:"token"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		switch body.Token {
		case "good":
			_, _ = w.Write([]byte(`{"account_id":" acc-1 ","email":"owner@example.com"}`))
		case "no-id":
			_, _ = w.Write([]byte(`{"email":"ghost@example.com"}`))
		case "boom":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVerifier_Verify(t *testing.T) {
	srv := newIdentityServer(t)
	v := NewVerifier(NewClient(Config{VerifyURL: srv.URL, APIKey: "svc-key"}))

	acc, err := v.Verify(context.Background(), "good")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if acc.ID != "acc-1" || acc.Email != "owner@example.com" {
		t.Fatalf("unexpected account: %+v", acc)
	}

	if _, err := v.Verify(context.Background(), "bad"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := v.Verify(context.Background(), "boom"); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if _, err := v.Verify(context.Background(), "no-id"); err == nil {
		t.Fatalf("expected error for missing account id")
	}
	if _, err := v.Verify(context.Background(), "  "); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
}

func TestVerifier_NotConfigured(t *testing.T) {
	v := NewVerifier(NewClient(Config{}))
	if _, err := v.Verify(context.Background(), "good"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	var nilVerifier *Verifier
	if _, err := nilVerifier.Verify(context.Background(), "good"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured on nil verifier, got %v", err)
	}
}
