package middleware

import (
	"context"
	"net/http"
	"strings"

	"mypets-voice/internal/ports/auth"
)

type ctxKey string

const accountKey ctxKey = "account"

// DebugAccountHeader solo se respeta sin verifier (modo dev).
const DebugAccountHeader = "X-Debug-User-ID"

// AccountContext:
// - verifier != nil y viene Bearer token => Verify() y setea la cuenta.
// - verifier == nil => modo dev: toma la cuenta de X-Debug-User-ID.
// - Sin cuenta el request sigue igual; cada handler decide si exige auth.
func AccountContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				if id := strings.TrimSpace(r.Header.Get(DebugAccountHeader)); id != "" {
					next.ServeHTTP(w, r.WithContext(WithAccount(r.Context(), auth.Account{ID: id})))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			acc, err := verifier.Verify(r.Context(), token)
			if err != nil || strings.TrimSpace(acc.ID) == "" {
				// El handler responde 401.
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccount(r.Context(), acc)))
		})
	}
}

func WithAccount(ctx context.Context, acc auth.Account) context.Context {
	return context.WithValue(ctx, accountKey, acc)
}

func GetAccount(ctx context.Context) (auth.Account, bool) {
	acc, ok := ctx.Value(accountKey).(auth.Account)
	if !ok || strings.TrimSpace(acc.ID) == "" {
		return auth.Account{}, false
	}
	return acc, true
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
