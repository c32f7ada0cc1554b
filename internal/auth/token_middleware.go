package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/tschmitz/bookmarkd/internal/metrics"
)

// BearerMiddleware authenticates requests via the Authorization header.
// Credentials are resolved fresh per request, first against the local token
// store, then (when configured) as an OIDC-issued JWT. On success the
// resolved caller identity is injected into the request context; on failure
// the request is rejected with 401 before reaching any handler.
type BearerMiddleware struct {
	tokens TokenStore
	oidc   *OIDCVerifier
}

// NewBearerMiddleware creates a BearerMiddleware. Either resolver may be nil
// when the corresponding auth mode is disabled, but not both.
func NewBearerMiddleware(tokens TokenStore, oidc *OIDCVerifier) *BearerMiddleware {
	return &BearerMiddleware{tokens: tokens, oidc: oidc}
}

// Authenticate is an http.Handler middleware that extracts and validates a
// bearer credential and injects the caller identity into the context.
func (m *BearerMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			m.reject(w)
			return
		}
		plaintext := strings.TrimPrefix(authHeader, "Bearer ")
		if plaintext == "" {
			m.reject(w)
			return
		}

		userID, ok := m.resolve(r.Context(), plaintext)
		if !ok {
			m.reject(w)
			return
		}

		metrics.AuthAttemptsTotal.WithLabelValues("ok").Inc()
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), userID)))
	})
}

// resolve tries the token store first, then the OIDC verifier.
func (m *BearerMiddleware) resolve(ctx context.Context, plaintext string) (string, bool) {
	if m.tokens != nil {
		if userID, ok := m.resolveLocal(ctx, plaintext); ok {
			return userID, true
		}
	}
	if m.oidc != nil {
		userID, err := m.oidc.Resolve(ctx, plaintext)
		if err == nil && userID != "" {
			return userID, true
		}
	}
	return "", false
}

// resolveLocal hashes the plaintext token and looks it up in the token store,
// rejecting revoked and expired records.
func (m *BearerMiddleware) resolveLocal(ctx context.Context, plaintext string) (string, bool) {
	rec, err := m.tokens.GetByHash(ctx, HashToken(plaintext))
	if err != nil {
		return "", false
	}
	if rec.RevokedAt.Valid {
		return "", false
	}
	if rec.ExpiresAt.Valid && rec.ExpiresAt.Time.Before(time.Now()) {
		return "", false
	}

	// Update last_used_at asynchronously to avoid write overhead on every read.
	go m.tokens.UpdateLastUsed(context.Background(), rec.ID)

	return rec.UserID, true
}

// reject writes a 401 JSON response with {"error": "unauthorized"}.
func (m *BearerMiddleware) reject(w http.ResponseWriter) {
	metrics.AuthAttemptsTotal.WithLabelValues("rejected").Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
