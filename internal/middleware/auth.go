// Package middleware provides HTTP middleware: bearer-token authentication,
// request logging and request metrics.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nfournier/cinelog/internal/auth"
	"github.com/nfournier/cinelog/internal/models"
	"github.com/nfournier/cinelog/internal/session"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// sessionKey is the context key for the authenticated session.
	sessionKey contextKey = "session"
)

// GetSession extracts the authenticated session from the context.
// Returns nil if the request was not authenticated.
func GetSession(ctx context.Context) *models.Session {
	s, _ := ctx.Value(sessionKey).(*models.Session)
	return s
}

// GetUserID extracts the authenticated user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	if s := GetSession(ctx); s != nil {
		return s.User.ID
	}
	return ""
}

// RequireAuth validates the Authorization bearer token against the active
// device session and adds the session to the request context. The token must
// match the persisted session's token (constant-time compare) and the
// session must be unexpired.
func RequireAuth(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w, "authorization token required")
				return
			}

			active, err := sessions.CurrentSession(r.Context())
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if active == nil || !auth.TokensEqual(token, active.Token) {
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, active)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
