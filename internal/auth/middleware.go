package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/brainbox-app/brainbox/internal/store"
)

type contextKey string

// userContextKey is the context key under which the authenticated user is
// stored.
const userContextKey contextKey = "user"

// Middleware gates authenticated routes: it verifies the inbound bearer
// token, loads the user it names, and injects the user into the request
// context before the downstream handler runs.
type Middleware struct {
	tokens *Tokens
	users  *store.UserStore
}

func NewMiddleware(tokens *Tokens, users *store.UserStore) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// RequireUser rejects requests whose authorization header is absent or does
// not verify. The header carries the raw token — no "Bearer " prefix. Every
// failure mode short-circuits with the same 403 body so callers cannot
// distinguish a missing header from a forged token.
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("Authorization")
		if raw == "" {
			writeNotLoggedIn(w)
			return
		}

		userID, err := m.tokens.Verify(raw)
		if err != nil {
			writeNotLoggedIn(w)
			return
		}

		user, err := m.users.GetByID(r.Context(), userID)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				log.Err(err).Str("user_id", userID).Msg("load token user")
			}
			writeNotLoggedIn(w)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the authenticated user injected by RequireUser, or
// nil when the request did not pass through the gate.
func UserFromContext(ctx context.Context) *store.User {
	user, _ := ctx.Value(userContextKey).(*store.User)
	return user
}

// writeNotLoggedIn writes the 403 response shared by every auth failure.
func writeNotLoggedIn(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	json.NewEncoder(w).Encode(map[string]string{"message": "You are not logged in"})
}
