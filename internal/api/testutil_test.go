package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brainbox-app/brainbox/internal/api"
	"github.com/brainbox-app/brainbox/internal/auth"
	"github.com/brainbox-app/brainbox/internal/store"
	"github.com/brainbox-app/brainbox/internal/testutil"
)

// testEnv holds the router and real stores wired on an in-memory SQLite
// database, mirroring the production assembly in the serve command.
type testEnv struct {
	Router       http.Handler
	Tokens       *auth.Tokens
	UserStore    *store.UserStore
	ContentStore *store.ContentStore
	ShareStore   *store.ShareStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	users := store.NewUserStore(db)
	content := store.NewContentStore(db)
	shares := store.NewShareStore(db)

	tokens := auth.NewTokens([]byte("test-secret"), time.Hour)

	router := api.NewRouter(api.Deps{
		Auth:         auth.NewMiddleware(tokens, users),
		Tokens:       tokens,
		UserStore:    users,
		ContentStore: content,
		ShareStore:   shares,
	})

	return &testEnv{
		Router:       router,
		Tokens:       tokens,
		UserStore:    users,
		ContentStore: content,
		ShareStore:   shares,
	}
}

// seedUser creates a user with the given credentials and returns the record.
func seedUser(t *testing.T, env *testEnv, username, password string) *store.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u, err := env.UserStore.Create(context.Background(), username, hash)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// seedToken issues a bearer token for userID.
func seedToken(t *testing.T, env *testEnv, userID string) string {
	t.Helper()
	token, err := env.Tokens.Issue(userID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

// doJSON performs a request with an optional JSON body and optional bearer
// token, and returns the recorded response.
func doJSON(t *testing.T, env *testEnv, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the recorded response body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
}

// message extracts the "message" field from a recorded response.
func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	decodeBody(t, rec, &body)
	msg, _ := body["message"].(string)
	return msg
}
