package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/brainbox-app/brainbox/internal/api"
	"github.com/brainbox-app/brainbox/internal/store"
)

func TestShareEnable_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, testUsername, testPassword)
	token := seedToken(t, env, user.ID)

	first := doJSON(t, env, "POST", "/api/v1/brain/share", api.ShareRequest{Share: true}, token)
	if first.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", first.Code, http.StatusOK, first.Body.String())
	}
	var firstBody api.HashResponse
	decodeBody(t, first, &firstBody)
	if len(firstBody.Hash) != store.ShareHashLength {
		t.Fatalf("len(hash) = %d, want %d", len(firstBody.Hash), store.ShareHashLength)
	}

	second := doJSON(t, env, "POST", "/api/v1/brain/share", api.ShareRequest{Share: true}, token)
	if second.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", second.Code, http.StatusOK)
	}
	var secondBody api.HashResponse
	decodeBody(t, second, &secondBody)
	if secondBody.Hash != firstBody.Hash {
		t.Errorf("second enable hash = %q, want %q", secondBody.Hash, firstBody.Hash)
	}
}

func TestShareDisable(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, testUsername, testPassword)
	token := seedToken(t, env, user.ID)

	enable := doJSON(t, env, "POST", "/api/v1/brain/share", api.ShareRequest{Share: true}, token)
	var enabled api.HashResponse
	decodeBody(t, enable, &enabled)

	disable := doJSON(t, env, "POST", "/api/v1/brain/share", api.ShareRequest{Share: false}, token)
	if disable.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", disable.Code, http.StatusOK)
	}
	if got := message(t, disable); got != "Removed link" {
		t.Errorf("message = %q, want %q", got, "Removed link")
	}

	// The old hash no longer resolves.
	lookup := doJSON(t, env, "GET", "/api/v1/brain/"+enabled.Hash, nil, "")
	if lookup.Code != http.StatusNotFound {
		t.Fatalf("lookup status = %d, want %d", lookup.Code, http.StatusNotFound)
	}

	// Disabling with no active link still confirms.
	again := doJSON(t, env, "POST", "/api/v1/brain/share", api.ShareRequest{Share: false}, token)
	if again.Code != http.StatusOK {
		t.Fatalf("second disable status = %d, want %d", again.Code, http.StatusOK)
	}

	// Re-enabling produces a fresh valid hash.
	reenable := doJSON(t, env, "POST", "/api/v1/brain/share", api.ShareRequest{Share: true}, token)
	var renewed api.HashResponse
	decodeBody(t, reenable, &renewed)
	if len(renewed.Hash) != store.ShareHashLength {
		t.Fatalf("len(new hash) = %d, want %d", len(renewed.Hash), store.ShareHashLength)
	}
	relookup := doJSON(t, env, "GET", "/api/v1/brain/"+renewed.Hash, nil, "")
	if relookup.Code != http.StatusOK {
		t.Fatalf("relookup status = %d, want %d", relookup.Code, http.StatusOK)
	}
}

func TestShareToggle_NoToken(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(t, env, "POST", "/api/v1/brain/share", api.ShareRequest{Share: true}, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestBrainResolve(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, testUsername, testPassword)

	ctx := context.Background()
	if _, err := env.ContentStore.Create(ctx, "shared item", "https://example.com", "article", user.ID); err != nil {
		t.Fatalf("create content: %v", err)
	}
	link, err := env.ShareStore.Create(ctx, user.ID)
	if err != nil {
		t.Fatalf("create share link: %v", err)
	}

	rec := doJSON(t, env, "GET", "/api/v1/brain/"+link.Hash, nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var body api.SharedBrainResponse
	decodeBody(t, rec, &body)
	if body.Username != testUsername {
		t.Errorf("username = %q, want %q", body.Username, testUsername)
	}
	if len(body.Content) != 1 {
		t.Fatalf("len(content) = %d, want 1", len(body.Content))
	}
	if body.Content[0].Title != "shared item" {
		t.Errorf("title = %q, want %q", body.Content[0].Title, "shared item")
	}
}

func TestBrainResolve_UnknownHash(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(t, env, "GET", "/api/v1/brain/0000000000", nil, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

// TestEndToEnd walks the whole flow through the public API only: signup,
// signin, save content, list it, enable sharing, and fetch the shared brain
// without credentials.
func TestEndToEnd(t *testing.T) {
	env := newTestEnv(t)

	signup := doJSON(t, env, "POST", "/api/v1/signup", api.CredentialsRequest{
		Username: testUsername,
		Password: testPassword,
	}, "")
	if signup.Code != http.StatusOK {
		t.Fatalf("signup status = %d: %s", signup.Code, signup.Body.String())
	}

	signin := doJSON(t, env, "POST", "/api/v1/signin", api.CredentialsRequest{
		Username: testUsername,
		Password: testPassword,
	}, "")
	if signin.Code != http.StatusOK {
		t.Fatalf("signin status = %d: %s", signin.Code, signin.Body.String())
	}
	var auth api.TokenResponse
	decodeBody(t, signin, &auth)

	create := doJSON(t, env, "POST", "/api/v1/content", api.CreateContentRequest{
		Link:  "https://go.dev/doc",
		Type:  "article",
		Title: "Go docs",
	}, auth.Token)
	if create.Code != http.StatusOK {
		t.Fatalf("create status = %d: %s", create.Code, create.Body.String())
	}

	list := doJSON(t, env, "GET", "/api/v1/content", nil, auth.Token)
	var listed api.ContentListResponse
	decodeBody(t, list, &listed)
	if len(listed.Content) != 1 {
		t.Fatalf("len(content) = %d, want 1", len(listed.Content))
	}

	share := doJSON(t, env, "POST", "/api/v1/brain/share", api.ShareRequest{Share: true}, auth.Token)
	var shared api.HashResponse
	decodeBody(t, share, &shared)
	if len(shared.Hash) != store.ShareHashLength {
		t.Fatalf("len(hash) = %d, want %d", len(shared.Hash), store.ShareHashLength)
	}

	public := doJSON(t, env, "GET", "/api/v1/brain/"+shared.Hash, nil, "")
	if public.Code != http.StatusOK {
		t.Fatalf("public fetch status = %d: %s", public.Code, public.Body.String())
	}
	var brain api.SharedBrainResponse
	decodeBody(t, public, &brain)
	if brain.Username != testUsername {
		t.Errorf("username = %q, want %q", brain.Username, testUsername)
	}
	if len(brain.Content) != 1 || brain.Content[0].Title != "Go docs" {
		t.Errorf("content = %+v, want the single saved item", brain.Content)
	}
}
