package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/tschmitz/bookmarkd/internal/api"
	"github.com/tschmitz/bookmarkd/internal/auth"
	"github.com/tschmitz/bookmarkd/internal/store"
	"github.com/tschmitz/bookmarkd/internal/testutil"
)

// testEnv holds all stores and helpers needed for API integration tests.
type testEnv struct {
	Router    http.Handler
	Bookmarks *store.BookmarkStore
	Tags      *store.TagStore
	Tokens    *auth.SQLTokenStore
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires up the full API router with real stores.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	bookmarks := store.NewBookmarkStore(db)
	tags := store.NewTagStore(db)
	ownership := store.NewOwnershipPolicy(bookmarks)
	tokens := auth.NewSQLTokenStore(db)

	router := api.NewRouter(api.Deps{
		BearerAuth:    auth.NewBearerMiddleware(tokens, nil),
		BookmarkStore: bookmarks,
		TagStore:      tags,
		Ownership:     ownership,
		TokenStore:    tokens,
	})

	return &testEnv{
		Router:    router,
		Bookmarks: bookmarks,
		Tags:      tags,
		Tokens:    tokens,
	}
}

// seedToken creates a real API token for a user and returns the plaintext Bearer value.
func seedToken(t *testing.T, env *testEnv, userID string) string {
	t.Helper()
	plaintext, hash, err := auth.GenerateToken()
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	_, err = env.Tokens.Create(context.Background(), userID, "test-token", hash, nil)
	if err != nil {
		t.Fatalf("create token: %v", err)
	}
	return plaintext
}

// authRequest adds a Bearer token to the request.
func authRequest(r *http.Request, token string) *http.Request {
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}
