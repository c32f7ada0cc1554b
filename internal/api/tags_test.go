package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tschmitz/bookmarkd/internal/api"
)

func TestTags_Create_Created(t *testing.T) {
	env := newTestEnv(t)
	token := seedToken(t, env, "bud")

	body := `{"title":"golang"}`
	req := httptest.NewRequest("POST", "/api/tags", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp api.TagResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected non-empty ID")
	}
	if resp.Title != "golang" {
		t.Errorf("title = %q, want %q", resp.Title, "golang")
	}
}

func TestTags_Create_MissingTitle(t *testing.T) {
	env := newTestEnv(t)
	token := seedToken(t, env, "bud")

	req := httptest.NewRequest("POST", "/api/tags", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestTags_List_SharedAcrossUsers(t *testing.T) {
	env := newTestEnv(t)
	terenceToken := seedToken(t, env, "terence")

	// Tags carry no owner: a tag anyone creates is visible to everyone.
	if _, err := env.Tags.Create(context.Background(), "created-by-bud"); err != nil {
		t.Fatalf("seed tag: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/tags", nil)
	authRequest(req, terenceToken)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp api.TagListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Tags) != 1 || resp.Tags[0].Title != "created-by-bud" {
		t.Errorf("tags = %+v, want the shared tag", resp.Tags)
	}
}

func TestTags_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)
	token := seedToken(t, env, "bud")

	req := httptest.NewRequest("GET", "/api/tags/nonexistent", nil)
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestTags_Update_Renames(t *testing.T) {
	env := newTestEnv(t)
	token := seedToken(t, env, "bud")

	tag, err := env.Tags.Create(context.Background(), "old")
	if err != nil {
		t.Fatalf("seed tag: %v", err)
	}

	body := `{"title":"new"}`
	req := httptest.NewRequest("PUT", "/api/tags/"+tag.ID, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp api.TagResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Title != "new" {
		t.Errorf("title = %q, want %q", resp.Title, "new")
	}
}

func TestTags_Delete_DetachesFromBookmarks(t *testing.T) {
	env := newTestEnv(t)
	token := seedToken(t, env, "bud")
	ctx := context.Background()

	b, err := env.Bookmarks.Create(ctx, "bud", "b", "https://example.com/", "")
	if err != nil {
		t.Fatalf("seed bookmark: %v", err)
	}
	tag, err := env.Tags.Create(ctx, "doomed")
	if err != nil {
		t.Fatalf("seed tag: %v", err)
	}
	if err := env.Bookmarks.AttachTag(ctx, b.ID, tag.ID); err != nil {
		t.Fatalf("AttachTag: %v", err)
	}

	req := httptest.NewRequest("DELETE", "/api/tags/"+tag.ID, nil)
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}

	tags, err := env.Bookmarks.ListTags(ctx, b.ID)
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("len(tags) after tag delete = %d, want 0", len(tags))
	}
}

func TestTags_ListBookmarks_ScopedToCaller(t *testing.T) {
	env := newTestEnv(t)
	budToken := seedToken(t, env, "bud")
	terenceToken := seedToken(t, env, "terence")
	ctx := context.Background()

	tag, err := env.Tags.Create(ctx, "shared")
	if err != nil {
		t.Fatalf("seed tag: %v", err)
	}
	budBookmark, err := env.Bookmarks.Create(ctx, "bud", "b", "https://example.com/bud", "")
	if err != nil {
		t.Fatalf("seed bookmark: %v", err)
	}
	terenceBookmark, err := env.Bookmarks.Create(ctx, "terence", "t", "https://example.com/terence", "")
	if err != nil {
		t.Fatalf("seed bookmark: %v", err)
	}
	if err := env.Bookmarks.AttachTag(ctx, budBookmark.ID, tag.ID); err != nil {
		t.Fatalf("AttachTag: %v", err)
	}
	if err := env.Bookmarks.AttachTag(ctx, terenceBookmark.ID, tag.ID); err != nil {
		t.Fatalf("AttachTag: %v", err)
	}

	tests := []struct {
		token string
		owner string
		want  string
	}{
		{budToken, "bud", budBookmark.ID},
		{terenceToken, "terence", terenceBookmark.ID},
	}
	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/api/tags/"+tag.ID+"/bookmarks", nil)
		authRequest(req, tt.token)
		rec := httptest.NewRecorder()
		env.Router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
		}

		var resp api.BookmarkListResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(resp.Bookmarks) != 1 {
			t.Fatalf("%s: len(bookmarks) = %d, want 1", tt.owner, len(resp.Bookmarks))
		}
		if resp.Bookmarks[0].ID != tt.want {
			t.Errorf("%s: bookmark = %q, want %q", tt.owner, resp.Bookmarks[0].ID, tt.want)
		}
	}
}

func TestTags_Unauthenticated(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest("GET", "/api/tags", nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
