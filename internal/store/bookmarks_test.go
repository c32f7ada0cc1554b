package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tschmitz/bookmarkd/internal/store"
	"github.com/tschmitz/bookmarkd/internal/testutil"
)

func newBookmarkTestEnv(t *testing.T) (*store.BookmarkStore, *store.TagStore) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return store.NewBookmarkStore(db), store.NewTagStore(db)
}

func TestBookmarkStore_CreateAndGet(t *testing.T) {
	bs, _ := newBookmarkTestEnv(t)
	ctx := context.Background()

	created, err := bs.Create(ctx, "bud", "DZone", "https://dzone.com/", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Error("expected non-empty ID")
	}
	if created.OwnerID != "bud" {
		t.Errorf("owner = %q, want %q", created.OwnerID, "bud")
	}

	got, err := bs.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Href != "https://dzone.com/" {
		t.Errorf("href = %q, want %q", got.Href, "https://dzone.com/")
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected non-zero created_at")
	}
}

func TestBookmarkStore_GetByID_NotFound(t *testing.T) {
	bs, _ := newBookmarkTestEnv(t)

	_, err := bs.GetByID(context.Background(), "nonexistent")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetByID(nonexistent) = %v, want ErrNotFound", err)
	}
}

func TestBookmarkStore_ListByOwner_ScopedCounts(t *testing.T) {
	bs, _ := newBookmarkTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if _, err := bs.Create(ctx, "bud", "b", "https://example.com/bud", ""); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if _, err := bs.Create(ctx, "terence", "t", "https://example.com/terence", ""); err != nil {
		t.Fatalf("Create: %v", err)
	}

	budRows, budTotal, err := bs.ListByOwner(ctx, "bud", store.Page{Number: 0, Size: 20})
	if err != nil {
		t.Fatalf("ListByOwner(bud): %v", err)
	}
	if len(budRows) != 4 || budTotal != 4 {
		t.Errorf("bud rows/total = %d/%d, want 4/4", len(budRows), budTotal)
	}
	for _, b := range budRows {
		if b.OwnerID != "bud" {
			t.Errorf("owner = %q, want %q", b.OwnerID, "bud")
		}
	}

	terenceRows, terenceTotal, err := bs.ListByOwner(ctx, "terence", store.Page{Number: 0, Size: 20})
	if err != nil {
		t.Fatalf("ListByOwner(terence): %v", err)
	}
	if len(terenceRows) != 1 || terenceTotal != 1 {
		t.Errorf("terence rows/total = %d/%d, want 1/1", len(terenceRows), terenceTotal)
	}
}

func TestBookmarkStore_ListByOwner_Pagination(t *testing.T) {
	bs, _ := newBookmarkTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := bs.Create(ctx, "bud", "b", "https://example.com/", ""); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	first, total, err := bs.ListByOwner(ctx, "bud", store.Page{Number: 0, Size: 2})
	if err != nil {
		t.Fatalf("ListByOwner page 0: %v", err)
	}
	if len(first) != 2 || total != 5 {
		t.Errorf("page 0 rows/total = %d/%d, want 2/5", len(first), total)
	}

	last, _, err := bs.ListByOwner(ctx, "bud", store.Page{Number: 2, Size: 2})
	if err != nil {
		t.Fatalf("ListByOwner page 2: %v", err)
	}
	if len(last) != 1 {
		t.Errorf("page 2 rows = %d, want 1", len(last))
	}
}

func TestBookmarkStore_Update_FieldsChangeOwnerDoesNot(t *testing.T) {
	bs, _ := newBookmarkTestEnv(t)
	ctx := context.Background()

	created, err := bs.Create(ctx, "bud", "Old", "https://old.example.com/", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := bs.Update(ctx, created.ID, "New", "https://new.example.com/", "icon.png")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "New" || updated.Href != "https://new.example.com/" || updated.Icon != "icon.png" {
		t.Errorf("updated fields = %q/%q/%q", updated.Title, updated.Href, updated.Icon)
	}
	if updated.OwnerID != "bud" {
		t.Errorf("owner after update = %q, want %q", updated.OwnerID, "bud")
	}
}

func TestBookmarkStore_Update_NotFound(t *testing.T) {
	bs, _ := newBookmarkTestEnv(t)

	_, err := bs.Update(context.Background(), "nonexistent", "t", "https://example.com/", "")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Update(nonexistent) = %v, want ErrNotFound", err)
	}
}

func TestBookmarkStore_Delete(t *testing.T) {
	bs, _ := newBookmarkTestEnv(t)
	ctx := context.Background()

	created, err := bs.Create(ctx, "bud", "b", "https://example.com/", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := bs.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := bs.GetByID(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetByID after delete = %v, want ErrNotFound", err)
	}
	if err := bs.Delete(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestBookmarkStore_AttachTag_Idempotent(t *testing.T) {
	bs, ts := newBookmarkTestEnv(t)
	ctx := context.Background()

	b, err := bs.Create(ctx, "bud", "b", "https://example.com/", "")
	if err != nil {
		t.Fatalf("Create bookmark: %v", err)
	}
	tag, err := ts.Create(ctx, "golang")
	if err != nil {
		t.Fatalf("Create tag: %v", err)
	}

	if err := bs.AttachTag(ctx, b.ID, tag.ID); err != nil {
		t.Fatalf("AttachTag first: %v", err)
	}
	if err := bs.AttachTag(ctx, b.ID, tag.ID); err != nil {
		t.Fatalf("AttachTag second: %v", err)
	}

	tags, err := bs.ListTags(ctx, b.ID)
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	if len(tags) != 1 {
		t.Errorf("len(tags) = %d, want 1", len(tags))
	}
}

func TestBookmarkStore_DetachTag_NoOpWhenAbsent(t *testing.T) {
	bs, ts := newBookmarkTestEnv(t)
	ctx := context.Background()

	b, err := bs.Create(ctx, "bud", "b", "https://example.com/", "")
	if err != nil {
		t.Fatalf("Create bookmark: %v", err)
	}
	tag, err := ts.Create(ctx, "golang")
	if err != nil {
		t.Fatalf("Create tag: %v", err)
	}

	// Never attached; detach must still succeed.
	if err := bs.DetachTag(ctx, b.ID, tag.ID); err != nil {
		t.Fatalf("DetachTag absent: %v", err)
	}

	if err := bs.AttachTag(ctx, b.ID, tag.ID); err != nil {
		t.Fatalf("AttachTag: %v", err)
	}
	if err := bs.DetachTag(ctx, b.ID, tag.ID); err != nil {
		t.Fatalf("DetachTag: %v", err)
	}
	tags, err := bs.ListTags(ctx, b.ID)
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("len(tags) = %d, want 0", len(tags))
	}
}

func TestBookmarkStore_ListByOwnerAndTag(t *testing.T) {
	bs, ts := newBookmarkTestEnv(t)
	ctx := context.Background()

	tag, err := ts.Create(ctx, "shared")
	if err != nil {
		t.Fatalf("Create tag: %v", err)
	}

	budBookmark, err := bs.Create(ctx, "bud", "b", "https://example.com/bud", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	terenceBookmark, err := bs.Create(ctx, "terence", "t", "https://example.com/terence", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := bs.AttachTag(ctx, budBookmark.ID, tag.ID); err != nil {
		t.Fatalf("AttachTag: %v", err)
	}
	if err := bs.AttachTag(ctx, terenceBookmark.ID, tag.ID); err != nil {
		t.Fatalf("AttachTag: %v", err)
	}

	rows, total, err := bs.ListByOwnerAndTag(ctx, "bud", tag.ID, store.Page{Number: 0, Size: 20})
	if err != nil {
		t.Fatalf("ListByOwnerAndTag: %v", err)
	}
	if len(rows) != 1 || total != 1 {
		t.Errorf("rows/total = %d/%d, want 1/1", len(rows), total)
	}
	if len(rows) == 1 && rows[0].ID != budBookmark.ID {
		t.Errorf("row ID = %q, want %q", rows[0].ID, budBookmark.ID)
	}
}

func TestBookmarkStore_DeleteCascadesAssociations(t *testing.T) {
	bs, ts := newBookmarkTestEnv(t)
	ctx := context.Background()

	b, err := bs.Create(ctx, "bud", "b", "https://example.com/", "")
	if err != nil {
		t.Fatalf("Create bookmark: %v", err)
	}
	tag, err := ts.Create(ctx, "golang")
	if err != nil {
		t.Fatalf("Create tag: %v", err)
	}
	if err := bs.AttachTag(ctx, b.ID, tag.ID); err != nil {
		t.Fatalf("AttachTag: %v", err)
	}

	if err := bs.Delete(ctx, b.ID); err != nil {
		t.Fatalf("Delete bookmark: %v", err)
	}

	// The tag itself survives; only the association row goes away.
	if _, err := ts.GetByID(ctx, tag.ID); err != nil {
		t.Errorf("GetByID tag after bookmark delete: %v", err)
	}
	rows, total, err := bs.ListByOwnerAndTag(ctx, "bud", tag.ID, store.Page{Number: 0, Size: 20})
	if err != nil {
		t.Fatalf("ListByOwnerAndTag: %v", err)
	}
	if len(rows) != 0 || total != 0 {
		t.Errorf("rows/total = %d/%d, want 0/0", len(rows), total)
	}
}

func TestBookmarkStore_TagDeleteCascadesAssociations(t *testing.T) {
	bs, ts := newBookmarkTestEnv(t)
	ctx := context.Background()

	b, err := bs.Create(ctx, "bud", "b", "https://example.com/", "")
	if err != nil {
		t.Fatalf("Create bookmark: %v", err)
	}
	tag, err := ts.Create(ctx, "doomed")
	if err != nil {
		t.Fatalf("Create tag: %v", err)
	}
	if err := bs.AttachTag(ctx, b.ID, tag.ID); err != nil {
		t.Fatalf("AttachTag: %v", err)
	}

	if err := ts.Delete(ctx, tag.ID); err != nil {
		t.Fatalf("Delete tag: %v", err)
	}

	tags, err := bs.ListTags(ctx, b.ID)
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("len(tags) after tag delete = %d, want 0", len(tags))
	}
}
