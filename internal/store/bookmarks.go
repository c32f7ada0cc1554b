package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Bookmark represents a row in the bookmarks table.
//
// OwnerID is stamped from the resolved caller identity when the row is
// created and is never written again; see OwnershipPolicy.
type Bookmark struct {
	ID        string    `db:"id"`
	OwnerID   string    `db:"owner_id"`
	Title     string    `db:"title"`
	Href      string    `db:"href"`
	Icon      string    `db:"icon"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// BookmarkStore is the sqlx-backed implementation of BookmarkStoreIface.
type BookmarkStore struct {
	db *sqlx.DB
}

func NewBookmarkStore(db *sqlx.DB) *BookmarkStore {
	return &BookmarkStore{db: db}
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *BookmarkStore) q(query string) string { return s.db.Rebind(query) }

// Create inserts a new bookmark owned by ownerID. The id and timestamps are
// assigned here; callers cannot supply them.
func (s *BookmarkStore) Create(ctx context.Context, ownerID, title, href, icon string) (*Bookmark, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO bookmarks (id, owner_id, title, href, icon, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`), id, ownerID, title, href, icon, now, now)
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// GetByID returns the bookmark matching id, or ErrNotFound. It does not
// apply ownership filtering; that is the OwnershipPolicy's concern.
func (s *BookmarkStore) GetByID(ctx context.Context, id string) (*Bookmark, error) {
	var b Bookmark
	err := s.db.GetContext(ctx, &b, s.q(`SELECT * FROM bookmarks WHERE id = ?`), id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListByOwner returns one page of ownerID's bookmarks plus the total count of
// that owner's bookmarks. The count is scoped to the owner, never global.
// Ordered by created_at then id so repeated reads are stable.
func (s *BookmarkStore) ListByOwner(ctx context.Context, ownerID string, page Page) ([]*Bookmark, int, error) {
	var total int
	err := s.db.GetContext(ctx, &total, s.q(`SELECT COUNT(*) FROM bookmarks WHERE owner_id = ?`), ownerID)
	if err != nil {
		return nil, 0, err
	}

	limit, offset := page.LimitOffset()
	bookmarks := []*Bookmark{}
	err = s.db.SelectContext(ctx, &bookmarks, s.q(`
		SELECT * FROM bookmarks
		WHERE owner_id = ?
		ORDER BY created_at ASC, id ASC
		LIMIT ? OFFSET ?
	`), ownerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return bookmarks, total, nil
}

// Update modifies an existing bookmark's title, href, and icon. The owner_id
// column is deliberately absent from the SET clause: the stored owner never
// changes via update.
func (s *BookmarkStore) Update(ctx context.Context, id, title, href, icon string) (*Bookmark, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, s.q(`
		UPDATE bookmarks SET title = ?, href = ?, icon = ?, updated_at = ? WHERE id = ?
	`), title, href, icon, now, id)
	if err != nil {
		return nil, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete removes a bookmark by ID. CASCADE deletes handle bookmark_tags.
// Returns ErrNotFound if no row matched, e.g. when a concurrent delete
// already committed.
func (s *BookmarkStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM bookmarks WHERE id = ?`), id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// AttachTag associates tagID with bookmarkID. Attaching an already-attached
// tag is a no-op success. Existence of both sides must be checked by the
// caller first; this only writes the join row.
func (s *BookmarkStore) AttachTag(ctx context.Context, bookmarkID, tagID string) error {
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO bookmark_tags (bookmark_id, tag_id) VALUES (?, ?)
	`), bookmarkID, tagID)
	if err != nil && isUniqueConstraintError(err) {
		return nil
	}
	return err
}

// DetachTag removes the association between bookmarkID and tagID. Detaching
// a tag that is not attached is a no-op success.
func (s *BookmarkStore) DetachTag(ctx context.Context, bookmarkID, tagID string) error {
	_, err := s.db.ExecContext(ctx, s.q(`
		DELETE FROM bookmark_tags WHERE bookmark_id = ? AND tag_id = ?
	`), bookmarkID, tagID)
	return err
}

// ListTags returns all tags associated with a bookmark, ordered by title.
func (s *BookmarkStore) ListTags(ctx context.Context, bookmarkID string) ([]*Tag, error) {
	tags := []*Tag{}
	err := s.db.SelectContext(ctx, &tags, s.q(`
		SELECT t.* FROM tags t
		INNER JOIN bookmark_tags bt ON bt.tag_id = t.id
		WHERE bt.bookmark_id = ?
		ORDER BY t.title ASC, t.id ASC
	`), bookmarkID)
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// ListByOwnerAndTag returns one page of ownerID's bookmarks carrying tagID,
// plus the total count with the same owner+tag filter.
func (s *BookmarkStore) ListByOwnerAndTag(ctx context.Context, ownerID, tagID string, page Page) ([]*Bookmark, int, error) {
	var total int
	err := s.db.GetContext(ctx, &total, s.q(`
		SELECT COUNT(*) FROM bookmarks b
		INNER JOIN bookmark_tags bt ON bt.bookmark_id = b.id
		WHERE b.owner_id = ? AND bt.tag_id = ?
	`), ownerID, tagID)
	if err != nil {
		return nil, 0, err
	}

	limit, offset := page.LimitOffset()
	bookmarks := []*Bookmark{}
	err = s.db.SelectContext(ctx, &bookmarks, s.q(`
		SELECT b.* FROM bookmarks b
		INNER JOIN bookmark_tags bt ON bt.bookmark_id = b.id
		WHERE b.owner_id = ? AND bt.tag_id = ?
		ORDER BY b.created_at ASC, b.id ASC
		LIMIT ? OFFSET ?
	`), ownerID, tagID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return bookmarks, total, nil
}

// isUniqueConstraintError checks whether err indicates a unique constraint violation.
// Works across SQLite, PostgreSQL, and MySQL.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || // SQLite & PostgreSQL
		strings.Contains(msg, "duplicate key") || // PostgreSQL
		strings.Contains(msg, "duplicate entry") // MySQL
}
