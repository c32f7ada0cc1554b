package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Tag represents a row in the tags table.
type Tag struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
}

// TagStore is the sqlx-backed implementation of TagStoreIface.
type TagStore struct {
	db *sqlx.DB
}

func NewTagStore(db *sqlx.DB) *TagStore {
	return &TagStore{db: db}
}

func (s *TagStore) q(query string) string { return s.db.Rebind(query) }

// Create inserts a new tag.
func (s *TagStore) Create(ctx context.Context, title string) (*Tag, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO tags (id, title, created_at) VALUES (?, ?, ?)
	`), id, title, now)
	if err != nil {
		return nil, err
	}
	return &Tag{ID: id, Title: title, CreatedAt: now}, nil
}

// GetByID returns the tag matching id, or ErrNotFound.
func (s *TagStore) GetByID(ctx context.Context, id string) (*Tag, error) {
	var t Tag
	err := s.db.GetContext(ctx, &t, s.q(`SELECT * FROM tags WHERE id = ?`), id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns one page of tags plus the total tag count.
// Ordered by title then id so repeated reads are stable.
func (s *TagStore) List(ctx context.Context, page Page) ([]*Tag, int, error) {
	var total int
	if err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM tags`); err != nil {
		return nil, 0, err
	}

	limit, offset := page.LimitOffset()
	tags := []*Tag{}
	err := s.db.SelectContext(ctx, &tags, s.q(`
		SELECT * FROM tags ORDER BY title ASC, id ASC LIMIT ? OFFSET ?
	`), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return tags, total, nil
}

// Rename sets a tag's title and returns the updated record.
func (s *TagStore) Rename(ctx context.Context, id, title string) (*Tag, error) {
	res, err := s.db.ExecContext(ctx, s.q(`UPDATE tags SET title = ? WHERE id = ?`), title, id)
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

// Delete removes a tag by ID. CASCADE deletes drop the tag out of every
// bookmark's association set.
func (s *TagStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM tags WHERE id = ?`), id)
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
