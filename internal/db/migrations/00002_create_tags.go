package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateTags, downCreateTags)
}

func upCreateTags(ctx context.Context, tx *sql.Tx) error {
	var tagsDDL, joinDDL string
	switch dialect {
	case "postgres":
		tagsDDL = `CREATE TABLE IF NOT EXISTS tags (
    id         TEXT PRIMARY KEY,
    title      TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
)`
		joinDDL = `CREATE TABLE IF NOT EXISTS bookmark_tags (
    bookmark_id TEXT NOT NULL REFERENCES bookmarks(id) ON DELETE CASCADE,
    tag_id      TEXT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
    PRIMARY KEY (bookmark_id, tag_id)
)`
	case "mysql":
		tagsDDL = `CREATE TABLE IF NOT EXISTS tags (
    id         VARCHAR(36) PRIMARY KEY,
    title      TEXT NOT NULL,
    created_at TIMESTAMP(6) NOT NULL
)`
		joinDDL = `CREATE TABLE IF NOT EXISTS bookmark_tags (
    bookmark_id VARCHAR(36) NOT NULL,
    tag_id      VARCHAR(36) NOT NULL,
    PRIMARY KEY (bookmark_id, tag_id),
    FOREIGN KEY (bookmark_id) REFERENCES bookmarks(id) ON DELETE CASCADE,
    FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE
)`
	default: // sqlite3
		tagsDDL = `CREATE TABLE IF NOT EXISTS tags (
    id         TEXT PRIMARY KEY,
    title      TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
)`
		joinDDL = `CREATE TABLE IF NOT EXISTS bookmark_tags (
    bookmark_id TEXT NOT NULL REFERENCES bookmarks(id) ON DELETE CASCADE,
    tag_id      TEXT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
    PRIMARY KEY (bookmark_id, tag_id)
)`
	}
	if _, err := tx.ExecContext(ctx, tagsDDL); err != nil {
		return fmt.Errorf("create tags table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, joinDDL); err != nil {
		return fmt.Errorf("create bookmark_tags table: %w", err)
	}
	// Inverse side of the association: all bookmarks carrying a tag.
	_, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS bookmark_tags_tag_idx ON bookmark_tags (tag_id)`)
	return err
}

func downCreateTags(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS bookmark_tags`); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS tags`)
	return err
}
