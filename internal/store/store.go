package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a requested entity does not exist, or is
	// hidden from the caller by the ownership policy.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated is returned when an operation requires a caller
	// identity and none was resolved for the request.
	ErrUnauthenticated = errors.New("no caller identity")
)

// Page describes a zero-based page request.
type Page struct {
	Number int
	Size   int
}

// LimitOffset translates the page request into SQL LIMIT/OFFSET values.
func (p Page) LimitOffset() (limit, offset int) {
	return p.Size, p.Number * p.Size
}

// TotalPages returns ceil(total / p.Size) for the given element count.
func (p Page) TotalPages(total int) int {
	if p.Size <= 0 {
		return 0
	}
	return (total + p.Size - 1) / p.Size
}

// BookmarkStoreIface exposes all bookmark data operations.
// No handler may query the DB directly; all access goes through this interface.
type BookmarkStoreIface interface {
	Create(ctx context.Context, ownerID, title, href, icon string) (*Bookmark, error)
	GetByID(ctx context.Context, id string) (*Bookmark, error)
	ListByOwner(ctx context.Context, ownerID string, page Page) ([]*Bookmark, int, error)
	Update(ctx context.Context, id, title, href, icon string) (*Bookmark, error)
	Delete(ctx context.Context, id string) error
	AttachTag(ctx context.Context, bookmarkID, tagID string) error
	DetachTag(ctx context.Context, bookmarkID, tagID string) error
	ListTags(ctx context.Context, bookmarkID string) ([]*Tag, error)
	ListByOwnerAndTag(ctx context.Context, ownerID, tagID string, page Page) ([]*Bookmark, int, error)
}

// TagStoreIface exposes tag operations. Tags carry no ownership; every
// authenticated caller sees and mutates the same tag collection.
type TagStoreIface interface {
	Create(ctx context.Context, title string) (*Tag, error)
	GetByID(ctx context.Context, id string) (*Tag, error)
	List(ctx context.Context, page Page) ([]*Tag, int, error)
	Rename(ctx context.Context, id, title string) (*Tag, error)
	Delete(ctx context.Context, id string) error
}
