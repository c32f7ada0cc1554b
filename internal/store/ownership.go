package store

import "context"

// OwnershipPolicy gates every bookmark operation on whether the acting caller
// is the bookmark's owner. It is invoked explicitly by each CRUD handler;
// ownership is never trusted from client input.
//
// A bookmark owned by someone else is reported as ErrNotFound, exactly like a
// bookmark that does not exist. Read, update, and delete share this uniform
// outcome so an id probe cannot reveal whether a foreign bookmark exists.
type OwnershipPolicy struct {
	bookmarks *BookmarkStore
}

func NewOwnershipPolicy(bookmarks *BookmarkStore) *OwnershipPolicy {
	return &OwnershipPolicy{bookmarks: bookmarks}
}

// AuthorizeCreate permits creation for any authenticated caller. The caller
// identity it accepts becomes the owner; any owner field a client submitted
// must already have been discarded before this point.
func (p *OwnershipPolicy) AuthorizeCreate(callerID string) error {
	if callerID == "" {
		return ErrUnauthenticated
	}
	return nil
}

// AuthorizeRead returns the bookmark only if it exists and is owned by
// callerID. Missing and foreign bookmarks are both ErrNotFound.
func (p *OwnershipPolicy) AuthorizeRead(ctx context.Context, bookmarkID, callerID string) (*Bookmark, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	b, err := p.bookmarks.GetByID(ctx, bookmarkID)
	if err != nil {
		return nil, err
	}
	if b.OwnerID != callerID {
		return nil, ErrNotFound
	}
	return b, nil
}

// AuthorizeWrite is the mutation-side counterpart of AuthorizeRead. Update
// and delete handlers call it before touching the row; it carries the same
// uniform not-found outcome for foreign bookmarks.
func (p *OwnershipPolicy) AuthorizeWrite(ctx context.Context, bookmarkID, callerID string) (*Bookmark, error) {
	return p.AuthorizeRead(ctx, bookmarkID, callerID)
}
