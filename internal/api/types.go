package api

import "time"

// ErrorResponse documents the error payload shape for the API docs.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// --- Pagination ---

// PageInfo carries page metadata on every list response.
type PageInfo struct {
	Size          int `json:"size"`
	TotalElements int `json:"total_elements"`
	TotalPages    int `json:"total_pages"`
	Number        int `json:"number"`
}

// --- Bookmark types ---

// CreateBookmarkRequest is the request body for POST /api/bookmarks.
// There is deliberately no owner field: the owner is always the caller, and
// any owner-like field a client submits is discarded on decode.
type CreateBookmarkRequest struct {
	Title string `json:"title,omitempty"`
	Href  string `json:"href"`
	Icon  string `json:"icon,omitempty"`
}

// UpdateBookmarkRequest is the request body for PUT /api/bookmarks/{id}.
// Owner is intentionally omitted (immutable after creation).
type UpdateBookmarkRequest struct {
	Title string `json:"title,omitempty"`
	Href  string `json:"href"`
	Icon  string `json:"icon,omitempty"`
}

// BookmarkResponse is the JSON representation of a single bookmark.
type BookmarkResponse struct {
	ID        string        `json:"id"`
	OwnerID   string        `json:"owner_id"`
	Title     string        `json:"title"`
	Href      string        `json:"href"`
	Icon      string        `json:"icon"`
	Tags      []TagResponse `json:"tags"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// BookmarkListResponse is the paginated response for bookmark list endpoints.
type BookmarkListResponse struct {
	Bookmarks []*BookmarkResponse `json:"bookmarks"`
	Page      PageInfo            `json:"page"`
}

// --- Tag types ---

// CreateTagRequest is the request body for POST /api/tags and PUT /api/tags/{id}.
type CreateTagRequest struct {
	Title string `json:"title"`
}

// TagResponse is the JSON representation of a tag.
type TagResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// TagListResponse is the paginated response for tag list endpoints.
type TagListResponse struct {
	Tags []TagResponse `json:"tags"`
	Page PageInfo      `json:"page"`
}

// --- Token types ---

// CreateTokenRequest is the request body for POST /api/tokens.
type CreateTokenRequest struct {
	Name      string     `json:"name"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// TokenResponse is the JSON representation of an API token.
type TokenResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	LastUsedAt *time.Time `json:"last_used_at"`
	ExpiresAt  *time.Time `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TokenCreatedResponse is returned once, on creation, with the plaintext token.
type TokenCreatedResponse struct {
	TokenResponse
	Token string `json:"token"`
}

// TokenListResponse is the response for GET /api/tokens.
type TokenListResponse struct {
	Tokens []*TokenResponse `json:"tokens"`
}

// --- Discovery ---

// RootResponse is the unauthenticated discovery index at GET /api.
type RootResponse struct {
	Bookmarks string `json:"bookmarks"`
	Tags      string `json:"tags"`
	Tokens    string `json:"tokens"`
}
