package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tschmitz/bookmarkd/internal/auth"
	"github.com/tschmitz/bookmarkd/internal/store"
)

// tagsAPIHandler provides REST handlers for tag endpoints. Tags carry no
// ownership: every authenticated caller works with the same collection.
type tagsAPIHandler struct {
	tags      *store.TagStore
	bookmarks *store.BookmarkStore
}

// registerTagRoutes registers tag routes on r.
func registerTagRoutes(r chi.Router, tags *store.TagStore, bookmarks *store.BookmarkStore) {
	h := &tagsAPIHandler{tags: tags, bookmarks: bookmarks}
	r.Get("/tags", h.List)
	r.Post("/tags", h.Create)
	r.Get("/tags/{id}", h.Get)
	r.Put("/tags/{id}", h.Update)
	r.Delete("/tags/{id}", h.Delete)
	r.Get("/tags/{id}/bookmarks", h.ListBookmarks)
}

// List returns one page of all tags.
// GET /api/tags
//
// @Summary      List tags
// @Tags         Tags
// @Accept       json
// @Produce      json
// @Param        page  query     int  false  "Zero-based page number"
// @Param        size  query     int  false  "Page size (max 100)"
// @Success      200   {object}  TagListResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tags [get]
func (h *tagsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	if auth.IdentityFromContext(r.Context()) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	page := parsePage(r)
	tags, total, err := h.tags.List(r.Context(), page)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &TagListResponse{
		Tags: make([]TagResponse, 0, len(tags)),
		Page: pageInfo(page, total),
	}
	for _, t := range tags {
		resp.Tags = append(resp.Tags, TagResponse{ID: t.ID, Title: t.Title, CreatedAt: t.CreatedAt})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create creates a new tag.
// POST /api/tags
//
// @Summary      Create a tag
// @Tags         Tags
// @Accept       json
// @Produce      json
// @Param        body  body      CreateTagRequest  true  "Tag to create"
// @Success      201   {object}  TagResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tags [post]
func (h *tagsAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	if auth.IdentityFromContext(r.Context()) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req CreateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := store.ValidateTagTitle(req.Title); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_TITLE")
		return
	}

	tag, err := h.tags.Create(r.Context(), req.Title)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusCreated, TagResponse{ID: tag.ID, Title: tag.Title, CreatedAt: tag.CreatedAt})
}

// Get returns a single tag by ID.
// GET /api/tags/{id}
//
// @Summary      Get a tag
// @Tags         Tags
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Tag ID"
// @Success      200  {object}  TagResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tags/{id} [get]
func (h *tagsAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	if auth.IdentityFromContext(r.Context()) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	tag, err := h.tags.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, TagResponse{ID: tag.ID, Title: tag.Title, CreatedAt: tag.CreatedAt})
}

// Update renames a tag.
// PUT /api/tags/{id}
//
// @Summary      Rename a tag
// @Tags         Tags
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Tag ID"
// @Param        body  body      CreateTagRequest  true  "New title"
// @Success      200   {object}  TagResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tags/{id} [put]
func (h *tagsAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	if auth.IdentityFromContext(r.Context()) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req CreateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if err := store.ValidateTagTitle(req.Title); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_TITLE")
		return
	}

	tag, err := h.tags.Rename(r.Context(), chi.URLParam(r, "id"), req.Title)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, TagResponse{ID: tag.ID, Title: tag.Title, CreatedAt: tag.CreatedAt})
}

// Delete removes a tag. The association rows cascade away, so the tag
// disappears from every bookmark that referenced it.
// DELETE /api/tags/{id}
//
// @Summary      Delete a tag
// @Tags         Tags
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Tag ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tags/{id} [delete]
func (h *tagsAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if auth.IdentityFromContext(r.Context()) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	err := h.tags.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListBookmarks returns one page of the caller's bookmarks carrying the tag.
// The listing is owner-scoped even though the tag itself is shared.
// GET /api/tags/{id}/bookmarks
//
// @Summary      List the caller's bookmarks for a tag
// @Tags         Tags
// @Accept       json
// @Produce      json
// @Param        id    path      string  true   "Tag ID"
// @Param        page  query     int     false  "Zero-based page number"
// @Param        size  query     int     false  "Page size (max 100)"
// @Success      200   {object}  BookmarkListResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tags/{id}/bookmarks [get]
func (h *tagsAPIHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	callerID := auth.IdentityFromContext(r.Context())
	if callerID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	tag, err := h.tags.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	page := parsePage(r)
	bookmarks, total, err := h.bookmarks.ListByOwnerAndTag(r.Context(), callerID, tag.ID, page)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &BookmarkListResponse{
		Bookmarks: make([]*BookmarkResponse, 0, len(bookmarks)),
		Page:      pageInfo(page, total),
	}
	for _, b := range bookmarks {
		resp.Bookmarks = append(resp.Bookmarks, &BookmarkResponse{
			ID:        b.ID,
			OwnerID:   b.OwnerID,
			Title:     b.Title,
			Href:      b.Href,
			Icon:      b.Icon,
			Tags:      []TagResponse{},
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
