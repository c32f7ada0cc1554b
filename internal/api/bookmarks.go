package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tschmitz/bookmarkd/internal/auth"
	"github.com/tschmitz/bookmarkd/internal/metrics"
	"github.com/tschmitz/bookmarkd/internal/store"
)

// bookmarksAPIHandler provides REST handlers for bookmark management.
// Every operation goes through the ownership policy before touching a row.
type bookmarksAPIHandler struct {
	bookmarks *store.BookmarkStore
	tags      *store.TagStore
	policy    *store.OwnershipPolicy
}

// registerBookmarkRoutes registers bookmark and tag-association routes on r.
func registerBookmarkRoutes(r chi.Router, bookmarks *store.BookmarkStore, tags *store.TagStore, policy *store.OwnershipPolicy) {
	h := &bookmarksAPIHandler{bookmarks: bookmarks, tags: tags, policy: policy}
	r.Get("/bookmarks", h.List)
	r.Post("/bookmarks", h.Create)
	r.Get("/bookmarks/{id}", h.Get)
	r.Put("/bookmarks/{id}", h.Update)
	r.Delete("/bookmarks/{id}", h.Delete)
	r.Get("/bookmarks/{id}/tags", h.ListTags)
	r.Put("/bookmarks/{id}/tags/{tagID}", h.AttachTag)
	r.Delete("/bookmarks/{id}/tags/{tagID}", h.DetachTag)
}

// List returns one page of the caller's own bookmarks. The total count is
// scoped to the caller, never global.
// GET /api/bookmarks
//
// @Summary      List bookmarks
// @Description  Returns the caller's bookmarks with page metadata.
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        page  query     int  false  "Zero-based page number"
// @Param        size  query     int  false  "Page size (max 100)"
// @Success      200   {object}  BookmarkListResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /bookmarks [get]
func (h *bookmarksAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID := auth.IdentityFromContext(r.Context())
	if callerID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	page := parsePage(r)
	bookmarks, total, err := h.bookmarks.ListByOwner(r.Context(), callerID, page)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &BookmarkListResponse{
		Bookmarks: make([]*BookmarkResponse, 0, len(bookmarks)),
		Page:      pageInfo(page, total),
	}
	for _, b := range bookmarks {
		br, err := h.toBookmarkResponse(r.Context(), b)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
			return
		}
		resp.Bookmarks = append(resp.Bookmarks, br)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create creates a new bookmark owned by the caller. Any owner field in the
// payload is discarded; the stored owner is always the resolved identity.
// POST /api/bookmarks
//
// @Summary      Create a bookmark
// @Description  Creates a bookmark. The caller becomes the owner; client-supplied owner fields are ignored.
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        body  body      CreateBookmarkRequest  true  "Bookmark to create"
// @Success      201   {object}  BookmarkResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /bookmarks [post]
func (h *bookmarksAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID := auth.IdentityFromContext(r.Context())
	if err := h.policy.AuthorizeCreate(callerID); err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req CreateBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if err := store.ValidateHref(req.Href); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_HREF")
		return
	}

	bookmark, err := h.bookmarks.Create(r.Context(), callerID, req.Title, req.Href, req.Icon)
	if err != nil {
		log.Printf("api: create bookmark %q: %v", req.Href, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	metrics.BookmarksCreatedTotal.Inc()

	br, err := h.toBookmarkResponse(r.Context(), bookmark)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusCreated, br)
}

// Get returns a single bookmark by ID. A foreign bookmark reads as 404.
// GET /api/bookmarks/{id}
//
// @Summary      Get a bookmark
// @Description  Returns a bookmark by ID. Bookmarks owned by other users are indistinguishable from missing ones.
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Bookmark ID"
// @Success      200  {object}  BookmarkResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /bookmarks/{id} [get]
func (h *bookmarksAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	callerID := auth.IdentityFromContext(r.Context())

	bookmark, err := h.policy.AuthorizeRead(r.Context(), chi.URLParam(r, "id"), callerID)
	if err != nil {
		h.writePolicyError(w, err)
		return
	}

	br, err := h.toBookmarkResponse(r.Context(), bookmark)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, br)
}

// Update modifies a bookmark's title, href, and icon. The stored owner never
// changes, no matter what the payload carries.
// PUT /api/bookmarks/{id}
//
// @Summary      Update a bookmark
// @Description  Updates title, href, and icon. Owner is immutable; owner fields in the payload are ignored.
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Bookmark ID"
// @Param        body  body      UpdateBookmarkRequest  true  "Fields to update"
// @Success      200   {object}  BookmarkResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /bookmarks/{id} [put]
func (h *bookmarksAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID := auth.IdentityFromContext(r.Context())

	bookmark, err := h.policy.AuthorizeWrite(r.Context(), chi.URLParam(r, "id"), callerID)
	if err != nil {
		h.writePolicyError(w, err)
		return
	}

	var req UpdateBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if err := store.ValidateHref(req.Href); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_HREF")
		return
	}

	updated, err := h.bookmarks.Update(r.Context(), bookmark.ID, req.Title, req.Href, req.Icon)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Deleted between the policy check and the write.
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	br, err := h.toBookmarkResponse(r.Context(), updated)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, br)
}

// Delete removes a bookmark. Deleting a foreign bookmark reads as 404 and
// never mutates the row.
// DELETE /api/bookmarks/{id}
//
// @Summary      Delete a bookmark
// @Description  Deletes a bookmark by ID. Only the owner may delete; foreign bookmarks read as 404.
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Bookmark ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /bookmarks/{id} [delete]
func (h *bookmarksAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID := auth.IdentityFromContext(r.Context())

	bookmark, err := h.policy.AuthorizeWrite(r.Context(), chi.URLParam(r, "id"), callerID)
	if err != nil {
		h.writePolicyError(w, err)
		return
	}

	if err := h.bookmarks.Delete(r.Context(), bookmark.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	metrics.BookmarksDeletedTotal.Inc()

	w.WriteHeader(http.StatusNoContent)
}

// ListTags returns the tag set of an owned bookmark.
// GET /api/bookmarks/{id}/tags
//
// @Summary      List a bookmark's tags
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Bookmark ID"
// @Success      200  {array}   TagResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /bookmarks/{id}/tags [get]
func (h *bookmarksAPIHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	callerID := auth.IdentityFromContext(r.Context())

	bookmark, err := h.policy.AuthorizeRead(r.Context(), chi.URLParam(r, "id"), callerID)
	if err != nil {
		h.writePolicyError(w, err)
		return
	}

	tags, err := h.bookmarks.ListTags(r.Context(), bookmark.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		resp = append(resp, TagResponse{ID: t.ID, Title: t.Title, CreatedAt: t.CreatedAt})
	}

	writeJSON(w, http.StatusOK, resp)
}

// AttachTag associates an existing tag with an owned bookmark. Attaching an
// already-attached tag is a no-op success.
// PUT /api/bookmarks/{id}/tags/{tagID}
//
// @Summary      Attach a tag
// @Description  Associates an existing tag with the caller's bookmark. Idempotent.
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        id     path  string  true  "Bookmark ID"
// @Param        tagID  path  string  true  "Tag ID"
// @Success      204    "No Content"
// @Failure      401    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Security     BearerToken
// @Router       /bookmarks/{id}/tags/{tagID} [put]
func (h *bookmarksAPIHandler) AttachTag(w http.ResponseWriter, r *http.Request) {
	h.associateTag(w, r, true)
}

// DetachTag removes a tag from an owned bookmark's tag set. Detaching a tag
// that is not attached is a no-op success.
// DELETE /api/bookmarks/{id}/tags/{tagID}
//
// @Summary      Detach a tag
// @Description  Removes a tag from the caller's bookmark. Idempotent.
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        id     path  string  true  "Bookmark ID"
// @Param        tagID  path  string  true  "Tag ID"
// @Success      204    "No Content"
// @Failure      401    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Security     BearerToken
// @Router       /bookmarks/{id}/tags/{tagID} [delete]
func (h *bookmarksAPIHandler) DetachTag(w http.ResponseWriter, r *http.Request) {
	h.associateTag(w, r, false)
}

// associateTag is the shared attach/detach path: both referenced entities
// must exist (404 otherwise) and the bookmark must be the caller's own.
func (h *bookmarksAPIHandler) associateTag(w http.ResponseWriter, r *http.Request, attach bool) {
	callerID := auth.IdentityFromContext(r.Context())

	bookmark, err := h.policy.AuthorizeWrite(r.Context(), chi.URLParam(r, "id"), callerID)
	if err != nil {
		h.writePolicyError(w, err)
		return
	}

	tag, err := h.tags.GetByID(r.Context(), chi.URLParam(r, "tagID"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "tag not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	if attach {
		err = h.bookmarks.AttachTag(r.Context(), bookmark.ID, tag.ID)
		metrics.TagAttachTotal.WithLabelValues("attach").Inc()
	} else {
		err = h.bookmarks.DetachTag(r.Context(), bookmark.ID, tag.ID)
		metrics.TagAttachTotal.WithLabelValues("detach").Inc()
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writePolicyError maps ownership policy outcomes to HTTP responses.
func (h *bookmarksAPIHandler) writePolicyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
	case errors.Is(err, store.ErrNotFound):
		metrics.OwnershipDeniedTotal.Inc()
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
	default:
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
	}
}

// toBookmarkResponse converts a store.Bookmark to an API BookmarkResponse,
// including its tag set.
func (h *bookmarksAPIHandler) toBookmarkResponse(ctx context.Context, b *store.Bookmark) (*BookmarkResponse, error) {
	tags, err := h.bookmarks.ListTags(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	tagResponses := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		tagResponses = append(tagResponses, TagResponse{ID: t.ID, Title: t.Title, CreatedAt: t.CreatedAt})
	}

	return &BookmarkResponse{
		ID:        b.ID,
		OwnerID:   b.OwnerID,
		Title:     b.Title,
		Href:      b.Href,
		Icon:      b.Icon,
		Tags:      tagResponses,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}, nil
}
