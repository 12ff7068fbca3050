package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/brainbox-app/brainbox/internal/auth"
	"github.com/brainbox-app/brainbox/internal/metrics"
	"github.com/brainbox-app/brainbox/internal/store"
)

// contentHandler provides the authenticated content endpoints.
type contentHandler struct {
	content *store.ContentStore
}

// registerContentRoutes registers content routes on r. The caller mounts
// these inside the auth-gated group; every mutating operation goes through
// the same gate, deletion included.
func registerContentRoutes(r chi.Router, content *store.ContentStore) {
	h := &contentHandler{content: content}
	r.Post("/content", h.Create)
	r.Get("/content", h.List)
	r.Delete("/content", h.Delete)
}

// Create saves a content item owned by the authenticated user.
// POST /api/v1/content
//
// @Summary      Add content
// @Description  Saves a {link, type, title} item owned by the caller.
// @Tags         Content
// @Accept       json
// @Produce      json
// @Param        body  body      CreateContentRequest  true  "Content to save"
// @Success      200   {object}  MessageResponse
// @Failure      403   {object}  MessageResponse
// @Router       /content [post]
func (h *contentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeMessage(w, http.StatusForbidden, "You are not logged in")
		return
	}

	var req CreateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.content.Create(r.Context(), req.Title, req.Link, req.Type, user.ID); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("create content")
		writeMessage(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	metrics.ContentCreatedTotal.Inc()
	writeMessage(w, http.StatusOK, "Content Added")
}

// List returns all of the caller's content with the owner username joined in.
// GET /api/v1/content
//
// @Summary      List content
// @Description  Returns every content item owned by the caller.
// @Tags         Content
// @Produce      json
// @Success      200  {object}  ContentListResponse
// @Failure      403  {object}  MessageResponse
// @Router       /content [get]
func (h *contentHandler) List(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeMessage(w, http.StatusForbidden, "You are not logged in")
		return
	}

	items, err := h.content.ListByOwner(r.Context(), user.ID)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("list content")
		writeMessage(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, ContentListResponse{Content: toContentItems(items)})
}

// Delete removes the caller's content item matching the given id. Deleting an
// id that does not exist, or that belongs to someone else, still confirms.
// DELETE /api/v1/content
//
// @Summary      Delete content
// @Description  Deletes the caller's content item matching contentId.
// @Tags         Content
// @Accept       json
// @Produce      json
// @Param        body  body      DeleteContentRequest  true  "Content id"
// @Success      200   {object}  MessageResponse
// @Failure      403   {object}  MessageResponse
// @Router       /content [delete]
func (h *contentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeMessage(w, http.StatusForbidden, "You are not logged in")
		return
	}

	var req DeleteContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.content.Delete(r.Context(), req.ContentID, user.ID); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("delete content")
		writeMessage(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	writeMessage(w, http.StatusOK, "Deleted")
}

// toContentItems converts store rows to the wire shape. Tags are always
// emitted as an empty array, never null.
func toContentItems(items []*store.ContentWithOwner) []ContentItem {
	out := make([]ContentItem, 0, len(items))
	for _, c := range items {
		out = append(out, ContentItem{
			ID:       c.ID,
			Title:    c.Title,
			Link:     c.Link,
			Type:     c.Type,
			Tags:     []string{},
			Username: c.Username,
		})
	}
	return out
}
