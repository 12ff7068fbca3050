package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/brainbox-app/brainbox/internal/auth"
	"github.com/brainbox-app/brainbox/internal/metrics"
	"github.com/brainbox-app/brainbox/internal/store"
)

// brainHandler provides share-link management plus the public read-only view.
type brainHandler struct {
	shares  *store.ShareStore
	content *store.ContentStore
	users   *store.UserStore
}

// registerShareRoute registers the authenticated share toggle on r.
func registerShareRoute(r chi.Router, shares *store.ShareStore) {
	h := &brainHandler{shares: shares}
	r.Post("/brain/share", h.Share)
}

// registerPublicBrainRoute registers the unauthenticated share lookup on r.
func registerPublicBrainRoute(r chi.Router, shares *store.ShareStore, content *store.ContentStore, users *store.UserStore) {
	h := &brainHandler{shares: shares, content: content, users: users}
	r.Get("/brain/{shareLink}", h.Resolve)
}

// Share enables or disables the caller's public share link. Enabling is
// idempotent: an existing hash is returned as-is. Disabling confirms whether
// or not a link existed.
// POST /api/v1/brain/share
//
// @Summary      Toggle share link
// @Description  Enables (share=true) or disables (share=false) the caller's public share link.
// @Tags         Brain
// @Accept       json
// @Produce      json
// @Param        body  body      ShareRequest  true  "Desired share state"
// @Success      200   {object}  HashResponse
// @Failure      403   {object}  MessageResponse
// @Router       /brain/share [post]
func (h *brainHandler) Share(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeMessage(w, http.StatusForbidden, "You are not logged in")
		return
	}

	var req ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !req.Share {
		if err := h.shares.DeleteByOwner(r.Context(), user.ID); err != nil {
			log.Err(err).Str("user_id", user.ID).Msg("delete share link")
			writeMessage(w, http.StatusInternalServerError, "Something went wrong")
			return
		}
		writeMessage(w, http.StatusOK, "Removed link")
		return
	}

	existing, err := h.shares.GetByOwner(r.Context(), user.ID)
	if err == nil {
		writeJSON(w, http.StatusOK, HashResponse{Hash: existing.Hash})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Err(err).Str("user_id", user.ID).Msg("look up share link")
		writeMessage(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	link, err := h.shares.Create(r.Context(), user.ID)
	if errors.Is(err, store.ErrShareExists) {
		// Lost a race against a concurrent enable; the winner's hash is the
		// one to return.
		link, err = h.shares.GetByOwner(r.Context(), user.ID)
	}
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("create share link")
		writeMessage(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, HashResponse{Hash: link.Hash})
}

// Resolve serves the public read-only view of a shared brain.
// GET /api/v1/brain/{shareLink}
//
// @Summary      Fetch a shared brain
// @Description  Looks up a share hash and returns the owner's username and content.
// @Tags         Brain
// @Produce      json
// @Param        shareLink  path      string  true  "Share hash"
// @Success      200        {object}  SharedBrainResponse
// @Failure      404        {object}  MessageResponse
// @Router       /brain/{shareLink} [get]
func (h *brainHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "shareLink")

	link, err := h.shares.GetByHash(r.Context(), hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.ShareLookupsTotal.WithLabelValues("miss").Inc()
			writeMessage(w, http.StatusNotFound, "Share link not found")
			return
		}
		log.Err(err).Msg("look up share hash")
		writeMessage(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	// The owner row should always exist given the foreign key; treat a
	// missing one as an unknown link rather than crashing.
	owner, err := h.users.GetByID(r.Context(), link.OwnerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.ShareLookupsTotal.WithLabelValues("miss").Inc()
			writeMessage(w, http.StatusNotFound, "Share link not found")
			return
		}
		log.Err(err).Str("user_id", link.OwnerID).Msg("load share owner")
		writeMessage(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	items, err := h.content.ListByOwner(r.Context(), owner.ID)
	if err != nil {
		log.Err(err).Str("user_id", owner.ID).Msg("list shared content")
		writeMessage(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	metrics.ShareLookupsTotal.WithLabelValues("hit").Inc()
	writeJSON(w, http.StatusOK, SharedBrainResponse{
		Username: owner.Username,
		Content:  toContentItems(items),
	})
}
