package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
	"github.com/inkwell-edu/inkwell/internal/platform/service"
	"github.com/inkwell-edu/inkwell/pkg/httpx"
	"github.com/inkwell-edu/inkwell/pkg/learnsdk"
	"github.com/inkwell-edu/inkwell/pkg/slogx"
)

type BookmarksHandler struct {
	BookmarkService *service.BookmarkService
}

// HandleList godoc
//
//	@Summary		List bookmarks
//	@Description	Returns every bookmark the authenticated user holds.
//	@Tags			Bookmarks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		learnsdk.Bookmark		"User's bookmarks"
//	@Failure		401	{object}	learnsdk.ErrorResponse	"Access token required"
//	@Failure		403	{object}	learnsdk.ErrorResponse	"Invalid or expired access token"
//	@Router			/v1/bookmarks [get].
func (h *BookmarksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	bookmarks, err := h.BookmarkService.List(ctx, userID)
	if err != nil {
		log.Error("failed to list bookmarks", "user_id", userID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
		return
	}

	out := make([]learnsdk.Bookmark, 0, len(bookmarks))
	for _, b := range bookmarks {
		out = append(out, learnsdk.Bookmark{
			ID:       b.ID,
			ItemType: string(b.Item.Type),
			ItemID:   b.Item.ID,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleToggle godoc
//
//	@Summary		Toggle a bookmark
//	@Description	Bookmarks the item if absent, removes the bookmark if present. itemType must be one of Video, Note, Quiz or Summary.
//	@Tags			Bookmarks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		learnsdk.BookmarkRequest	true	"Item to toggle"
//	@Success		200		{object}	learnsdk.BookmarkResponse	"Post-toggle state"
//	@Failure		400		{object}	learnsdk.ErrorResponse		"Invalid item type"
//	@Failure		404		{object}	learnsdk.ErrorResponse		"Referenced item does not exist"
//	@Router			/v1/bookmarks [post].
func (h *BookmarksHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req learnsdk.BookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	userID := httpx.UserIDFromContext(ctx)
	item := domain.ItemRef{Type: domain.ItemType(req.ItemType), ID: req.ItemID}

	bookmarked, err := h.BookmarkService.Toggle(ctx, userID, item)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidItemType):
			httpx.WriteError(w, http.StatusBadRequest, "Invalid item type")
		case errors.Is(err, service.ErrItemNotFound):
			httpx.WriteError(w, http.StatusNotFound, "Item not found")
		default:
			log.Error("bookmark toggle failed", "user_id", userID, "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, learnsdk.BookmarkResponse{Bookmarked: bookmarked})
}
