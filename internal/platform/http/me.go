package http

import (
	"net/http"

	"github.com/inkwell-edu/inkwell/internal/platform/service"
	"github.com/inkwell-edu/inkwell/pkg/httpx"
	"github.com/inkwell-edu/inkwell/pkg/learnsdk"
	"github.com/inkwell-edu/inkwell/pkg/slogx"
)

type MeHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles the current-user profile endpoint.
//
//	@Summary		Get the authenticated user
//	@Description	Returns the profile of the user the access token belongs to. The role comes from the database, not the token.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	learnsdk.UserProfile	"id, email, name, avatarUrl, role"
//	@Failure		401	{object}	learnsdk.ErrorResponse	"Access token required"
//	@Failure		403	{object}	learnsdk.ErrorResponse	"Invalid or expired access token"
//	@Failure		500	{object}	learnsdk.ErrorResponse	"Internal error"
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, httpx.MsgTokenRequired)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		log.Warn("failed to load user", "user_id", userID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, learnsdk.UserProfile{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		Role:      string(user.Role),
	})
}
