package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/inkwell-edu/inkwell/internal/platform/service"
	"github.com/inkwell-edu/inkwell/pkg/httpx"
	"github.com/inkwell-edu/inkwell/pkg/learnsdk"
	"github.com/inkwell-edu/inkwell/pkg/slogx"
)

// LoginHandler serves POST /v1/auth/login for email/password accounts.
// Students normally arrive via Google; this path exists for admins created
// through bootstrap.
type LoginHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Password login
//	@Description	Authenticates an email/password account and issues an access/refresh token pair. The refresh token is also set as an httpOnly cookie for browser clients.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		learnsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	learnsdk.TokenResponse	"accessToken, refreshToken, expiresIn"
//	@Failure		400		{object}	learnsdk.ErrorResponse	"Malformed request body"
//	@Failure		401		{object}	learnsdk.ErrorResponse	"Invalid credentials"
//	@Failure		500		{object}	learnsdk.ErrorResponse	"Internal error"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req learnsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	user, err := h.UserService.AuthenticatePassword(ctx, email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error("password login failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
		return
	}

	pair, err := h.TokenService.Login(ctx, user.ID)
	if err != nil {
		log.Error("failed to issue token pair", "user_id", user.ID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
		return
	}

	setRefreshCookie(w, r, pair.RefreshToken)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, learnsdk.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	})
}
