package http

import (
	"errors"
	"net/http"

	"github.com/inkwell-edu/inkwell/internal/platform/service"
	"github.com/inkwell-edu/inkwell/pkg/httpx"
	"github.com/inkwell-edu/inkwell/pkg/learnsdk"
	"github.com/inkwell-edu/inkwell/pkg/slogx"
)

// RefreshHandler serves POST /v1/auth/refresh. Every failure is a 401: the
// refresh endpoint never returns 403, so clients can tell "my access token
// expired" (403 elsewhere) apart from "my session is dead" (401 here).
type RefreshHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Refresh the token pair
//	@Description	Redeems a refresh token (from the inkwell_refresh cookie or the JSON body) for a new access token. The refresh token is rotated: the presented one is revoked and a new one issued.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		learnsdk.RefreshRequest	false	"Refresh token (cookie takes precedence)"
//	@Success		200		{object}	learnsdk.TokenResponse	"accessToken, refreshToken, expiresIn"
//	@Failure		401		{object}	learnsdk.ErrorResponse	"Missing, expired, revoked or reused refresh token"
//	@Router			/v1/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	refreshToken := refreshTokenFromRequest(r)
	if refreshToken == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Refresh token required")
		return
	}

	pair, err := h.TokenService.Refresh(ctx, refreshToken)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidRefresh) {
			log.Error("refresh failed", "err", err)
		}
		// A dead refresh token means the cookie is worthless; drop it so the
		// browser stops presenting it.
		clearRefreshCookie(w, r)
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid refresh token")
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
