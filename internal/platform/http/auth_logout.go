package http

import (
	"net/http"

	"github.com/inkwell-edu/inkwell/internal/platform/service"
	"github.com/inkwell-edu/inkwell/pkg/slogx"
)

// LogoutHandler serves POST /v1/auth/logout. It revokes the presented
// refresh token and clears the cookie. Always succeeds: logging out with a
// dead token is not an error worth reporting.
type LogoutHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Logout
//	@Description	Revokes the refresh token (cookie or JSON body) and clears the refresh cookie.
//	@Tags			Auth
//	@Accept			json
//	@Success		204	"Logged out"
//	@Router			/v1/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if refreshToken := refreshTokenFromRequest(r); refreshToken != "" {
		if err := h.TokenService.Revoke(ctx, refreshToken); err != nil {
			log.Warn("logout revoke failed", "err", err)
		}
	}

	clearRefreshCookie(w, r)
	w.WriteHeader(http.StatusNoContent)
}
