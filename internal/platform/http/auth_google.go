package http

import (
	"encoding/json"
	"net/http"

	"github.com/inkwell-edu/inkwell/internal/platform/service"
	"github.com/inkwell-edu/inkwell/pkg/cryptox"
	"github.com/inkwell-edu/inkwell/pkg/httpx"
	"github.com/inkwell-edu/inkwell/pkg/learnsdk"
	"github.com/inkwell-edu/inkwell/pkg/slogx"
)

// stateCookieName carries the CSRF state between the redirect and callback
// legs of the authorization code flow.
const stateCookieName = "inkwell_oauth_state"

// GoogleAuthHandler serves the Google sign-in surface: the browser redirect
// flow and the direct ID token exchange used by mobile and SPA clients.
type GoogleAuthHandler struct {
	GoogleService *service.GoogleService
	TokenService  *service.TokenService
}

// HandleRedirect godoc
//
//	@Summary		Start Google sign-in
//	@Description	Redirects the browser to Google's consent screen. A CSRF state value is set as a cookie and verified on the callback.
//	@Tags			Auth
//	@Success		302	"Redirect to Google"
//	@Router			/v1/auth/google [get].
func (h *GoogleAuthHandler) HandleRedirect(w http.ResponseWriter, r *http.Request) {
	state := cryptox.MustGenerateToken(cryptox.TokenSize128)

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/v1/auth/google",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.GoogleService.AuthCodeURL(state), http.StatusFound)
}

// HandleCallback godoc
//
//	@Summary		Google sign-in callback
//	@Description	Return leg of the authorization code flow. Verifies the CSRF state, exchanges the code, upserts the user and issues a token pair.
//	@Tags			Auth
//	@Produce		json
//	@Param			code	query		string					true	"Authorization code"
//	@Param			state	query		string					true	"CSRF state"
//	@Success		200		{object}	learnsdk.TokenResponse	"accessToken, refreshToken, expiresIn"
//	@Failure		400		{object}	learnsdk.ErrorResponse	"Missing code or state mismatch"
//	@Failure		401		{object}	learnsdk.ErrorResponse	"Google rejected the exchange"
//	@Router			/v1/auth/google/callback [get].
func (h *GoogleAuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" || r.URL.Query().Get("state") != stateCookie.Value {
		httpx.WriteError(w, http.StatusBadRequest, "OAuth state mismatch")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Authorization code is required")
		return
	}

	identity, err := h.GoogleService.ExchangeCode(ctx, code)
	if err != nil {
		log.Warn("google code exchange failed", "err", err)
		httpx.WriteError(w, http.StatusUnauthorized, "Google sign-in failed")
		return
	}

	h.finishLogin(w, r, identity)
}

// HandleIDToken godoc
//
//	@Summary		Google ID token login
//	@Description	Exchanges a Google-issued ID token for a platform token pair, creating the student account on first login.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		learnsdk.GoogleLoginRequest	true	"ID token"
//	@Success		200		{object}	learnsdk.TokenResponse		"accessToken, refreshToken, expiresIn"
//	@Failure		400		{object}	learnsdk.ErrorResponse		"Malformed request body"
//	@Failure		401		{object}	learnsdk.ErrorResponse		"ID token rejected"
//	@Router			/v1/auth/google [post].
func (h *GoogleAuthHandler) HandleIDToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req learnsdk.GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		httpx.WriteError(w, http.StatusBadRequest, "idToken is required")
		return
	}

	identity, err := h.GoogleService.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		log.Warn("google id token login rejected", "err", err)
		httpx.WriteError(w, http.StatusUnauthorized, "Google sign-in failed")
		return
	}

	h.finishLogin(w, r, identity)
}

// finishLogin upserts the user for a verified identity and writes the token
// pair. Shared by the callback and ID token paths.
func (h *GoogleAuthHandler) finishLogin(w http.ResponseWriter, r *http.Request, identity service.GoogleIdentity) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, err := h.GoogleService.Authenticate(ctx, identity)
	if err != nil {
		log.Error("google login upsert failed", "err", err)
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
