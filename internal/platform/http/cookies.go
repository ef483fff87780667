package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/inkwell-edu/inkwell/pkg/jwtx"
	"github.com/inkwell-edu/inkwell/pkg/learnsdk"
)

// setRefreshCookie stores the refresh token for browser clients. Scoped to
// the auth routes so the token is never sent with ordinary API calls.
func setRefreshCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    token,
		Path:     "/v1/auth",
		MaxAge:   int(jwtx.DefaultRefreshTokenTTL / time.Second),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearRefreshCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     "/v1/auth",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// refreshTokenFromRequest extracts the refresh token: cookie first (browser
// clients), JSON body as the fallback (SDK and mobile clients). The body is
// only consulted when no cookie is present.
func refreshTokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(RefreshCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	var req learnsdk.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
		return req.RefreshToken
	}
	return ""
}
