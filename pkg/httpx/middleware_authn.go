package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/inkwell-edu/inkwell/pkg/jwtx"
	"github.com/inkwell-edu/inkwell/pkg/slogx"
)

// Error messages the API contract promises to clients. The SDK matches on
// status codes, not these strings, but they are still part of the surface.
const (
	MsgTokenRequired = "Access token required"
	MsgTokenInvalid  = "Invalid or expired access token"
)

// AuthnMiddleware enforces a Bearer access token on the wrapped handler.
// A missing or non-Bearer Authorization header yields 401; a present but
// unverifiable or expired token yields 403. On success the user ID and
// claims are injected into the request context.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, MsgTokenRequired)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				WriteError(w, http.StatusForbidden, MsgTokenInvalid)
				return
			}

			// Inject into context for downstream handlers.
			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}
