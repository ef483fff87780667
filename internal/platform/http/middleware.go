package http

import (
	"net/http"

	"github.com/inkwell-edu/inkwell/internal/platform/store"
	"github.com/inkwell-edu/inkwell/pkg/httpx"
	"github.com/inkwell-edu/inkwell/pkg/slogx"
)

const msgAdminRequired = "Admin access required"

// RequireAdmin gates a handler on the admin role. The role is loaded from
// the store on every request rather than trusted from the token, so a
// demotion takes effect immediately instead of at token expiry.
// Must run after AuthnMiddleware.
func RequireAdmin(st store.Store) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			userID := httpx.UserIDFromContext(ctx)
			if userID == "" {
				httpx.WriteError(w, http.StatusUnauthorized, httpx.MsgTokenRequired)
				return
			}

			user, err := st.Users().GetUserByID(ctx, userID)
			if err != nil {
				log.Warn("failed to load user for admin check", "user_id", userID, "err", err)
				httpx.WriteError(w, http.StatusForbidden, msgAdminRequired)
				return
			}
			if !user.IsAdmin() {
				log.Warn("admin route denied", "user_id", userID, "role", user.Role)
				httpx.WriteError(w, http.StatusForbidden, msgAdminRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
