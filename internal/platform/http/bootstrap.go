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

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP handles the bootstrap endpoint for initial system setup.
//
//	@Summary		Bootstrap the platform
//	@Description	Creates the first admin account. Only available while a bootstrap token is configured and the user table is empty; afterwards the endpoint is inert.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string						true	"Bootstrap token for authorization"
//	@Param			request				body		learnsdk.BootstrapRequest	true	"Admin account details"
//	@Success		201					{object}	learnsdk.BootstrapResponse	"Created admin user ID"
//	@Failure		400					{object}	learnsdk.ErrorResponse		"Invalid request body or missing fields"
//	@Failure		401					{object}	learnsdk.ErrorResponse		"Missing or invalid bootstrap token, or already bootstrapped"
//	@Failure		404					{object}	learnsdk.ErrorResponse		"Bootstrap not enabled (no token configured)"
//	@Failure		500					{object}	learnsdk.ErrorResponse		"Failed to create admin user"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// 1. Check if enabled
	if h.BootstrapService.Token == "" {
		httpx.WriteError(w, http.StatusNotFound, "Bootstrap endpoint is not enabled")
		return
	}

	// 2. Require bootstrap token header
	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Bootstrap token is required in X-Bootstrap-Token header")
		return
	}

	// 3. Parse request body and validate
	var req learnsdk.BootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}
	email := strings.TrimSpace(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || name == "" || len(req.Password) < 12 {
		httpx.WriteError(w, http.StatusBadRequest, "email, name and a password of at least 12 characters are required")
		return
	}

	// 4. Perform bootstrap
	adminID, err := h.BootstrapService.Bootstrap(ctx, token, email, name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapAlready):
			httpx.WriteError(w, http.StatusUnauthorized, "System has already been bootstrapped")
		case errors.Is(err, service.ErrBootstrapUnauthorized):
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid bootstrap token")
		default:
			log.Error("bootstrap failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
		}
		return
	}

	// 5. Respond with the created admin's ID
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, learnsdk.BootstrapResponse{
		AdminUserID: adminID,
	})
}
