package learnsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// Session is an authenticated session. It stores the token pair in memory
// and transparently recovers from access token expiry: a request rejected
// with 401 or 403 triggers one refresh round-trip and one retry. Concurrent
// requests that fail at the same time share a single refresh.
type Session struct {
	client *Client

	mu           sync.RWMutex
	user         *UserProfile
	accessToken  string
	refreshToken string

	// refreshMu serialises refresh attempts so a burst of rejected
	// requests produces exactly one call to the refresh endpoint.
	refreshMu sync.Mutex
}

// SessionSnapshot is the durable form of a session. It deliberately omits
// the access token: access tokens are short-lived and must never be written
// to persistent storage. ResumeSession mints a fresh one.
type SessionSnapshot struct {
	User         *UserProfile `json:"user,omitempty"`
	RefreshToken string       `json:"refreshToken"`
}

// IsAuthenticated reports whether the session still holds tokens.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken != "" || s.refreshToken != ""
}

// User returns the cached profile from login time. May be nil after
// ResumeSession until Me is called.
func (s *Session) User() *UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Snapshot captures the session state for persistence.
func (s *Session) Snapshot() SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SessionSnapshot{
		User:         s.user,
		RefreshToken: s.refreshToken,
	}
}

// Logout revokes the refresh token server-side and clears the session.
// The session is cleared even if the revoke request fails.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.RLock()
	refreshToken := s.refreshToken
	s.mu.RUnlock()

	s.clear()

	if refreshToken == "" {
		return nil
	}

	resp, err := s.client.postJSON(ctx, "/v1/auth/logout", RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (s *Session) clear() {
	s.mu.Lock()
	s.user = nil
	s.accessToken = ""
	s.refreshToken = ""
	s.mu.Unlock()
}

// refresh exchanges the refresh token for a new pair. It is never retried:
// any failure clears the session and surfaces ErrSessionExpired.
func (s *Session) refresh(ctx context.Context) error {
	s.mu.RLock()
	refreshToken := s.refreshToken
	s.mu.RUnlock()

	if refreshToken == "" {
		s.clear()
		return ErrSessionExpired
	}

	resp, err := s.client.postJSON(ctx, refreshPath, RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return fmt.Errorf("refresh request failed: %w", err)
	}

	var tokens TokenResponse
	if err := decodeJSON(resp, &tokens, http.StatusOK); err != nil {
		s.clear()
		return fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}

	s.mu.Lock()
	s.accessToken = tokens.AccessToken
	if tokens.RefreshToken != "" {
		s.refreshToken = tokens.RefreshToken
	}
	s.mu.Unlock()
	return nil
}

// refreshIfStale refreshes unless another goroutine already replaced the
// token this caller failed with.
func (s *Session) refreshIfStale(ctx context.Context, staleToken string) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	s.mu.RLock()
	current := s.accessToken
	s.mu.RUnlock()
	if current != "" && current != staleToken {
		return nil
	}

	return s.refresh(ctx)
}

// doAuthRequest performs an authenticated request. The body is a byte slice
// rather than a reader so the retry after refresh can replay it.
func (s *Session) doAuthRequest(
	ctx context.Context,
	method, path string,
	payload []byte,
) (*http.Response, error) {
	s.mu.RLock()
	token := s.accessToken
	authenticated := token != "" || s.refreshToken != ""
	s.mu.RUnlock()

	if !authenticated {
		return nil, ErrNotAuthenticated
	}

	resp, err := s.send(ctx, method, path, payload, token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized && resp.StatusCode != http.StatusForbidden {
		return resp, nil
	}
	resp.Body.Close()

	// The server rejected the access token. Refresh and retry exactly once.
	if err := s.refreshIfStale(ctx, token); err != nil {
		return nil, err
	}

	s.mu.RLock()
	token = s.accessToken
	s.mu.RUnlock()

	return s.send(ctx, method, path, payload, token)
}

func (s *Session) send(ctx context.Context, method, path string, payload []byte, token string) (*http.Response, error) {
	var body *bytes.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// getJSON is a convenience wrapper for authenticated GETs.
func (s *Session) getJSON(ctx context.Context, path string, target any) error {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, http.StatusOK)
}

// postJSON is a convenience wrapper for authenticated POSTs.
func (s *Session) postJSON(ctx context.Context, path string, payload, target any, expectedStatus int) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, expectedStatus)
}

// putJSON is a convenience wrapper for authenticated PUTs.
func (s *Session) putJSON(ctx context.Context, path string, payload, target any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, path, body)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, http.StatusOK)
}
