package learnsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const refreshPath = "/v1/auth/refresh"

// Client is an unauthenticated client for the Inkwell API. It performs the
// operations that do not require a session and creates Sessions from
// successful logins.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// LoginWithPassword authenticates an email/password account and returns a
// live session.
func (c *Client) LoginWithPassword(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.postJSON(ctx, "/v1/auth/login", LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var tokens TokenResponse
	if err := decodeJSON(resp, &tokens, http.StatusOK); err != nil {
		return nil, err
	}
	return c.newSessionFromTokens(ctx, tokens)
}

// LoginWithGoogleIDToken exchanges a Google ID token for a session,
// creating the student account on first login.
func (c *Client) LoginWithGoogleIDToken(ctx context.Context, idToken string) (*Session, error) {
	resp, err := c.postJSON(ctx, "/v1/auth/google", GoogleLoginRequest{IDToken: idToken})
	if err != nil {
		return nil, err
	}

	var tokens TokenResponse
	if err := decodeJSON(resp, &tokens, http.StatusOK); err != nil {
		return nil, err
	}
	return c.newSessionFromTokens(ctx, tokens)
}

// ResumeSession rebuilds a session from a snapshot persisted by a previous
// process. The snapshot carries no access token, so a refresh round-trip is
// performed immediately; a rejected refresh token returns ErrSessionExpired.
func (c *Client) ResumeSession(ctx context.Context, snap SessionSnapshot) (*Session, error) {
	if snap.RefreshToken == "" {
		return nil, ErrNotAuthenticated
	}

	s := &Session{
		client:       c,
		user:         snap.User,
		refreshToken: snap.RefreshToken,
	}
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Bootstrap creates the first admin account. Requires the server's bootstrap
// token and an empty user table.
func (c *Client) Bootstrap(ctx context.Context, bootstrapToken string, req BootstrapRequest) (*BootstrapResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/bootstrap", bytes.NewReader(body), map[string]string{
		"Content-Type":      "application/json",
		"X-Bootstrap-Token": bootstrapToken,
	})
	if err != nil {
		return nil, err
	}

	var out BootstrapResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Livez reports basic service health.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, nil)
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// newSessionFromTokens fetches the profile for a freshly issued pair and
// wraps everything in a Session.
func (c *Client) newSessionFromTokens(ctx context.Context, tokens TokenResponse) (*Session, error) {
	s := &Session{
		client:       c,
		accessToken:  tokens.AccessToken,
		refreshToken: tokens.RefreshToken,
	}

	user, err := s.Me(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	return s, nil
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// doRequest performs an unauthenticated request.
func (c *Client) doRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return c.doRequest(ctx, http.MethodPost, path, bytes.NewReader(body), map[string]string{
		"Content-Type": "application/json",
	})
}

// decodeJSON reads the response body once, returning a typed *APIError for
// unexpected statuses and decoding into target otherwise.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// checkStatusNoContent returns a typed error unless the response is 204.
func checkStatusNoContent(resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp, bodyBytes)
	}
	return nil
}
