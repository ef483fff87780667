package learnsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotAuthenticated is returned by Session methods called after the
	// session was cleared (logout or failed refresh).
	ErrNotAuthenticated = errors.New("learnsdk: not authenticated")

	// ErrSessionExpired is returned when the refresh token itself was
	// rejected. The session has been cleared; the user must log in again.
	ErrSessionExpired = errors.New("learnsdk: session expired")
)

// APIError is a non-2xx response from the server, carrying the status code
// and the server's error message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("learnsdk: HTTP %d: %s", e.StatusCode, e.Message)
}

// parseErrorResponse turns a non-2xx response body into an *APIError.
// Returns nil for 2xx responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Message}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}
