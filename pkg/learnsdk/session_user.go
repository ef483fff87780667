package learnsdk

import (
	"context"
)

// Me fetches the authenticated user's profile and caches it on the session.
func (s *Session) Me(ctx context.Context) (*UserProfile, error) {
	var profile UserProfile
	if err := s.getJSON(ctx, "/v1/me", &profile); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = &profile
	s.mu.Unlock()
	return &profile, nil
}
