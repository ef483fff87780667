package domain

import "time"

// TokenPair is what a successful login or refresh returns: the short-lived
// access token (JWT) and the rotating refresh token.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    int64  `json:"expiresIn"` // seconds until the access token expires
}

// RefreshToken models the stored refresh token record in the DB. Only the
// SHA-256 fingerprint of the token is persisted, never the token itself.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string // deterministic fingerprint (base64url SHA-256)
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Usable reports whether the record can still redeem a refresh: present,
// unrevoked and unexpired.
func (t RefreshToken) Usable(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}
