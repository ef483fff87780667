package learnsdk

// UserProfile is the authenticated user as returned by /v1/me.
type UserProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Role      string `json:"role"`
}

// TokenResponse is the body of every successful token-issuing endpoint
// (login, Google login, refresh).
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// LoginRequest authenticates an email/password account (admins created via
// bootstrap). Students normally sign in through Google instead.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleLoginRequest exchanges a Google-issued ID token for a platform
// session.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// RefreshRequest carries the refresh token for clients that cannot use the
// refresh cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// BootstrapRequest creates the first admin account. Only honoured while the
// user table is empty and the caller presents the bootstrap token.
type BootstrapRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// BootstrapResponse reports the created admin account.
type BootstrapResponse struct {
	AdminUserID string `json:"adminUserId"`
}

// ErrorResponse is the error body every endpoint uses.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

// Catalog resources. Shapes mirror the server's JSON exactly.

type Novel struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description,omitempty"`
	CoverURL    string `json:"coverUrl,omitempty"`
	Published   bool   `json:"published"`
}

type Chapter struct {
	ID      string `json:"id"`
	NovelID string `json:"novelId"`
	Index   int    `json:"index"`
	Title   string `json:"title"`
	Body    string `json:"body,omitempty"`
}

type Video struct {
	ID       string `json:"id"`
	NovelID  string `json:"novelId"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Duration int    `json:"duration"`
}

type Note struct {
	ID      string `json:"id"`
	NovelID string `json:"novelId"`
	Title   string `json:"title"`
	Body    string `json:"body,omitempty"`
}

type Quiz struct {
	ID        string `json:"id"`
	NovelID   string `json:"novelId"`
	Title     string `json:"title"`
	Questions string `json:"questions"`
}

type Summary struct {
	ID      string `json:"id"`
	NovelID string `json:"novelId"`
	Title   string `json:"title"`
	Body    string `json:"body,omitempty"`
}

// BookmarkRequest toggles a bookmark on one of the four bookmarkable item
// kinds: Video, Note, Quiz or Summary.
type BookmarkRequest struct {
	ItemType string `json:"itemType"`
	ItemID   string `json:"itemId"`
}

// BookmarkResponse reports the post-toggle state.
type BookmarkResponse struct {
	Bookmarked bool `json:"bookmarked"`
}

type Bookmark struct {
	ID       string `json:"id"`
	ItemType string `json:"itemType"`
	ItemID   string `json:"itemId"`
}
