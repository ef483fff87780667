package store

import (
	"context"
	"errors"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a Tx scope for multi-step operations that must be atomic
// (refresh rotation, bookmark toggle).
type Store interface {
	Users() Users
	RefreshTokens() RefreshTokens
	Novels() Novels
	Chapters() Chapters
	Videos() Videos
	Notes() Notes
	Quizzes() Quizzes
	Summaries() Summaries
	Bookmarks() Bookmarks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during the bootstrap-admin password login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByGoogleID looks a user up by their Google subject claim.
	GetUserByGoogleID(ctx context.Context, googleID string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile mutates name/avatar from a fresh Google identity and
	// bumps updated_at.
	UpdateProfile(ctx context.Context, userID, name, avatarURL string) error

	// DeleteUser cascades to refresh_tokens and bookmarks (per schema).
	DeleteUser(ctx context.Context, userID string) error

	// IsEmpty returns true if there are no users. Gates bootstrap.
	IsEmpty(ctx context.Context) (bool, error)
}

type RefreshTokens interface {
	// CreateRefreshToken stores a new refresh token record.
	CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error

	// GetRefreshTokenByHash returns the token record by its fingerprint.
	GetRefreshTokenByHash(ctx context.Context, hash string) (domain.RefreshToken, error)

	// RevokeRefreshToken flips revoked=1, sets updated_at.
	RevokeRefreshToken(ctx context.Context, hash string) error

	// RevokeAllUserRefreshTokens bulk revocation for a user (e.g. account deletion).
	RevokeAllUserRefreshTokens(ctx context.Context, userID string) error

	// DeleteExpiredRefreshTokens is housekeeping.
	DeleteExpiredRefreshTokens(ctx context.Context) error
}

type Novels interface {
	GetNovelByID(ctx context.Context, id string) (domain.Novel, error)
	ListNovels(ctx context.Context) ([]domain.Novel, error)
	CreateNovel(ctx context.Context, n domain.Novel) error
	UpdateNovel(ctx context.Context, n domain.Novel) error

	// DeleteNovel cascades to chapters, videos, notes, quizzes and summaries.
	DeleteNovel(ctx context.Context, id string) error
}

type Chapters interface {
	GetChapterByID(ctx context.Context, id string) (domain.Chapter, error)

	// ListChaptersByNovel returns chapters ordered by their index.
	ListChaptersByNovel(ctx context.Context, novelID string) ([]domain.Chapter, error)
	CreateChapter(ctx context.Context, c domain.Chapter) error
	UpdateChapter(ctx context.Context, c domain.Chapter) error
	DeleteChapter(ctx context.Context, id string) error
}

type Videos interface {
	GetVideoByID(ctx context.Context, id string) (domain.Video, error)
	ListVideosByNovel(ctx context.Context, novelID string) ([]domain.Video, error)
	CreateVideo(ctx context.Context, v domain.Video) error
	UpdateVideo(ctx context.Context, v domain.Video) error
	DeleteVideo(ctx context.Context, id string) error
}

type Notes interface {
	GetNoteByID(ctx context.Context, id string) (domain.Note, error)
	ListNotesByNovel(ctx context.Context, novelID string) ([]domain.Note, error)
	CreateNote(ctx context.Context, n domain.Note) error
	UpdateNote(ctx context.Context, n domain.Note) error
	DeleteNote(ctx context.Context, id string) error
}

type Quizzes interface {
	GetQuizByID(ctx context.Context, id string) (domain.Quiz, error)
	ListQuizzesByNovel(ctx context.Context, novelID string) ([]domain.Quiz, error)
	CreateQuiz(ctx context.Context, q domain.Quiz) error
	UpdateQuiz(ctx context.Context, q domain.Quiz) error
	DeleteQuiz(ctx context.Context, id string) error
}

type Summaries interface {
	GetSummaryByID(ctx context.Context, id string) (domain.Summary, error)
	ListSummariesByNovel(ctx context.Context, novelID string) ([]domain.Summary, error)
	CreateSummary(ctx context.Context, s domain.Summary) error
	UpdateSummary(ctx context.Context, s domain.Summary) error
	DeleteSummary(ctx context.Context, id string) error
}

type Bookmarks interface {
	// GetBookmark returns the caller's bookmark for an item, if any.
	GetBookmark(ctx context.Context, userID string, item domain.ItemRef) (domain.Bookmark, error)

	// ListBookmarksByUser returns all bookmarks for a user, newest first.
	ListBookmarksByUser(ctx context.Context, userID string) ([]domain.Bookmark, error)

	// CreateBookmark inserts a bookmark. The (user, item, type) triple is
	// unique; a duplicate insert returns ErrAlreadyExists.
	CreateBookmark(ctx context.Context, b domain.Bookmark) error

	// DeleteBookmark hard-deletes the bookmark. No soft delete, no history.
	DeleteBookmark(ctx context.Context, userID string, item domain.ItemRef) error
}
