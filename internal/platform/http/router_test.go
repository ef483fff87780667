package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
	"github.com/inkwell-edu/inkwell/internal/platform/service"
	"github.com/inkwell-edu/inkwell/internal/platform/store/drivers/sqlite"
	"github.com/inkwell-edu/inkwell/pkg/cryptox"
	"github.com/inkwell-edu/inkwell/pkg/idx"
	"github.com/inkwell-edu/inkwell/pkg/jwtx"
	"github.com/inkwell-edu/inkwell/pkg/learnsdk"
	"github.com/inkwell-edu/inkwell/pkg/slogx"
)

const testBootstrapToken = "test-bootstrap-token"

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "inkwell-http-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

type testEnv struct {
	router *Router
	store  *sqlite.Store
	tokens *service.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	access, err := jwtx.NewCodec([]byte(strings.Repeat("a", 32)), "inkwell-test")
	require.NoError(t, err)
	refresh, err := jwtx.NewCodec([]byte(strings.Repeat("r", 32)), "inkwell-test")
	require.NoError(t, err)

	tokens := &service.TokenService{
		AccessCodec:  access,
		RefreshCodec: refresh,
		Store:        st,
		Issuer:       "inkwell-test",
		AccessTTL:    jwtx.DefaultAccessTokenTTL,
		RefreshTTL:   jwtx.DefaultRefreshTokenTTL,
	}

	logger := slogx.New(slogx.Config{
		Service: "inkwell-test",
		Version: "test",
		Env:     "test",
		Level:   "error",
		Format:  "text",
	})

	router := NewRouter(access, "test", st, logger)
	router.TokenService = tokens
	router.UserService = &service.UserService{Store: st}
	router.BootstrapService = &service.BootstrapService{Store: st, Token: testBootstrapToken}
	router.CatalogService = &service.CatalogService{Store: st}
	router.BookmarkService = &service.BookmarkService{Store: st}
	router.ApplyRoutes()

	return &testEnv{router: router, store: st, tokens: tokens}
}

func (env *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decodeAs[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

// seedStudent creates a student directly in the store and logs them in.
func seedStudent(t *testing.T, env *testEnv) (domain.User, *domain.TokenPair) {
	t.Helper()

	user := domain.User{
		ID:    idx.New().String(),
		Email: idx.New().String() + "@example.com",
		Name:  "Student",
		Role:  domain.RoleStudent,
	}
	require.NoError(t, env.store.Users().CreateUser(context.Background(), user))

	pair, err := env.tokens.Login(context.Background(), user.ID)
	require.NoError(t, err)
	return user, pair
}

// bootstrapAdmin provisions the first admin through the real endpoint and
// logs in with the password flow.
func bootstrapAdmin(t *testing.T, env *testEnv) *domain.TokenPair {
	t.Helper()

	rec := env.do(t, http.MethodPost, "/v1/bootstrap", learnsdk.BootstrapRequest{
		Email:    "admin@example.com",
		Name:     "Admin",
		Password: "a-long-admin-password",
	}, map[string]string{"X-Bootstrap-Token": testBootstrapToken})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	login := env.do(t, http.MethodPost, "/v1/auth/login", learnsdk.LoginRequest{
		Email:    "admin@example.com",
		Password: "a-long-admin-password",
	}, nil)
	require.Equal(t, http.StatusOK, login.Code, login.Body.String())

	tokens := decodeAs[learnsdk.TokenResponse](t, login)
	return &domain.TokenPair{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}
}

func TestAuthnContract(t *testing.T) {
	env := newTestEnv(t)
	_, pair := seedStudent(t, env)

	t.Run("no header yields 401 with the promised message", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/v1/me", nil, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeAs[learnsdk.ErrorResponse](t, rec)
		assert.Equal(t, "Access token required", body.Message)
	})

	t.Run("garbage token yields 403 with the promised message", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/v1/me", nil, bearer("garbage"))
		require.Equal(t, http.StatusForbidden, rec.Code)
		body := decodeAs[learnsdk.ErrorResponse](t, rec)
		assert.Equal(t, "Invalid or expired access token", body.Message)
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/v1/me", nil, bearer(pair.AccessToken))
		require.Equal(t, http.StatusOK, rec.Code)
		profile := decodeAs[learnsdk.UserProfile](t, rec)
		assert.Equal(t, "student", profile.Role)
	})
}

func TestRefreshEndpoint(t *testing.T) {
	env := newTestEnv(t)
	_, pair := seedStudent(t, env)

	t.Run("body token rotates the pair", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/auth/refresh",
			learnsdk.RefreshRequest{RefreshToken: pair.RefreshToken}, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		tokens := decodeAs[learnsdk.TokenResponse](t, rec)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEqual(t, pair.RefreshToken, tokens.RefreshToken)

		// Rotated refresh token lands in the cookie too
		var found bool
		for _, c := range rec.Result().Cookies() {
			if c.Name == RefreshCookieName {
				found = true
				assert.Equal(t, tokens.RefreshToken, c.Value)
				assert.True(t, c.HttpOnly)
			}
		}
		assert.True(t, found, "refresh cookie must be set")

		// The old token was revoked by the rotation
		again := env.do(t, http.MethodPost, "/v1/auth/refresh",
			learnsdk.RefreshRequest{RefreshToken: pair.RefreshToken}, nil)
		assert.Equal(t, http.StatusUnauthorized, again.Code)

		pair.RefreshToken = tokens.RefreshToken
	})

	t.Run("cookie token works without a body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/refresh", nil)
		req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: pair.RefreshToken})
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		tokens := decodeAs[learnsdk.TokenResponse](t, rec)
		pair.RefreshToken = tokens.RefreshToken
	})

	t.Run("missing token is 401, never 403", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/auth/refresh", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is 401 and clears the cookie", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/auth/refresh",
			learnsdk.RefreshRequest{RefreshToken: "garbage"}, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		for _, c := range rec.Result().Cookies() {
			if c.Name == RefreshCookieName {
				assert.Empty(t, c.Value)
				assert.Negative(t, c.MaxAge)
			}
		}
	})
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	env := newTestEnv(t)
	_, pair := seedStudent(t, env)

	rec := env.do(t, http.MethodPost, "/v1/auth/logout",
		learnsdk.RefreshRequest{RefreshToken: pair.RefreshToken}, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	refresh := env.do(t, http.MethodPost, "/v1/auth/refresh",
		learnsdk.RefreshRequest{RefreshToken: pair.RefreshToken}, nil)
	assert.Equal(t, http.StatusUnauthorized, refresh.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	bootstrapAdmin(t, env)

	rec := env.do(t, http.MethodPost, "/v1/auth/login", learnsdk.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong-password",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeAs[learnsdk.ErrorResponse](t, rec)
	assert.Equal(t, "Invalid credentials", body.Message)
}

func TestBootstrapEndpoint(t *testing.T) {
	env := newTestEnv(t)

	t.Run("wrong token is rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/bootstrap", learnsdk.BootstrapRequest{
			Email: "admin@example.com", Name: "Admin", Password: "a-long-admin-password",
		}, map[string]string{"X-Bootstrap-Token": "nope"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("weak password is rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/bootstrap", learnsdk.BootstrapRequest{
			Email: "admin@example.com", Name: "Admin", Password: "short",
		}, map[string]string{"X-Bootstrap-Token": testBootstrapToken})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("succeeds once then locks", func(t *testing.T) {
		bootstrapAdmin(t, env)

		rec := env.do(t, http.MethodPost, "/v1/bootstrap", learnsdk.BootstrapRequest{
			Email: "again@example.com", Name: "Again", Password: "another-long-password",
		}, map[string]string{"X-Bootstrap-Token": testBootstrapToken})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestBookmarkRoutes(t *testing.T) {
	env := newTestEnv(t)
	_, pair := seedStudent(t, env)

	// Seed a novel with a video through the admin surface would need an
	// admin; go straight to the store for fixtures.
	ctx := context.Background()
	novel := domain.Novel{ID: idx.New().String(), Title: "Anna Karenina", Author: "Tolstoy"}
	require.NoError(t, env.store.Novels().CreateNovel(ctx, novel))
	video := domain.Video{ID: idx.New().String(), NovelID: novel.ID, Title: "Intro", URL: "https://example.com/v", Duration: 300}
	require.NoError(t, env.store.Videos().CreateVideo(ctx, video))

	t.Run("invalid item type is 400", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/bookmarks",
			learnsdk.BookmarkRequest{ItemType: "Chapter", ItemID: video.ID}, bearer(pair.AccessToken))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeAs[learnsdk.ErrorResponse](t, rec)
		assert.Equal(t, "Invalid item type", body.Message)
	})

	t.Run("unknown item is 404", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/bookmarks",
			learnsdk.BookmarkRequest{ItemType: "Video", ItemID: idx.New().String()}, bearer(pair.AccessToken))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("toggle on, list, toggle off", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/bookmarks",
			learnsdk.BookmarkRequest{ItemType: "Video", ItemID: video.ID}, bearer(pair.AccessToken))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeAs[learnsdk.BookmarkResponse](t, rec).Bookmarked)

		list := env.do(t, http.MethodGet, "/v1/bookmarks", nil, bearer(pair.AccessToken))
		require.Equal(t, http.StatusOK, list.Code)
		bookmarks := decodeAs[[]learnsdk.Bookmark](t, list)
		require.Len(t, bookmarks, 1)
		assert.Equal(t, "Video", bookmarks[0].ItemType)

		rec = env.do(t, http.MethodPost, "/v1/bookmarks",
			learnsdk.BookmarkRequest{ItemType: "Video", ItemID: video.ID}, bearer(pair.AccessToken))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decodeAs[learnsdk.BookmarkResponse](t, rec).Bookmarked)
	})
}

func TestAdminCatalogRoutes(t *testing.T) {
	env := newTestEnv(t)
	adminPair := bootstrapAdmin(t, env)
	_, studentPair := seedStudent(t, env)

	t.Run("student cannot write the catalog", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/admin/novels",
			learnsdk.Novel{Title: "War and Peace", Author: "Tolstoy"}, bearer(studentPair.AccessToken))
		require.Equal(t, http.StatusForbidden, rec.Code)
		body := decodeAs[learnsdk.ErrorResponse](t, rec)
		assert.Equal(t, "Admin access required", body.Message)
	})

	var novelID string
	t.Run("admin creates a novel", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/admin/novels",
			learnsdk.Novel{Title: "War and Peace", Author: "Tolstoy", Published: true}, bearer(adminPair.AccessToken))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		novel := decodeAs[learnsdk.Novel](t, rec)
		require.NotEmpty(t, novel.ID)
		novelID = novel.ID
	})

	t.Run("validation failures are 400", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/admin/novels",
			learnsdk.Novel{Title: "   ", Author: ""}, bearer(adminPair.AccessToken))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("students can read what admins write", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/v1/novels/"+novelID, nil, bearer(studentPair.AccessToken))
		require.Equal(t, http.StatusOK, rec.Code)
		novel := decodeAs[learnsdk.Novel](t, rec)
		assert.Equal(t, "War and Peace", novel.Title)
	})

	t.Run("admin attaches and updates a chapter", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/v1/admin/chapters",
			learnsdk.Chapter{NovelID: novelID, Index: 1, Title: "Book One"}, bearer(adminPair.AccessToken))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		chapter := decodeAs[learnsdk.Chapter](t, rec)

		rec = env.do(t, http.MethodPut, "/v1/admin/chapters/"+chapter.ID,
			learnsdk.Chapter{NovelID: novelID, Index: 1, Title: "Book One, revised"}, bearer(adminPair.AccessToken))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Book One, revised", decodeAs[learnsdk.Chapter](t, rec).Title)
	})

	t.Run("deleting a missing novel is 404", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/v1/admin/novels/"+idx.New().String(), nil, bearer(adminPair.AccessToken))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete cascades", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/v1/admin/novels/"+novelID, nil, bearer(adminPair.AccessToken))
		require.Equal(t, http.StatusNoContent, rec.Code)

		read := env.do(t, http.MethodGet, "/v1/novels/"+novelID+"/chapters", nil, bearer(studentPair.AccessToken))
		assert.Equal(t, http.StatusNotFound, read.Code)
	})
}

func TestExpiredAccessTokenIs403(t *testing.T) {
	env := newTestEnv(t)
	user, _ := seedStudent(t, env)

	// Mint an already-expired access token with the same codec.
	claims := jwtx.NewClaims(user.ID, -time.Hour, "inkwell-test", time.Now().UTC().Add(-2*time.Hour))
	expired, err := env.tokens.AccessCodec.Sign(claims)
	require.NoError(t, err)

	rec := env.do(t, http.MethodGet, "/v1/me", nil, bearer(expired))
	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeAs[learnsdk.ErrorResponse](t, rec)
	assert.Equal(t, "Invalid or expired access token", body.Message)
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	livez := env.do(t, http.MethodGet, "/livez", nil, nil)
	require.Equal(t, http.StatusOK, livez.Code)
	assert.Equal(t, "ok", decodeAs[learnsdk.HealthResponse](t, livez).Status)

	readyz := env.do(t, http.MethodGet, "/readyz", nil, nil)
	require.Equal(t, http.StatusOK, readyz.Code)
	health := decodeAs[learnsdk.HealthResponse](t, readyz)
	require.NotNil(t, health.Checks)
	assert.Equal(t, "ok", health.Checks.Database)
}
