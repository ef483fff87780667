package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/inkwell-edu/inkwell/internal/platform/service"
	"github.com/inkwell-edu/inkwell/internal/platform/store"
	"github.com/inkwell-edu/inkwell/pkg/httpx"
	"github.com/inkwell-edu/inkwell/pkg/jwtx"
	"github.com/inkwell-edu/inkwell/pkg/slogx"

	_ "github.com/inkwell-edu/inkwell/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// RefreshCookieName is the httpOnly cookie that carries the refresh token
// for browser clients. Non-browser clients send the token in the JSON body.
const RefreshCookieName = "inkwell_refresh"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	TokenService     *service.TokenService
	UserService      *service.UserService
	GoogleService    *service.GoogleService
	BootstrapService *service.BootstrapService
	CatalogService   *service.CatalogService
	BookmarkService  *service.BookmarkService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerCatalog()
	r.registerAdminCatalog()
	r.registerBookmarks()
	r.registerSystem()
	r.registerBootstrap()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Inkwell Learning Platform API
//	@version		0.1.0
//	@description	API for the Inkwell e-learning platform: novels, chapters, videos, study notes, quizzes, summaries and per-student bookmarks.
//	@description
//	@description				Authentication uses short-lived HS256 access tokens and rotated refresh tokens. Browser clients receive the refresh token in an httpOnly cookie; other clients use the JSON body.
//
//	@contact.name				Inkwell Team
//	@contact.url				https://github.com/inkwell-edu/inkwell
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// Google routes only exist when sign-in is configured.
	if r.GoogleService != nil {
		googleHandler := &GoogleAuthHandler{
			GoogleService: r.GoogleService,
			TokenService:  r.TokenService,
		}

		// GET /auth/google - redirect to Google's consent screen
		r.Mux.Handle("GET /v1/auth/google",
			httpx.Chain(http.HandlerFunc(googleHandler.HandleRedirect),
				httpx.RateLimitByIP(httpx.LenientLimit),
			),
		)

		// GET /auth/google/callback - authorization code flow return leg
		r.Mux.Handle("GET /v1/auth/google/callback",
			httpx.Chain(http.HandlerFunc(googleHandler.HandleCallback),
				httpx.RateLimitByIP(httpx.StrictLimit),
			),
		)

		// POST /auth/google - direct ID token exchange (mobile / SPA clients)
		r.Mux.Handle("POST /v1/auth/google",
			httpx.Chain(http.HandlerFunc(googleHandler.HandleIDToken),
				httpx.RateLimitByIP(httpx.StrictLimit),
			),
		)
	}

	// POST /auth/login - password login, strict limit keyed by IP + email
	loginHandler := &LoginHandler{
		UserService:  r.UserService,
		TokenService: r.TokenService,
	}
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/refresh - strict limit; failures always map to 401 so the
	// SDK never mistakes them for an expired access token
	refreshHandler := &RefreshHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /v1/auth/refresh",
		httpx.Chain(refreshHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/logout - revokes the refresh token
	logoutHandler := &LogoutHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(logoutHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &MeHandler{UserService: r.UserService}

	secured := httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.Mux.Handle("GET /v1/me", secured)
}

func (r *Router) registerCatalog() {
	h := &CatalogHandler{CatalogService: r.CatalogService}

	authed := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /v1/novels", authed(h.HandleListNovels))
	r.Mux.Handle("GET /v1/novels/{id}", authed(h.HandleGetNovel))
	r.Mux.Handle("GET /v1/novels/{id}/chapters", authed(h.HandleListChapters))
	r.Mux.Handle("GET /v1/novels/{id}/videos", authed(h.HandleListVideos))
	r.Mux.Handle("GET /v1/novels/{id}/notes", authed(h.HandleListNotes))
	r.Mux.Handle("GET /v1/novels/{id}/quizzes", authed(h.HandleListQuizzes))
	r.Mux.Handle("GET /v1/novels/{id}/summaries", authed(h.HandleListSummaries))
	r.Mux.Handle("GET /v1/chapters/{id}", authed(h.HandleGetChapter))
	r.Mux.Handle("GET /v1/videos/{id}", authed(h.HandleGetVideo))
	r.Mux.Handle("GET /v1/notes/{id}", authed(h.HandleGetNote))
	r.Mux.Handle("GET /v1/quizzes/{id}", authed(h.HandleGetQuiz))
	r.Mux.Handle("GET /v1/summaries/{id}", authed(h.HandleGetSummary))
}

func (r *Router) registerAdminCatalog() {
	h := &AdminCatalogHandler{CatalogService: r.CatalogService}

	// Every mutating catalog route goes through authn + admin role check.
	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			RequireAdmin(r.store),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /v1/admin/novels", secured(h.HandleCreateNovel))
	r.Mux.Handle("PUT /v1/admin/novels/{id}", secured(h.HandleUpdateNovel))
	r.Mux.Handle("DELETE /v1/admin/novels/{id}", secured(h.HandleDeleteNovel))

	r.Mux.Handle("POST /v1/admin/chapters", secured(h.HandleCreateChapter))
	r.Mux.Handle("PUT /v1/admin/chapters/{id}", secured(h.HandleUpdateChapter))
	r.Mux.Handle("DELETE /v1/admin/chapters/{id}", secured(h.HandleDeleteChapter))

	r.Mux.Handle("POST /v1/admin/videos", secured(h.HandleCreateVideo))
	r.Mux.Handle("PUT /v1/admin/videos/{id}", secured(h.HandleUpdateVideo))
	r.Mux.Handle("DELETE /v1/admin/videos/{id}", secured(h.HandleDeleteVideo))

	r.Mux.Handle("POST /v1/admin/notes", secured(h.HandleCreateNote))
	r.Mux.Handle("PUT /v1/admin/notes/{id}", secured(h.HandleUpdateNote))
	r.Mux.Handle("DELETE /v1/admin/notes/{id}", secured(h.HandleDeleteNote))

	r.Mux.Handle("POST /v1/admin/quizzes", secured(h.HandleCreateQuiz))
	r.Mux.Handle("PUT /v1/admin/quizzes/{id}", secured(h.HandleUpdateQuiz))
	r.Mux.Handle("DELETE /v1/admin/quizzes/{id}", secured(h.HandleDeleteQuiz))

	r.Mux.Handle("POST /v1/admin/summaries", secured(h.HandleCreateSummary))
	r.Mux.Handle("PUT /v1/admin/summaries/{id}", secured(h.HandleUpdateSummary))
	r.Mux.Handle("DELETE /v1/admin/summaries/{id}", secured(h.HandleDeleteSummary))
}

func (r *Router) registerBookmarks() {
	h := &BookmarksHandler{BookmarkService: r.BookmarkService}

	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedToggle := httpx.Chain(http.HandlerFunc(h.HandleToggle),
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /v1/bookmarks", securedList)
	r.Mux.Handle("POST /v1/bookmarks", securedToggle)
}

func (r *Router) registerBootstrap() {
	// POST /bootstrap - very strict rate limit by IP (one-time setup endpoint)
	bootstrapHandler := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(bootstrapHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
