package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tschmitz/bookmarkd/internal/auth"
	"github.com/tschmitz/bookmarkd/internal/store"

	_ "github.com/tschmitz/bookmarkd/docs/swagger"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	BearerAuth    *auth.BearerMiddleware
	BookmarkStore *store.BookmarkStore
	TagStore      *store.TagStore
	Ownership     *store.OwnershipPolicy
	TokenStore    auth.TokenStore
}

// NewRouter assembles the full chi router. The discovery index, health check,
// metrics, and swagger UI are reachable without credentials; everything under
// /api beyond the index requires a bearer credential.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	// Operational endpoints (no auth).
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		// All API responses are JSON.
		r.Use(jsonContentType)

		// Discovery index stays reachable without credentials.
		r.Get("/", rootIndex)

		r.Group(func(r chi.Router) {
			r.Use(deps.BearerAuth.Authenticate)
			registerBookmarkRoutes(r, deps.BookmarkStore, deps.TagStore, deps.Ownership)
			registerTagRoutes(r, deps.TagStore, deps.BookmarkStore)
			registerTokenRoutes(r, deps.TokenStore)
		})
	})

	return r
}

// rootIndex returns the collection URLs a client can discover without
// credentials. Data only; no hypermedia envelope.
// GET /api
//
// @Summary      Discovery index
// @Description  Lists the top-level collection URLs. No authentication required.
// @Tags         Discovery
// @Produce      json
// @Success      200  {object}  RootResponse
// @Router       / [get]
func rootIndex(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{
		Bookmarks: "/api/bookmarks{?page,size}",
		Tags:      "/api/tags{?page,size}",
		Tokens:    "/api/tokens",
	})
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
