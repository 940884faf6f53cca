// Package api exposes the session, favorites and catalog services over a
// thin HTTP JSON surface. It is the orchestration boundary: errors from the
// services pass through unchanged and are mapped to status codes here.
package api

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nfournier/cinelog/internal/catalog"
	"github.com/nfournier/cinelog/internal/favorites"
	"github.com/nfournier/cinelog/internal/middleware"
	"github.com/nfournier/cinelog/internal/session"
)

// Server holds the services the handlers dispatch to.
type Server struct {
	sessions  *session.Manager
	favorites *favorites.Service
	catalog   *catalog.Client
	logger    *slog.Logger
}

// NewServer creates the API server.
func NewServer(sessions *session.Manager, favs *favorites.Service, cat *catalog.Client, logger *slog.Logger) *Server {
	return &Server{
		sessions:  sessions,
		favorites: favs,
		catalog:   cat,
		logger:    logger,
	}
}

// Handler builds the route table with auth applied to the protected routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	authed := middleware.RequireAuth(s.sessions)

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/auth/logout", s.handleLogout)
	mux.HandleFunc("GET /api/auth/session", s.handleSession)
	mux.Handle("PUT /api/profile", authed(http.HandlerFunc(s.handleUpdateProfile)))

	mux.Handle("GET /api/favorites", authed(http.HandlerFunc(s.handleListFavorites)))
	mux.Handle("PUT /api/favorites/{movieID}", authed(http.HandlerFunc(s.handleAddFavorite)))
	mux.Handle("DELETE /api/favorites/{movieID}", authed(http.HandlerFunc(s.handleRemoveFavorite)))

	mux.HandleFunc("GET /api/movies", s.handleDiscover)
	mux.HandleFunc("GET /api/movies/search", s.handleSearch)
	mux.HandleFunc("GET /api/movies/upcoming", s.handleUpcoming)
	mux.HandleFunc("GET /api/movies/top-rated", s.handleTopRated)
	mux.HandleFunc("GET /api/movies/{movieID}", s.handleMovieDetails)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.Logging(middleware.Metrics(mux))
}
