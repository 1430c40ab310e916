// Package api provides the HTTP API server and handlers for the review platform.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Umangjain-9/book-review-platform/internal/ratelimit"
	"github.com/Umangjain-9/book-review-platform/internal/service"
)

// Auth endpoints are throttled per client IP to slow down credential
// guessing. Steady state allows a login attempt every couple of
// seconds; the burst absorbs a user fumbling their password.
const (
	authRateLimit = 0.5
	authRateBurst = 20
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	authService   *service.AuthService
	bookService   *service.BookService
	reviewService *service.ReviewService
	router        *chi.Mux
	corsOrigins   []string
	authLimiter   *ratelimit.Keyed
	logger        *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(authService *service.AuthService, bookService *service.BookService, reviewService *service.ReviewService, corsOrigins []string, logger *slog.Logger) *Server {
	s := &Server{
		authService:   authService,
		bookService:   bookService,
		reviewService: reviewService,
		router:        chi.NewRouter(),
		corsOrigins:   corsOrigins,
		authLimiter:   ratelimit.New(authRateLimit, authRateBurst),
		logger:        logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases background resources held by the server.
func (s *Server) Close() {
	s.authLimiter.Stop()
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// Auth endpoints (public, rate limited).
	s.router.Route("/auth", func(r chi.Router) {
		r.Use(s.throttleAuth)
		r.Post("/signup", s.handleSignup)
		r.Post("/login", s.handleLogin)
	})

	// Books: the catalog is public to read, protected to change.
	s.router.Route("/books", func(r chi.Router) {
		r.Get("/", s.handleListBooks)
		r.Get("/{id}", s.handleGetBook)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/", s.handleAddBook)
			r.Delete("/{id}", s.handleDeleteBook)
		})
	})

	// Reviews: public to read, protected to add.
	s.router.Route("/reviews", func(r chi.Router) {
		r.Get("/{bookID}", s.handleListReviews)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/{bookID}", s.handleAddReview)
		})
	})
}
