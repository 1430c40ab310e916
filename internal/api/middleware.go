package api

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/Umangjain-9/book-review-platform/internal/domain"
	"github.com/Umangjain-9/book-review-platform/internal/http/response"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const contextKeyUser contextKey = "user"

// requireAuth is middleware that validates session tokens and attaches
// the authenticated user to the request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Missing authorization header", s.logger)
			return
		}

		// Parse Bearer token
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format", s.logger)
			return
		}

		user, err := s.authService.VerifyToken(r.Context(), parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token", s.logger)
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyUser, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// throttleAuth rejects auth requests from IPs that exceed the limiter.
// RealIP middleware runs first, so RemoteAddr is the client address.
func (s *Server) throttleAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}

		if !s.authLimiter.Allow(ip) {
			response.Error(w, http.StatusTooManyRequests, "Too many attempts, slow down", s.logger)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// currentUser extracts the authenticated user from request context.
// Returns nil if not authenticated.
func currentUser(ctx context.Context) *domain.User {
	if user, ok := ctx.Value(contextKeyUser).(*domain.User); ok {
		return user
	}
	return nil
}
