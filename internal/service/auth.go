// Package service implements the application's business logic on top of
// the store.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Umangjain-9/book-review-platform/internal/auth"
	"github.com/Umangjain-9/book-review-platform/internal/domain"
	domainerrors "github.com/Umangjain-9/book-review-platform/internal/errors"
	"github.com/Umangjain-9/book-review-platform/internal/id"
	"github.com/Umangjain-9/book-review-platform/internal/store"
	"github.com/Umangjain-9/book-review-platform/internal/validation"
)

// AuthService handles signup, login, and token verification.
type AuthService struct {
	store        *store.Store
	tokenService *auth.TokenService
	logger       *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(store *store.Store, tokenService *auth.TokenService, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:        store,
		tokenService: tokenService,
		logger:       logger,
	}
}

// SignupRequest contains new account data.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=1024"`
}

// LoginRequest contains user credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse contains the session token and the authenticated user.
type AuthResponse struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

// Signup creates a new account and returns a session token for it.
// A duplicate email is rejected before any data is written.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	if err := validation.Check(req); err != nil {
		return nil, err
	}

	userID, err := id.Generate("user")
	if err != nil {
		return nil, fmt.Errorf("generate user ID: %w", err)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Record: domain.Record{
			ID: userID,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}
	user.InitTimestamps()

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return nil, domainerrors.AlreadyExists("User already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokenService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("user signed up", "user_id", user.ID)
	}

	return &AuthResponse{
		Token: token,
		User:  user.Public(),
	}, nil
}

// Login verifies credentials and returns a fresh session token.
// Unknown email and wrong password produce the same error, and both
// paths burn a bcrypt comparison so they take comparable time.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if err := validation.Check(req); err != nil {
		return nil, err
	}

	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			auth.VerifyDummy(req.Password)
			return nil, domainerrors.InvalidCredentials("Invalid email or password")
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, domainerrors.InvalidCredentials("Invalid email or password")
	}

	token, err := s.tokenService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("user logged in", "user_id", user.ID)
	}

	return &AuthResponse{
		Token: token,
		User:  user.Public(),
	}, nil
}

// VerifyToken validates a session token and loads the account it names.
// A token for a user that no longer exists is treated as invalid.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokenService.VerifyToken(token)
	if err != nil {
		return nil, domainerrors.Unauthorized("Not authorized").WithCause(err)
	}

	user, err := s.store.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, domainerrors.Unauthorized("Not authorized")
		}
		return nil, fmt.Errorf("load user for token: %w", err)
	}

	return user, nil
}
