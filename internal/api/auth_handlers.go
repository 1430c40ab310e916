package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/Umangjain-9/book-review-platform/internal/http/response"
	"github.com/Umangjain-9/book-review-platform/internal/service"
)

// authBody is the wire shape of a successful signup or login.
// Flat rather than nested so clients can treat it as a session record.
type authBody struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func toAuthBody(resp *service.AuthResponse) authBody {
	return authBody{
		ID:    resp.User.ID,
		Name:  resp.User.Name,
		Email: resp.User.Email,
		Token: resp.Token,
	}
}

// handleSignup creates a new account.
// POST /auth/signup
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	resp, err := s.authService.Signup(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, toAuthBody(resp), s.logger)
}

// handleLogin authenticates an existing account.
// POST /auth/login
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	resp, err := s.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, toAuthBody(resp), s.logger)
}
