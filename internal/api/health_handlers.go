package api

import (
	"net/http"

	"github.com/Umangjain-9/book-review-platform/internal/http/response"
)

// healthBody is the health check response.
type healthBody struct {
	Status string `json:"status"`
}

// handleHealthCheck reports server liveness.
// GET /health
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, healthBody{Status: "ok"}, s.logger)
}
