package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Umangjain-9/book-review-platform/internal/domain"
	"github.com/Umangjain-9/book-review-platform/internal/http/response"
	"github.com/Umangjain-9/book-review-platform/internal/service"
)

// handleListReviews returns all reviews for a book.
// GET /reviews/{bookID}
func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := s.reviewService.ListForBook(r.Context(), chi.URLParam(r, "bookID"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	// An unreviewed book is [], not null.
	if reviews == nil {
		reviews = []*domain.Review{}
	}

	response.Success(w, reviews, s.logger)
}

// handleAddReview attaches a review to a book.
// POST /reviews/{bookID}
func (s *Server) handleAddReview(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	if user == nil {
		response.Unauthorized(w, "Not authorized", s.logger)
		return
	}

	var req service.AddReviewRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	review, err := s.reviewService.Add(r.Context(), user, chi.URLParam(r, "bookID"), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, review, s.logger)
}
