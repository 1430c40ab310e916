package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Umangjain-9/book-review-platform/internal/domain"
	"github.com/Umangjain-9/book-review-platform/internal/http/response"
	"github.com/Umangjain-9/book-review-platform/internal/service"
)

// handleListBooks returns the whole catalog.
// GET /books
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := s.bookService.List(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	// An empty catalog is [], not null.
	if books == nil {
		books = []*domain.Book{}
	}

	response.Success(w, books, s.logger)
}

// handleGetBook returns a single book.
// GET /books/{id}
func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	book, err := s.bookService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, book, s.logger)
}

// handleAddBook creates a new catalog entry owned by the caller.
// POST /books
func (s *Server) handleAddBook(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	if user == nil {
		response.Unauthorized(w, "Not authorized", s.logger)
		return
	}

	var req service.AddBookRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	book, err := s.bookService.Add(r.Context(), user, req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, book, s.logger)
}

// handleDeleteBook removes a book and its reviews. Owner only.
// DELETE /books/{id}
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	if user == nil {
		response.Unauthorized(w, "Not authorized", s.logger)
		return
	}

	if err := s.bookService.Delete(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, map[string]string{"message": "Book removed"}, s.logger)
}
