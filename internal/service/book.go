package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Umangjain-9/book-review-platform/internal/domain"
	domainerrors "github.com/Umangjain-9/book-review-platform/internal/errors"
	"github.com/Umangjain-9/book-review-platform/internal/id"
	"github.com/Umangjain-9/book-review-platform/internal/store"
	"github.com/Umangjain-9/book-review-platform/internal/validation"
)

// BookService handles the book catalog.
type BookService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewBookService creates a new book service.
func NewBookService(store *store.Store, logger *slog.Logger) *BookService {
	return &BookService{
		store:  store,
		logger: logger,
	}
}

// AddBookRequest contains new catalog entry data.
type AddBookRequest struct {
	Title         string `json:"title" validate:"required,max=300"`
	Author        string `json:"author" validate:"required,max=200"`
	Genre         string `json:"genre" validate:"required"`
	PublishedYear int    `json:"published_year" validate:"required,gte=1,lte=2100"`
	Description   string `json:"description" validate:"required,max=5000"`
	CoverImage    string `json:"cover_image" validate:"omitempty,url"`
}

// List returns the whole catalog.
func (s *BookService) List(ctx context.Context) ([]*domain.Book, error) {
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// Get returns a single book by ID.
func (s *BookService) Get(ctx context.Context, bookID string) (*domain.Book, error) {
	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return nil, domainerrors.NotFound("Book not found")
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return book, nil
}

// Add creates a new catalog entry owned by the given user. The owner's
// name is denormalized onto the book for display.
func (s *BookService) Add(ctx context.Context, owner *domain.User, req AddBookRequest) (*domain.Book, error) {
	if err := validation.Check(req); err != nil {
		return nil, err
	}

	if !domain.ValidGenre(req.Genre) {
		return nil, domainerrors.Validationf("genre must be one of the known genres")
	}

	if req.PublishedYear > time.Now().Year() {
		return nil, domainerrors.Validationf("published_year cannot be in the future")
	}

	bookID, err := id.Generate("book")
	if err != nil {
		return nil, fmt.Errorf("generate book ID: %w", err)
	}

	book := &domain.Book{
		Record: domain.Record{
			ID: bookID,
		},
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		PublishedYear: req.PublishedYear,
		Description:   req.Description,
		CoverImage:    req.CoverImage,
		AddedBy:       owner.ID,
		AddedByName:   owner.Name,
	}
	book.InitTimestamps()

	if err := s.store.CreateBook(ctx, book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	return book, nil
}

// Delete removes a book and all of its reviews. Only the user who added
// the book may delete it.
func (s *BookService) Delete(ctx context.Context, user *domain.User, bookID string) error {
	book, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return domainerrors.NotFound("Book not found")
		}
		return fmt.Errorf("get book: %w", err)
	}

	if !book.OwnedBy(user.ID) {
		return domainerrors.Unauthorized("User not authorized")
	}

	if err := s.store.DeleteBookWithReviews(ctx, bookID); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("book removed", "book_id", bookID, "user_id", user.ID)
	}

	return nil
}
