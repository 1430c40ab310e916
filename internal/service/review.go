package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Umangjain-9/book-review-platform/internal/domain"
	domainerrors "github.com/Umangjain-9/book-review-platform/internal/errors"
	"github.com/Umangjain-9/book-review-platform/internal/id"
	"github.com/Umangjain-9/book-review-platform/internal/store"
	"github.com/Umangjain-9/book-review-platform/internal/validation"
)

// ReviewService handles the review ledger.
type ReviewService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(store *store.Store, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		store:  store,
		logger: logger,
	}
}

// AddReviewRequest contains new review data.
type AddReviewRequest struct {
	Rating     int    `json:"rating" validate:"required,gte=1,lte=5"`
	ReviewText string `json:"review_text" validate:"required,max=5000"`
}

// ListForBook returns every review for the given book. An unknown book
// ID yields an empty list, not an error: after a cascade delete the ID
// is simply gone, and listing its reviews must read as empty.
func (s *ReviewService) ListForBook(ctx context.Context, bookID string) ([]*domain.Review, error) {
	reviews, err := s.store.ListReviewsForBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// Add attaches a new review to a book. The author's name is
// denormalized onto the review for display.
func (s *ReviewService) Add(ctx context.Context, author *domain.User, bookID string, req AddReviewRequest) (*domain.Review, error) {
	if err := validation.Check(req); err != nil {
		return nil, err
	}

	exists, err := s.store.BookExists(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("check book exists: %w", err)
	}
	if !exists {
		return nil, domainerrors.NotFound("Book not found")
	}

	reviewID, err := id.Generate("review")
	if err != nil {
		return nil, fmt.Errorf("generate review ID: %w", err)
	}

	review := &domain.Review{
		Record: domain.Record{
			ID: reviewID,
		},
		BookID:     bookID,
		UserID:     author.ID,
		UserName:   author.Name,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	}
	review.InitTimestamps()

	if err := s.store.CreateReview(ctx, review); err != nil {
		if errors.Is(err, store.ErrReviewExists) {
			return nil, fmt.Errorf("review ID collision: %w", err)
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	return review, nil
}
