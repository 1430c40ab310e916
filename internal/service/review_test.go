package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/Umangjain-9/book-review-platform/internal/errors"
)

func TestAddReview(t *testing.T) {
	authService, bookService, reviewService, cleanup := setupServices(t)
	defer cleanup()

	ctx := context.Background()
	owner := signupTestUser(t, authService, "owner@example.com")
	reviewer := signupTestUser(t, authService, "reviewer@example.com")

	book, err := bookService.Add(ctx, owner, validAddBookRequest())
	require.NoError(t, err)

	review, err := reviewService.Add(ctx, reviewer, book.ID, AddReviewRequest{
		Rating:     4,
		ReviewText: "Quiet and sharp.",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, review.ID)
	assert.Equal(t, book.ID, review.BookID)
	assert.Equal(t, reviewer.ID, review.UserID)
	assert.Equal(t, "Test Reader", review.UserName)
	assert.Equal(t, 4, review.Rating)
	assert.False(t, review.CreatedAt.IsZero())
}

func TestAddReview_BookNotFound(t *testing.T) {
	authService, _, reviewService, cleanup := setupServices(t)
	defer cleanup()

	reviewer := signupTestUser(t, authService, "reviewer@example.com")

	_, err := reviewService.Add(context.Background(), reviewer, "book-missing", AddReviewRequest{
		Rating:     4,
		ReviewText: "Ghost review.",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.ErrorContains(t, err, "Book not found")
}

func TestAddReview_RatingOutOfRange(t *testing.T) {
	authService, bookService, reviewService, cleanup := setupServices(t)
	defer cleanup()

	ctx := context.Background()
	owner := signupTestUser(t, authService, "owner@example.com")

	book, err := bookService.Add(ctx, owner, validAddBookRequest())
	require.NoError(t, err)

	_, err = reviewService.Add(ctx, owner, book.ID, AddReviewRequest{Rating: 0, ReviewText: "nope"})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = reviewService.Add(ctx, owner, book.ID, AddReviewRequest{Rating: 6, ReviewText: "nope"})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestAddReview_MissingText(t *testing.T) {
	authService, bookService, reviewService, cleanup := setupServices(t)
	defer cleanup()

	ctx := context.Background()
	owner := signupTestUser(t, authService, "owner@example.com")

	book, err := bookService.Add(ctx, owner, validAddBookRequest())
	require.NoError(t, err)

	_, err = reviewService.Add(ctx, owner, book.ID, AddReviewRequest{Rating: 3})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
	assert.ErrorContains(t, err, "review_text is required")
}

func TestListReviewsForBook(t *testing.T) {
	authService, bookService, reviewService, cleanup := setupServices(t)
	defer cleanup()

	ctx := context.Background()
	owner := signupTestUser(t, authService, "owner@example.com")

	book, err := bookService.Add(ctx, owner, validAddBookRequest())
	require.NoError(t, err)

	for _, rating := range []int{2, 4, 5} {
		_, err = reviewService.Add(ctx, owner, book.ID, AddReviewRequest{
			Rating:     rating,
			ReviewText: "Another read.",
		})
		require.NoError(t, err)
	}

	reviews, err := reviewService.ListForBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 3)
}

func TestListReviewsForBook_NoReviews(t *testing.T) {
	authService, bookService, reviewService, cleanup := setupServices(t)
	defer cleanup()

	ctx := context.Background()
	owner := signupTestUser(t, authService, "owner@example.com")

	book, err := bookService.Add(ctx, owner, validAddBookRequest())
	require.NoError(t, err)

	reviews, err := reviewService.ListForBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestListReviewsForBook_UnknownBookIsEmpty(t *testing.T) {
	_, _, reviewService, cleanup := setupServices(t)
	defer cleanup()

	reviews, err := reviewService.ListForBook(context.Background(), "book-missing")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestListReviewsForBook_EmptyAfterBookDelete(t *testing.T) {
	authService, bookService, reviewService, cleanup := setupServices(t)
	defer cleanup()

	ctx := context.Background()
	owner := signupTestUser(t, authService, "owner@example.com")

	book, err := bookService.Add(ctx, owner, validAddBookRequest())
	require.NoError(t, err)
	_, err = reviewService.Add(ctx, owner, book.ID, AddReviewRequest{
		Rating:     5,
		ReviewText: "Gone soon.",
	})
	require.NoError(t, err)

	require.NoError(t, bookService.Delete(ctx, owner, book.ID))

	reviews, err := reviewService.ListForBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
