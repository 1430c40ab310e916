package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	review := createTestReview("review-1", "book-1", "user-1", 4)

	require.NoError(t, store.CreateReview(ctx, review))

	got, err := store.GetReview(ctx, "review-1")
	require.NoError(t, err)
	assert.Equal(t, "book-1", got.BookID)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, "A thoughtful review", got.ReviewText)
}

func TestCreateReview_Duplicate(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.CreateReview(ctx, createTestReview("review-1", "book-1", "user-1", 4)))

	err := store.CreateReview(ctx, createTestReview("review-1", "book-1", "user-2", 2))
	assert.ErrorIs(t, err, ErrReviewExists)
}

func TestGetReview_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.GetReview(context.Background(), "review-missing")
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestListReviewsForBook(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	for i := range 3 {
		review := createTestReview(fmt.Sprintf("review-%d", i), "book-1", "user-1", i+1)
		require.NoError(t, store.CreateReview(ctx, review))
	}
	// A review on another book must not leak into the listing.
	require.NoError(t, store.CreateReview(ctx, createTestReview("review-other", "book-2", "user-1", 5)))

	reviews, err := store.ListReviewsForBook(ctx, "book-1")
	require.NoError(t, err)
	assert.Len(t, reviews, 3)
	for _, r := range reviews {
		assert.Equal(t, "book-1", r.BookID)
	}
}

func TestListReviewsForBook_Empty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	reviews, err := store.ListReviewsForBook(context.Background(), "book-unreviewed")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestListReviewsForBook_PrefixDoesNotCollide(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	// "book-1" is a prefix of "book-12"; the trailing colon in the
	// index key must keep them apart.
	require.NoError(t, store.CreateReview(ctx, createTestReview("review-a", "book-1", "user-1", 5)))
	require.NoError(t, store.CreateReview(ctx, createTestReview("review-b", "book-12", "user-1", 2)))

	reviews, err := store.ListReviewsForBook(ctx, "book-1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "review-a", reviews[0].ID)
}
