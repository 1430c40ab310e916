package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Umangjain-9/book-review-platform/internal/api"
	"github.com/Umangjain-9/book-review-platform/internal/auth"
	"github.com/Umangjain-9/book-review-platform/internal/service"
	"github.com/Umangjain-9/book-review-platform/internal/store"
)

// setupClient spins up a real API server on httptest and points a
// Client at it.
func setupClient(t *testing.T) *Client {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "bookreview-client-test-*")
	require.NoError(t, err)

	s, err := store.New(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)

	authKey, err := auth.LoadOrGenerateKey(tmpDir)
	require.NoError(t, err)

	tokenService, err := auth.NewTokenService(authKey, 720*time.Hour)
	require.NoError(t, err)

	authService := service.NewAuthService(s, tokenService, nil)
	bookService := service.NewBookService(s, nil)
	reviewService := service.NewReviewService(s, nil)

	handler := api.NewServer(authService, bookService, reviewService, []string{"*"}, nil)
	server := httptest.NewServer(handler)

	t.Cleanup(func() {
		server.Close()
		handler.Close()
		s.Close()
		os.RemoveAll(tmpDir)
	})

	return New(server.URL)
}

func TestSignupAndLogin(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()

	session, err := c.Signup(ctx, "Ada Lovelace", "ada@example.com", "notesonengines")
	require.NoError(t, err)
	assert.NotEmpty(t, session.UserID)
	assert.Equal(t, "Ada Lovelace", session.Name)
	assert.NotEmpty(t, session.Token)

	// Fresh client, log back in.
	c2 := New(c.baseURL)
	session2, err := c2.Login(ctx, "ada@example.com", "notesonengines")
	require.NoError(t, err)
	assert.Equal(t, session.UserID, session2.UserID)
}

func TestLogin_BadCredentials(t *testing.T) {
	c := setupClient(t)

	_, err := c.Login(context.Background(), "nobody@example.com", "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestBookLifecycle(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()

	_, err := c.Signup(ctx, "Ada", "ada@example.com", "notesonengines")
	require.NoError(t, err)

	book, err := c.AddBook(ctx, service.AddBookRequest{
		Title:         "A Wizard of Earthsea",
		Author:        "Ursula K. Le Guin",
		Genre:         "Fantasy",
		PublishedYear: 1968,
		Description:   "Sparrowhawk learns the true names of things.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, book.ID)

	books, err := c.ListBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 1)

	require.NoError(t, c.DeleteBook(ctx, book.ID))

	books, err = c.ListBooks(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestAddBook_RequiresAuth(t *testing.T) {
	c := setupClient(t)

	_, err := c.AddBook(context.Background(), service.AddBookRequest{
		Title:         "Orphan Book",
		Author:        "Nobody",
		Genre:         "Fiction",
		PublishedYear: 2000,
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestReviews(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()

	_, err := c.Signup(ctx, "Ada", "ada@example.com", "notesonengines")
	require.NoError(t, err)

	book, err := c.AddBook(ctx, service.AddBookRequest{
		Title:         "The Dispossessed",
		Author:        "Ursula K. Le Guin",
		Genre:         "Science Fiction",
		PublishedYear: 1974,
		Description:   "An ambiguous utopia.",
	})
	require.NoError(t, err)

	review, err := c.AddReview(ctx, book.ID, service.AddReviewRequest{
		Rating:     5,
		ReviewText: "An ambiguous utopia.",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "Ada", review.UserName)

	reviews, err := c.ListReviews(ctx, book.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestReviews_UnknownBookIsEmpty(t *testing.T) {
	c := setupClient(t)

	reviews, err := c.ListReviews(context.Background(), "book-missing")

	require.NoError(t, err)
	assert.Empty(t, reviews)
}
