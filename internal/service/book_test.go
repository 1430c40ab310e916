package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Umangjain-9/book-review-platform/internal/domain"
	domainerrors "github.com/Umangjain-9/book-review-platform/internal/errors"
)

func signupTestUser(t *testing.T, authService *AuthService, email string) *domain.User {
	t.Helper()

	ctx := context.Background()
	resp, err := authService.Signup(ctx, SignupRequest{
		Name:     "Test Reader",
		Email:    email,
		Password: "readingisfun",
	})
	require.NoError(t, err)

	user, err := authService.VerifyToken(ctx, resp.Token)
	require.NoError(t, err)
	return user
}

func validAddBookRequest() AddBookRequest {
	return AddBookRequest{
		Title:         "A Wizard of Earthsea",
		Author:        "Ursula K. Le Guin",
		Genre:         "Fantasy",
		PublishedYear: 1968,
		Description:   "Sparrowhawk learns the true names of things.",
	}
}

func TestAddBook(t *testing.T) {
	authService, bookService, _, cleanup := setupServices(t)
	defer cleanup()

	ctx := context.Background()
	owner := signupTestUser(t, authService, "owner@example.com")

	book, err := bookService.Add(ctx, owner, validAddBookRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, book.ID)
	assert.Equal(t, "A Wizard of Earthsea", book.Title)
	assert.Equal(t, owner.ID, book.AddedBy)
	assert.Equal(t, "Test Reader", book.AddedByName)
	assert.False(t, book.CreatedAt.IsZero())
}

func TestAddBook_UnknownGenre(t *testing.T) {
	authService, bookService, _, cleanup := setupServices(t)
	defer cleanup()

	owner := signupTestUser(t, authService, "owner@example.com")

	req := validAddBookRequest()
	req.Genre = "Cookbooks"

	_, err := bookService.Add(context.Background(), owner, req)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestAddBook_FutureYear(t *testing.T) {
	authService, bookService, _, cleanup := setupServices(t)
	defer cleanup()

	owner := signupTestUser(t, authService, "owner@example.com")

	req := validAddBookRequest()
	req.PublishedYear = 2099

	_, err := bookService.Add(context.Background(), owner, req)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestAddBook_MissingFields(t *testing.T) {
	authService, bookService, _, cleanup := setupServices(t)
	defer cleanup()

	owner := signupTestUser(t, authService, "owner@example.com")

	_, err := bookService.Add(context.Background(), owner, AddBookRequest{Title: "Untitled"})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestAddBook_MissingDescription(t *testing.T) {
	authService, bookService, _, cleanup := setupServices(t)
	defer cleanup()

	owner := signupTestUser(t, authService, "owner@example.com")

	req := validAddBookRequest()
	req.Description = ""

	_, err := bookService.Add(context.Background(), owner, req)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
	assert.ErrorContains(t, err, "description is required")
}

func TestListBooks(t *testing.T) {
	authService, bookService, _, cleanup := setupServices(t)
	defer cleanup()

	ctx := context.Background()
	owner := signupTestUser(t, authService, "owner@example.com")

	_, err := bookService.Add(ctx, owner, validAddBookRequest())
	require.NoError(t, err)

	req := validAddBookRequest()
	req.Title = "The Tombs of Atuan"
	_, err = bookService.Add(ctx, owner, req)
	require.NoError(t, err)

	books, err := bookService.List(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 2)
}

func TestGetBook_NotFound(t *testing.T) {
	_, bookService, _, cleanup := setupServices(t)
	defer cleanup()

	_, err := bookService.Get(context.Background(), "book-missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDeleteBook(t *testing.T) {
	authService, bookService, reviewService, cleanup := setupServices(t)
	defer cleanup()

	ctx := context.Background()
	owner := signupTestUser(t, authService, "owner@example.com")
	reviewer := signupTestUser(t, authService, "reviewer@example.com")

	book, err := bookService.Add(ctx, owner, validAddBookRequest())
	require.NoError(t, err)

	_, err = reviewService.Add(ctx, reviewer, book.ID, AddReviewRequest{Rating: 5, ReviewText: "A classic."})
	require.NoError(t, err)

	require.NoError(t, bookService.Delete(ctx, owner, book.ID))

	_, err = bookService.Get(ctx, book.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	// Reviews go with the book.
	_, err = reviewService.ListForBook(ctx, book.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDeleteBook_NotOwner(t *testing.T) {
	authService, bookService, _, cleanup := setupServices(t)
	defer cleanup()

	ctx := context.Background()
	owner := signupTestUser(t, authService, "owner@example.com")
	other := signupTestUser(t, authService, "other@example.com")

	book, err := bookService.Add(ctx, owner, validAddBookRequest())
	require.NoError(t, err)

	err = bookService.Delete(ctx, other, book.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.ErrorContains(t, err, "User not authorized")

	// Book is untouched.
	_, err = bookService.Get(ctx, book.ID)
	require.NoError(t, err)
}

func TestDeleteBook_NotFound(t *testing.T) {
	authService, bookService, _, cleanup := setupServices(t)
	defer cleanup()

	owner := signupTestUser(t, authService, "owner@example.com")

	err := bookService.Delete(context.Background(), owner, "book-missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
