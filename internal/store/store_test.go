package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Umangjain-9/book-review-platform/internal/domain"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	// Create temp directory for test database
	tmpDir, err := os.MkdirTemp("", "bookreview-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := New(dbPath, nil)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}

	return store, cleanup
}

// Helper to create a test user
func createTestUser(id, email string) *domain.User {
	now := time.Now()
	return &domain.User{
		Record: domain.Record{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$10$notarealhashbutlongenoughtolooklikeone",
	}
}

// Helper to create a test book
func createTestBook(id, addedBy string) *domain.Book {
	now := time.Now()
	return &domain.Book{
		Record: domain.Record{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:         "Test Book",
		Author:        "Test Author",
		Genre:         "Fiction",
		PublishedYear: 2020,
		Description:   "A test book description",
		AddedBy:       addedBy,
		AddedByName:   "Test User",
	}
}

// Helper to create a test review
func createTestReview(id, bookID, userID string, rating int) *domain.Review {
	now := time.Now()
	return &domain.Review{
		Record: domain.Record{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookID:     bookID,
		UserID:     userID,
		UserName:   "Test User",
		Rating:     rating,
		ReviewText: "A thoughtful review",
	}
}
