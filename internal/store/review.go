package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/Umangjain-9/book-review-platform/internal/domain"
)

const (
	reviewPrefix       = "review:"
	reviewByBookPrefix = "idx:reviews:book:" // idx:reviews:book:<bookID>:<reviewID>
)

var (
	// ErrReviewNotFound is returned when a review cannot be found by ID.
	ErrReviewNotFound = errors.New("review not found")
	// ErrReviewExists is returned when attempting to create a review with an existing ID.
	ErrReviewExists = errors.New("review already exists")
)

// CreateReview stores a new review and its book index entry atomically.
func (s *Store) CreateReview(ctx context.Context, review *domain.Review) error {
	key := []byte(reviewPrefix + review.ID)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check review exists: %w", err)
	}
	if exists {
		return ErrReviewExists
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		data, err := json.Marshal(review)
		if err != nil {
			return fmt.Errorf("marshal review: %w", err)
		}

		if err := txn.Set(key, data); err != nil {
			return err
		}

		// Create book index
		indexKey := []byte(reviewByBookPrefix + review.BookID + ":" + review.ID)
		return txn.Set(indexKey, []byte(review.ID))
	})
	if err != nil {
		return fmt.Errorf("create review: %w", err)
	}

	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "review created",
			slog.String("id", review.ID),
			slog.String("book_id", review.BookID),
			slog.Int("rating", review.Rating),
		)
	}
	return nil
}

// GetReview retrieves a review by ID.
func (s *Store) GetReview(_ context.Context, id string) (*domain.Review, error) {
	key := []byte(reviewPrefix + id)

	var review domain.Review
	if err := s.get(key, &review); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}

	return &review, nil
}

// ListReviewsForBook returns every review for the given book, in
// index order (review IDs are random, so effectively unordered).
func (s *Store) ListReviewsForBook(_ context.Context, bookID string) ([]*domain.Review, error) {
	var reviews []*domain.Review
	indexPrefix := []byte(reviewByBookPrefix + bookID + ":")

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = indexPrefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(indexPrefix); it.ValidForPrefix(indexPrefix); it.Next() {
			var reviewID string
			err := it.Item().Value(func(val []byte) error {
				reviewID = string(val)
				return nil
			})
			if err != nil {
				return err
			}

			item, err := txn.Get([]byte(reviewPrefix + reviewID))
			if err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					// Index entry without a review is a leftover from a
					// partial write in an old version; skip it.
					continue
				}
				return err
			}

			err = item.Value(func(val []byte) error {
				var review domain.Review
				if err := json.Unmarshal(val, &review); err != nil {
					return err
				}
				reviews = append(reviews, &review)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list reviews for book: %w", err)
	}

	return reviews, nil
}
