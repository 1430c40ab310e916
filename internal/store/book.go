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

const bookPrefix = "book:"

var (
	// ErrBookNotFound is returned when a book cannot be found by ID.
	ErrBookNotFound = errors.New("book not found")
	// ErrBookExists is returned when attempting to create a book with an existing ID.
	ErrBookExists = errors.New("book already exists")
)

// CreateBook creates a new catalog entry.
func (s *Store) CreateBook(ctx context.Context, book *domain.Book) error {
	key := []byte(bookPrefix + book.ID)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check book exists: %w", err)
	}
	if exists {
		return ErrBookExists
	}

	if err := s.set(key, book); err != nil {
		return fmt.Errorf("create book: %w", err)
	}

	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "book created",
			slog.String("id", book.ID),
			slog.String("title", book.Title),
			slog.String("added_by", book.AddedBy),
		)
	}
	return nil
}

// GetBook retrieves a book by ID.
func (s *Store) GetBook(_ context.Context, id string) (*domain.Book, error) {
	key := []byte(bookPrefix + id)

	var book domain.Book
	if err := s.get(key, &book); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("get book: %w", err)
	}

	return &book, nil
}

// BookExists checks if a book exists by ID.
func (s *Store) BookExists(_ context.Context, id string) (bool, error) {
	key := []byte(bookPrefix + id)
	return s.exists(key)
}

// ListBooks returns every book in the catalog. The catalog is small
// enough that clients filter, sort, and page it themselves.
func (s *Store) ListBooks(_ context.Context) ([]*domain.Book, error) {
	var books []*domain.Book
	prefix := []byte(bookPrefix)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var book domain.Book
				if err := json.Unmarshal(val, &book); err != nil {
					return err
				}
				books = append(books, &book)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	return books, nil
}

// DeleteBookWithReviews removes a book and all of its reviews in a
// single transaction. Either everything goes or nothing does, so a
// crash can never leave orphaned reviews behind.
func (s *Store) DeleteBookWithReviews(ctx context.Context, id string) error {
	book, err := s.GetBook(ctx, id)
	if err != nil {
		return err
	}

	deleted := 0
	err = s.db.Update(func(txn *badger.Txn) error {
		key := []byte(bookPrefix + id)
		if err := txn.Delete(key); err != nil {
			return err
		}

		// Walk the book's review index and delete each review plus its
		// index entry.
		indexPrefix := []byte(reviewByBookPrefix + id + ":")
		opts := badger.DefaultIteratorOptions
		opts.Prefix = indexPrefix
		opts.PrefetchValues = false

		// Collect keys first; deleting while the iterator is open is
		// not safe in the same transaction.
		it := txn.NewIterator(opts)
		var reviewKeys [][]byte
		for it.Seek(indexPrefix); it.ValidForPrefix(indexPrefix); it.Next() {
			indexKey := it.Item().KeyCopy(nil)
			reviewID := string(indexKey[len(indexPrefix):])
			reviewKeys = append(reviewKeys, indexKey, []byte(reviewPrefix+reviewID))
		}
		it.Close()

		for _, k := range reviewKeys {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		deleted = len(reviewKeys) / 2
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("book deleted", "id", id, "title", book.Title, "reviews_removed", deleted)
	}

	return nil
}
