// Command dbinspect prints a summary of a review platform database and
// checks the review index for consistency. It opens the database
// read-only, so it is safe to run against a live data directory copy.
//
// Usage:
//
//	DB_PATH=~/.bookreview/db go run ./cmd/dbinspect
//	go run ./cmd/dbinspect -export backup.bak   # also write a snapshot
package main

import (
	"encoding/json/v2"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/Umangjain-9/book-review-platform/internal/domain"
)

var exportPath = flag.String("export", "", "write a database snapshot to this file")

func main() {
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/.bookreview/db")
	}

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Printf("Database: %s\n\n", dbPath)

	fmt.Printf("Users:   %d\n", countPrefix(db, "user:"))
	countBooks(db)
	reviews := countPrefix(db, "review:")
	fmt.Printf("Reviews: %d\n", reviews)

	checkReviewIndex(db, reviews)

	if *exportPath != "" {
		exportSnapshot(db, *exportPath)
	}
}

// countPrefix counts entity keys under a prefix, skipping index keys.
func countPrefix(db *badger.DB, prefix string) int {
	count := 0
	_ = db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			count++
		}
		return nil
	})
	return count
}

// countBooks prints the book count and a per-genre breakdown.
func countBooks(db *badger.DB) {
	count := 0
	byGenre := make(map[string]int)

	_ = db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte("book:")
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte("book:")); it.ValidForPrefix([]byte("book:")); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var book domain.Book
				if err := json.Unmarshal(val, &book); err != nil {
					return err
				}
				count++
				byGenre[book.Genre]++
				return nil
			})
			if err != nil {
				fmt.Printf("  warning: unreadable book at %s: %v\n", it.Item().Key(), err)
			}
		}
		return nil
	})

	fmt.Printf("Books:   %d\n", count)
	for _, genre := range domain.Genres {
		if n := byGenre[genre]; n > 0 {
			fmt.Printf("  %-16s %d\n", genre, n)
		}
	}
}

// checkReviewIndex verifies that every index entry points at a review
// that exists and that the counts line up.
func checkReviewIndex(db *badger.DB, reviewCount int) {
	indexed := 0
	orphans := 0

	_ = db.View(func(txn *badger.Txn) error {
		prefix := []byte("idx:reviews:book:")
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			indexed++
			key := string(it.Item().Key())
			// idx:reviews:book:<bookID>:<reviewID>
			reviewID := key[strings.LastIndex(key, ":")+1:]
			if _, err := txn.Get([]byte("review:" + reviewID)); err != nil {
				orphans++
				fmt.Printf("  orphan index entry: %s\n", key)
			}
		}
		return nil
	})

	fmt.Printf("\nReview index: %d entries", indexed)
	switch {
	case orphans > 0:
		fmt.Printf(", %d orphaned\n", orphans)
	case indexed != reviewCount:
		fmt.Printf(" (mismatch: %d reviews)\n", reviewCount)
	default:
		fmt.Println(" (consistent)")
	}
}

// exportSnapshot writes a Badger backup stream to the given path.
func exportSnapshot(db *badger.DB, path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()

	if _, err := db.Backup(f, 0); err != nil {
		log.Fatalf("Backup failed: %v", err)
	}
	fmt.Printf("\nSnapshot written to %s\n", path)
}
