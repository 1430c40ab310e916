package tui

import (
	"sort"
	"strings"

	"github.com/Umangjain-9/book-review-platform/internal/domain"
)

// pageSize is how many books fit on one home page.
const pageSize = 6

// SortKey selects the catalog ordering.
type SortKey string

const (
	// SortByTitle orders alphabetically by title.
	SortByTitle SortKey = "title"
	// SortByYear orders newest publication first.
	SortByYear SortKey = "year"
	// SortByRating orders highest average rating first.
	SortByRating SortKey = "rating"
)

// FilterBooks narrows the catalog by a free-text search over title and
// author (case-insensitive substring) and an optional genre. An empty
// search or genre matches everything.
func FilterBooks(books []domain.Book, search, genre string) []domain.Book {
	needle := strings.ToLower(strings.TrimSpace(search))

	var out []domain.Book
	for _, b := range books {
		if genre != "" && b.Genre != genre {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(b.Title), needle) &&
			!strings.Contains(strings.ToLower(b.Author), needle) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// SortBooks orders the given books by the chosen key. Rating order
// needs the per-book averages, computed client-side from reviews;
// books with no rating sort last. The input slice is not modified.
func SortBooks(books []domain.Book, key SortKey, ratings map[string]float64) []domain.Book {
	sorted := make([]domain.Book, len(books))
	copy(sorted, books)

	switch key {
	case SortByTitle:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
		})
	case SortByYear:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PublishedYear > sorted[j].PublishedYear
		})
	case SortByRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return ratings[sorted[i].ID] > ratings[sorted[j].ID]
		})
	}
	return sorted
}

// Paginate returns the books on the given zero-based page.
func Paginate(books []domain.Book, page int) []domain.Book {
	start := page * pageSize
	if start < 0 || start >= len(books) {
		return nil
	}
	end := min(start+pageSize, len(books))
	return books[start:end]
}

// TotalPages returns how many pages the given catalog spans.
// An empty catalog still has one (empty) page.
func TotalPages(count int) int {
	if count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// AverageRatings computes the per-book average rating from a reviews
// map keyed by book ID.
func AverageRatings(reviews map[string][]domain.Review) map[string]float64 {
	out := make(map[string]float64, len(reviews))
	for bookID, rs := range reviews {
		stats := domain.ComputeRatingStats(rs)
		if stats.Count > 0 {
			out[bookID] = stats.Average
		}
	}
	return out
}
