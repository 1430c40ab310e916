package domain

const (
	// MinRating is the lowest rating a review may carry.
	MinRating = 1
	// MaxRating is the highest rating a review may carry.
	MaxRating = 5
)

// Review represents one user's rating and commentary on a book.
// UserName is denormalized from the author at creation time.
type Review struct {
	Record
	BookID     string `json:"book_id"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
}

// ValidRating reports whether a rating falls in the accepted range.
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// RatingStats aggregates the ratings of a set of reviews.
type RatingStats struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	// Histogram[i] counts reviews with rating i+1.
	Histogram [MaxRating]int `json:"histogram"`
}

// ComputeRatingStats derives the average rating and a per-star histogram
// from a slice of reviews. Reviews with out-of-range ratings are skipped.
func ComputeRatingStats(reviews []Review) RatingStats {
	var stats RatingStats
	sum := 0
	for _, r := range reviews {
		if !ValidRating(r.Rating) {
			continue
		}
		stats.Count++
		sum += r.Rating
		stats.Histogram[r.Rating-1]++
	}
	if stats.Count > 0 {
		stats.Average = float64(sum) / float64(stats.Count)
	}
	return stats
}
