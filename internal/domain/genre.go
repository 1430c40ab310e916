package domain

// Genres is the fixed set of catalog genres, in display order.
var Genres = []string{
	"Fiction",
	"Non-Fiction",
	"Science Fiction",
	"Mystery",
	"Romance",
	"Thriller",
	"Biography",
	"History",
	"Self-Help",
	"Fantasy",
}

// ValidGenre reports whether the given genre is one of the known set.
func ValidGenre(genre string) bool {
	for _, g := range Genres {
		if g == genre {
			return true
		}
	}
	return false
}
