package domain

// Book represents a catalog entry. AddedByName is denormalized from the
// owning user at creation time; accounts are immutable after signup, so
// it can never go stale.
type Book struct {
	Record
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	PublishedYear int    `json:"published_year"`
	Description   string `json:"description"`
	CoverImage    string `json:"cover_image,omitempty"`
	AddedBy       string `json:"added_by"`
	AddedByName   string `json:"added_by_name"`
}

// OwnedBy reports whether the given user added this book.
func (b *Book) OwnedBy(userID string) bool {
	return b.AddedBy == userID
}
