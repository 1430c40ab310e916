package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRating(t *testing.T) {
	assert.False(t, ValidRating(0))
	assert.True(t, ValidRating(1))
	assert.True(t, ValidRating(5))
	assert.False(t, ValidRating(6))
}

func TestComputeRatingStats(t *testing.T) {
	reviews := []Review{
		{Rating: 5},
		{Rating: 5},
		{Rating: 4},
		{Rating: 1},
	}

	stats := ComputeRatingStats(reviews)
	assert.Equal(t, 4, stats.Count)
	assert.InDelta(t, 3.75, stats.Average, 0.001)
	assert.Equal(t, [MaxRating]int{1, 0, 0, 1, 2}, stats.Histogram)
}

func TestComputeRatingStats_Empty(t *testing.T) {
	stats := ComputeRatingStats(nil)
	assert.Equal(t, 0, stats.Count)
	assert.Zero(t, stats.Average)
}

func TestComputeRatingStats_SkipsOutOfRange(t *testing.T) {
	stats := ComputeRatingStats([]Review{{Rating: 0}, {Rating: 9}, {Rating: 3}})
	assert.Equal(t, 1, stats.Count)
	assert.InDelta(t, 3.0, stats.Average, 0.001)
}

func TestValidGenre(t *testing.T) {
	assert.True(t, ValidGenre("Science Fiction"))
	assert.True(t, ValidGenre("Self-Help"))
	assert.False(t, ValidGenre("Cookbooks"))
	assert.False(t, ValidGenre(""))
}

func TestBookOwnedBy(t *testing.T) {
	b := Book{AddedBy: "user-1"}
	assert.True(t, b.OwnedBy("user-1"))
	assert.False(t, b.OwnedBy("user-2"))
}

func TestUserPublic_OmitsPasswordHash(t *testing.T) {
	u := User{
		Record:       Record{ID: "user-1"},
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "secret",
	}

	pub := u.Public()
	assert.Equal(t, "user-1", pub.ID)
	assert.Equal(t, "Ada", pub.Name)
	assert.Equal(t, "ada@example.com", pub.Email)
}
