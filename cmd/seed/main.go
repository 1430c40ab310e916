// Command seed populates a database with sample users, books, and
// reviews for local development. Run it against a stopped server's
// data directory, then start the server.
//
// Usage:
//
//	DB_PATH=~/.bookreview/db go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/Umangjain-9/book-review-platform/internal/auth"
	"github.com/Umangjain-9/book-review-platform/internal/domain"
	"github.com/Umangjain-9/book-review-platform/internal/id"
	"github.com/Umangjain-9/book-review-platform/internal/store"
)

// seedPassword is the password every seeded account gets.
const seedPassword = "password123"

type seedUser struct {
	name  string
	email string
}

type seedBook struct {
	title  string
	author string
	genre  string
	year   int
	desc   string
}

var seedUsers = []seedUser{
	{"Ada Lovelace", "ada@example.com"},
	{"Grace Hopper", "grace@example.com"},
	{"Alan Turing", "alan@example.com"},
}

var seedBooks = []seedBook{
	{"A Wizard of Earthsea", "Ursula K. Le Guin", "Fantasy", 1968, "Sparrowhawk learns the true names of things."},
	{"The Dispossessed", "Ursula K. Le Guin", "Science Fiction", 1974, "An ambiguous utopia on twin worlds."},
	{"Gaudy Night", "Dorothy L. Sayers", "Mystery", 1935, "Harriet Vane returns to Oxford."},
	{"The Remains of the Day", "Kazuo Ishiguro", "Fiction", 1989, "A butler reckons with a life of service."},
	{"The Code Breaker", "Walter Isaacson", "Biography", 2021, "Jennifer Doudna and the gene-editing revolution."},
	{"SPQR", "Mary Beard", "History", 2015, "A history of ancient Rome."},
	{"Rebecca", "Daphne du Maurier", "Thriller", 1938, "Last night I dreamt I went to Manderley again."},
	{"Persuasion", "Jane Austen", "Romance", 1817, "A second chance eight years on."},
}

var seedComments = []string{
	"Couldn't put it down.",
	"A slow start, but the second half earns it.",
	"Beautifully written.",
	"Not for me, though I can see the appeal.",
	"I'll be thinking about this one for a while.",
}

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/.bookreview/db")
	}

	fmt.Printf("Seeding database at %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	users := createUsers(ctx, s)
	books := createBooks(ctx, s, users)
	createReviews(ctx, s, users, books)

	fmt.Printf("Done. All accounts use the password %q.\n", seedPassword)
}

func createUsers(ctx context.Context, s *store.Store) []*domain.User {
	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	var users []*domain.User
	for _, su := range seedUsers {
		userID, err := id.Generate("user")
		if err != nil {
			log.Fatalf("Failed to generate ID: %v", err)
		}

		user := &domain.User{
			Record:       domain.Record{ID: userID},
			Name:         su.name,
			Email:        su.email,
			PasswordHash: hash,
		}
		user.InitTimestamps()

		if err := s.CreateUser(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", su.email, err)
		}
		fmt.Printf("  user   %s (%s)\n", su.name, su.email)
		users = append(users, user)
	}
	return users
}

func createBooks(ctx context.Context, s *store.Store, users []*domain.User) []*domain.Book {
	var books []*domain.Book
	for i, sb := range seedBooks {
		owner := users[i%len(users)]

		bookID, err := id.Generate("book")
		if err != nil {
			log.Fatalf("Failed to generate ID: %v", err)
		}

		book := &domain.Book{
			Record:        domain.Record{ID: bookID},
			Title:         sb.title,
			Author:        sb.author,
			Genre:         sb.genre,
			PublishedYear: sb.year,
			Description:   sb.desc,
			AddedBy:       owner.ID,
			AddedByName:   owner.Name,
		}
		book.InitTimestamps()

		if err := s.CreateBook(ctx, book); err != nil {
			log.Fatalf("Failed to create book %s: %v", sb.title, err)
		}
		fmt.Printf("  book   %s\n", sb.title)
		books = append(books, book)
	}
	return books
}

func createReviews(ctx context.Context, s *store.Store, users []*domain.User, books []*domain.Book) {
	count := 0
	for _, book := range books {
		for _, user := range users {
			// Not everyone reviews everything.
			if rand.Intn(3) == 0 {
				continue
			}

			reviewID, err := id.Generate("review")
			if err != nil {
				log.Fatalf("Failed to generate ID: %v", err)
			}

			review := &domain.Review{
				Record:     domain.Record{ID: reviewID},
				BookID:     book.ID,
				UserID:     user.ID,
				UserName:   user.Name,
				Rating:     2 + rand.Intn(4),
				ReviewText: seedComments[rand.Intn(len(seedComments))],
			}
			review.InitTimestamps()

			if err := s.CreateReview(ctx, review); err != nil {
				log.Fatalf("Failed to create review: %v", err)
			}
			count++
		}
	}
	fmt.Printf("  %d reviews\n", count)
}
