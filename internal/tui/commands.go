package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Umangjain-9/book-review-platform/internal/client"
	"github.com/Umangjain-9/book-review-platform/internal/domain"
	"github.com/Umangjain-9/book-review-platform/internal/service"
)

// requestTimeout caps how long any single API call may take before the
// UI gives up and shows an error.
const requestTimeout = 15 * time.Second

// Messages delivered back to Update after an API call finishes.
type (
	authDoneMsg struct {
		session *client.Session
	}
	catalogLoadedMsg struct {
		books   []domain.Book
		reviews map[string][]domain.Review
	}
	bookAddedMsg   struct{}
	bookDeletedMsg struct{}
	reviewAddedMsg struct{}
	errMsg         struct{ err error }
	clearNoticeMsg int
)

func (a *App) login(email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		session, err := a.api.Login(ctx, email, password)
		if err != nil {
			return errMsg{err}
		}
		return authDoneMsg{session}
	}
}

func (a *App) signup(name, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		session, err := a.api.Signup(ctx, name, email, password)
		if err != nil {
			return errMsg{err}
		}
		return authDoneMsg{session}
	}
}

// loadCatalog fetches the full catalog plus every book's reviews, so
// the home view can compute averages and sort by rating locally.
func (a *App) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		books, err := a.api.ListBooks(ctx)
		if err != nil {
			return errMsg{err}
		}

		reviews := make(map[string][]domain.Review, len(books))
		for _, b := range books {
			rs, err := a.api.ListReviews(ctx, b.ID)
			if err != nil {
				return errMsg{err}
			}
			reviews[b.ID] = rs
		}
		return catalogLoadedMsg{books: books, reviews: reviews}
	}
}

func (a *App) addBook(req service.AddBookRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if _, err := a.api.AddBook(ctx, req); err != nil {
			return errMsg{err}
		}
		return bookAddedMsg{}
	}
}

func (a *App) deleteBook(bookID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := a.api.DeleteBook(ctx, bookID); err != nil {
			return errMsg{err}
		}
		return bookDeletedMsg{}
	}
}

func (a *App) addReview(bookID string, req service.AddReviewRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if _, err := a.api.AddReview(ctx, bookID, req); err != nil {
			return errMsg{err}
		}
		return reviewAddedMsg{}
	}
}
