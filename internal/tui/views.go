package tui

import (
	"fmt"
	"strings"

	"github.com/Umangjain-9/book-review-platform/internal/domain"
)

// View implements tea.Model.
func (a *App) View() string {
	var body string
	switch a.state {
	case stateLogin:
		body = a.viewAuth("Sign in", "No account yet? ctrl+t to sign up")
	case stateSignup:
		body = a.viewAuth("Create account", "Already registered? ctrl+t to sign in")
	case stateHome:
		body = a.viewHome()
	case stateBookDetails:
		body = a.viewBookDetails()
	case stateAddBook:
		body = a.viewAddBook()
	case stateProfile:
		body = a.viewProfile()
	}

	if a.notice != "" {
		style := a.theme.Notice
		if a.noticeIsErr {
			style = a.theme.Error
		}
		body += "\n" + style.Render(a.notice)
	}
	return body + "\n"
}

func (a *App) viewAuth(title, hint string) string {
	var b strings.Builder
	b.WriteString(a.theme.Title.Render("Book Reviews"))
	b.WriteString("\n")
	b.WriteString(a.theme.Subtitle.Render(title))
	b.WriteString("\n\n")

	for i := range a.inputs {
		b.WriteString(a.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.theme.Faint.Render(hint))
	b.WriteString("\n")
	b.WriteString(a.theme.Faint.Render("enter: next/submit • esc: quit"))
	return a.theme.Box.Render(b.String())
}

func (a *App) viewHome() string {
	var b strings.Builder
	b.WriteString(a.theme.Title.Render("Book Reviews"))
	b.WriteString("\n")

	genreLabel := "all genres"
	if g := a.genre(); g != "" {
		genreLabel = g
	}
	b.WriteString(a.theme.Subtitle.Render(fmt.Sprintf(
		"genre: %s • sort: %s • page %d/%d",
		genreLabel, a.sortKey, a.page+1, TotalPages(a.filteredCount()),
	)))
	b.WriteString("\n")

	searchLine := a.search.View()
	if !a.searching && a.search.Value() == "" {
		searchLine = a.theme.Faint.Render("press / to search")
	}
	b.WriteString(searchLine)
	b.WriteString("\n\n")

	if a.loading {
		b.WriteString(a.theme.Faint.Render("loading catalog..."))
		return b.String()
	}

	visible := a.visibleBooks()
	if len(visible) == 0 {
		b.WriteString(a.theme.Faint.Render("No books match. Press a to add one."))
	}
	ratings := AverageRatings(a.reviewsByBook)
	for i, book := range visible {
		line := fmt.Sprintf("%s — %s (%d) [%s]", book.Title, book.Author, book.PublishedYear, book.Genre)
		if avg, ok := ratings[book.ID]; ok {
			line += " " + a.theme.Star.Render(fmt.Sprintf("★ %.1f", avg))
		}
		if i == a.cursor {
			b.WriteString(a.theme.Selected.Render("> " + line))
		} else {
			b.WriteString(a.theme.Label.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.theme.Faint.Render(
		"enter: details • a: add • u: profile • /: search • g: genre • s: sort\n" +
			"←/→: page • t: theme • r: refresh • q: quit"))
	return b.String()
}

func (a *App) viewBookDetails() string {
	if a.selectedBook == nil {
		return a.theme.Faint.Render("nothing selected")
	}
	book := *a.selectedBook
	reviews := a.reviewsByBook[book.ID]
	stats := domain.ComputeRatingStats(reviews)

	var b strings.Builder
	b.WriteString(a.theme.Title.Render(book.Title))
	b.WriteString("\n")
	b.WriteString(a.theme.Subtitle.Render(fmt.Sprintf("%s • %d • %s", book.Author, book.PublishedYear, book.Genre)))
	b.WriteString("\n")
	b.WriteString(a.theme.Faint.Render("added by " + book.AddedByName))
	b.WriteString("\n\n")

	if book.Description != "" {
		b.WriteString(a.theme.Label.Render(book.Description))
		b.WriteString("\n\n")
	}

	if stats.Count == 0 {
		b.WriteString(a.theme.Faint.Render("No reviews yet. Press w to write the first one."))
		b.WriteString("\n")
	} else {
		b.WriteString(a.theme.Star.Render(renderStars(stats.Average)))
		b.WriteString(a.theme.Label.Render(fmt.Sprintf(" %.1f from %d review(s)", stats.Average, stats.Count)))
		b.WriteString("\n")
		b.WriteString(a.renderHistogram(stats))
		b.WriteString("\n")
		for _, r := range reviews {
			b.WriteString(a.theme.Label.Render(fmt.Sprintf("%s %s", strings.Repeat("★", r.Rating), r.UserName)))
			b.WriteString("\n")
			b.WriteString(a.theme.Faint.Render("  " + r.ReviewText))
			b.WriteString("\n")
		}
	}

	if a.reviewing {
		b.WriteString("\n")
		b.WriteString(a.theme.Subtitle.Render("New review"))
		b.WriteString("\n")
		for i := range a.inputs {
			b.WriteString(a.inputs[i].View())
			b.WriteString("\n")
		}
		b.WriteString(a.theme.Faint.Render("enter: submit • esc: cancel"))
		return b.String()
	}

	b.WriteString("\n")
	hints := "w: write review • esc: back"
	if a.ownsSelected() {
		hints = "w: write review • d: delete book • esc: back"
	}
	b.WriteString(a.theme.Faint.Render(hints))
	return b.String()
}

func (a *App) viewAddBook() string {
	var b strings.Builder
	b.WriteString(a.theme.Title.Render("Add a book"))
	b.WriteString("\n")
	b.WriteString(a.theme.Subtitle.Render("genres: " + strings.Join(domain.Genres, ", ")))
	b.WriteString("\n\n")

	for i := range a.inputs {
		b.WriteString(a.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.theme.Faint.Render("enter: next/submit • esc: back"))
	return a.theme.Box.Render(b.String())
}

func (a *App) viewProfile() string {
	if a.persisted.Session == nil {
		return a.theme.Faint.Render("not signed in")
	}
	session := a.persisted.Session

	var b strings.Builder
	b.WriteString(a.theme.Title.Render(session.Name))
	b.WriteString("\n")
	b.WriteString(a.theme.Subtitle.Render(session.Email))
	b.WriteString("\n\n")

	var owned []domain.Book
	for _, book := range a.books {
		if book.AddedBy == session.UserID {
			owned = append(owned, book)
		}
	}
	if len(owned) == 0 {
		b.WriteString(a.theme.Faint.Render("You haven't added any books yet."))
		b.WriteString("\n")
	} else {
		b.WriteString(a.theme.Label.Render(fmt.Sprintf("Books you added (%d):", len(owned))))
		b.WriteString("\n")
		for _, book := range owned {
			b.WriteString(a.theme.Label.Render(fmt.Sprintf("  %s — %s (%d)", book.Title, book.Author, book.PublishedYear)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(a.theme.Faint.Render("x: log out • esc: back"))
	return a.theme.Box.Render(b.String())
}

// renderStars draws a five-star gauge for an average rating, rounding
// to the nearest whole star.
func renderStars(average float64) string {
	full := int(average + 0.5)
	if full > 5 {
		full = 5
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}

// renderHistogram draws the five rating buckets, highest first, each
// bar scaled to the largest bucket.
func (a *App) renderHistogram(stats domain.RatingStats) string {
	const barWidth = 20

	most := 0
	for _, n := range stats.Histogram {
		if n > most {
			most = n
		}
	}

	var b strings.Builder
	for rating := domain.MaxRating; rating >= domain.MinRating; rating-- {
		count := stats.Histogram[rating-1]
		width := 0
		if most > 0 {
			width = count * barWidth / most
		}
		b.WriteString(a.theme.Label.Render(fmt.Sprintf("%d★ ", rating)))
		b.WriteString(a.theme.Bar.Render(strings.Repeat("█", width)))
		b.WriteString(a.theme.Faint.Render(fmt.Sprintf(" %d", count)))
		b.WriteString("\n")
	}
	return b.String()
}
