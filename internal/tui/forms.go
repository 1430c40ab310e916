package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Umangjain-9/book-review-platform/internal/domain"
	"github.com/Umangjain-9/book-review-platform/internal/service"
)

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	return in
}

func newPasswordInput() textinput.Model {
	in := newInput("password", 1024)
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

func (a *App) setupLoginForm() {
	a.inputs = []textinput.Model{
		newInput("email", 254),
		newPasswordInput(),
	}
	a.focusIndex = 0
	a.inputs[0].Focus()
}

func (a *App) setupSignupForm() {
	a.inputs = []textinput.Model{
		newInput("name", 100),
		newInput("email", 254),
		newPasswordInput(),
	}
	a.focusIndex = 0
	a.inputs[0].Focus()
}

func (a *App) setupAddBookForm() {
	a.inputs = []textinput.Model{
		newInput("title", 300),
		newInput("author", 200),
		newInput("genre (e.g. "+domain.Genres[0]+")", 50),
		newInput("published year", 4),
		newInput("description", 5000),
		newInput("cover image URL (optional)", 500),
	}
	a.focusIndex = 0
	a.inputs[0].Focus()
}

func (a *App) setupReviewForm() {
	a.inputs = []textinput.Model{
		newInput("rating (1-5)", 1),
		newInput("your review", 5000),
	}
	a.focusIndex = 0
	a.inputs[0].Focus()
}

// cycleFocus moves form focus by delta, wrapping around.
func (a *App) cycleFocus(delta int) tea.Cmd {
	a.inputs[a.focusIndex].Blur()
	a.focusIndex = (a.focusIndex + delta + len(a.inputs)) % len(a.inputs)
	return a.inputs[a.focusIndex].Focus()
}

// updateInputs forwards a message to the focused input.
func (a *App) updateInputs(msg tea.Msg) tea.Cmd {
	if len(a.inputs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(a.inputs))
	for i := range a.inputs {
		a.inputs[i], cmds[i] = a.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (a *App) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return a, tea.Quit
	case "ctrl+t":
		// Flip between the login and signup forms.
		if a.state == stateLogin {
			a.state = stateSignup
			a.setupSignupForm()
		} else {
			a.state = stateLogin
			a.setupLoginForm()
		}
		return a, textinput.Blink
	case "tab", "down":
		return a, a.cycleFocus(1)
	case "shift+tab", "up":
		return a, a.cycleFocus(-1)
	case "enter":
		if a.focusIndex < len(a.inputs)-1 {
			return a, a.cycleFocus(1)
		}
		return a.submitAuth()
	default:
		return a, a.updateInputs(msg)
	}
}

func (a *App) submitAuth() (tea.Model, tea.Cmd) {
	if a.state == stateLogin {
		email := strings.TrimSpace(a.inputs[0].Value())
		password := a.inputs[1].Value()
		if email == "" || password == "" {
			return a, a.notifyError("Email and password are required")
		}
		a.loading = true
		return a, a.login(email, password)
	}

	name := strings.TrimSpace(a.inputs[0].Value())
	email := strings.TrimSpace(a.inputs[1].Value())
	password := a.inputs[2].Value()
	if name == "" || email == "" || password == "" {
		return a, a.notifyError("Name, email, and password are required")
	}
	if len(password) < 6 {
		return a, a.notifyError("Password must be at least 6 characters")
	}
	a.loading = true
	return a, a.signup(name, email, password)
}

func (a *App) handleAddBookKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.state = stateHome
		return a, nil
	case "tab", "down":
		return a, a.cycleFocus(1)
	case "shift+tab", "up":
		return a, a.cycleFocus(-1)
	case "enter":
		if a.focusIndex < len(a.inputs)-1 {
			return a, a.cycleFocus(1)
		}
		return a.submitAddBook()
	default:
		return a, a.updateInputs(msg)
	}
}

func (a *App) submitAddBook() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(a.inputs[0].Value())
	author := strings.TrimSpace(a.inputs[1].Value())
	genre := strings.TrimSpace(a.inputs[2].Value())
	yearText := strings.TrimSpace(a.inputs[3].Value())
	description := strings.TrimSpace(a.inputs[4].Value())

	if title == "" || author == "" || genre == "" || yearText == "" || description == "" {
		return a, a.notifyError("Title, author, genre, year, and description are required")
	}
	if !domain.ValidGenre(genre) {
		return a, a.notifyError("Unknown genre: " + genre)
	}
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return a, a.notifyError("Published year must be a number")
	}

	a.loading = true
	return a, a.addBook(service.AddBookRequest{
		Title:         title,
		Author:        author,
		Genre:         genre,
		PublishedYear: year,
		Description:   description,
		CoverImage:    strings.TrimSpace(a.inputs[5].Value()),
	})
}

func (a *App) submitReview() (tea.Model, tea.Cmd) {
	if a.selectedBook == nil {
		return a, nil
	}

	rating, ok := parseRating(a.inputs[0].Value())
	if !ok {
		return a, a.notifyError("Rating must be a whole number from 1 to 5")
	}
	text := strings.TrimSpace(a.inputs[1].Value())
	if text == "" {
		return a, a.notifyError("Review text is required")
	}

	a.loading = true
	return a, a.addReview(a.selectedBook.ID, service.AddReviewRequest{
		Rating:     rating,
		ReviewText: text,
	})
}
