// Package tui implements the terminal client for the review platform.
// It uses bubbletea, which follows The Elm Architecture: the App model
// holds all state, Update reacts to messages, View renders to a string.
package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Umangjain-9/book-review-platform/internal/client"
	"github.com/Umangjain-9/book-review-platform/internal/domain"
)

// viewState represents which "screen" we're on.
type viewState int

const (
	stateLogin viewState = iota
	stateSignup
	stateHome
	stateBookDetails
	stateAddBook
	stateProfile
)

// noticeDuration is how long a transient notice stays on screen.
const noticeDuration = 3 * time.Second

// App is the main application model.
type App struct {
	api       *client.Client
	statePath string
	persisted AppState
	theme     theme

	state  viewState
	width  int
	height int

	// Form inputs (login/signup/addBook/review share this slice).
	inputs     []textinput.Model
	focusIndex int

	// Catalog data.
	books         []domain.Book
	reviewsByBook map[string][]domain.Review

	// Home view controls.
	search    textinput.Model
	searching bool
	genreIdx  int // 0 = all genres, 1..n = domain.Genres[n-1]
	sortKey   SortKey
	page      int
	cursor    int

	// Details view.
	selectedBook *domain.Book
	reviewing    bool

	// Transient notice (errors and confirmations), cleared after 3s.
	notice      string
	noticeIsErr bool
	noticeSeq   int

	loading bool
}

// NewApp creates the application model, restoring any persisted session.
func NewApp(api *client.Client, statePath string) *App {
	persisted := LoadState(statePath)

	a := &App{
		api:           api,
		statePath:     statePath,
		persisted:     persisted,
		reviewsByBook: make(map[string][]domain.Review),
		sortKey:       SortByTitle,
	}
	a.applyTheme()

	search := textinput.New()
	search.Placeholder = "search title or author"
	search.CharLimit = 100
	a.search = search

	if persisted.Session != nil {
		api.SetToken(persisted.Session.Token)
		a.state = stateHome
		a.loading = true
	} else {
		a.state = stateLogin
		a.setupLoginForm()
	}

	return a
}

func (a *App) applyTheme() {
	if a.persisted.DarkMode {
		a.theme = darkTheme()
	} else {
		a.theme = lightTheme()
	}
}

// genre returns the active genre filter, empty for "all".
func (a *App) genre() string {
	if a.genreIdx == 0 {
		return ""
	}
	return domain.Genres[a.genreIdx-1]
}

// visibleBooks applies search, genre, sort, and pagination.
func (a *App) visibleBooks() []domain.Book {
	filtered := FilterBooks(a.books, a.search.Value(), a.genre())
	sorted := SortBooks(filtered, a.sortKey, AverageRatings(a.reviewsByBook))
	return Paginate(sorted, a.page)
}

// filteredCount is the catalog size after search and genre filters.
func (a *App) filteredCount() int {
	return len(FilterBooks(a.books, a.search.Value(), a.genre()))
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	if a.state == stateHome {
		return tea.Batch(textinput.Blink, a.loadCatalog())
	}
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case authDoneMsg:
		a.loading = false
		a.persisted.Session = msg.session
		_ = SaveState(a.statePath, a.persisted)
		a.state = stateHome
		a.loading = true
		return a, tea.Batch(a.notify("Welcome, "+msg.session.Name), a.loadCatalog())

	case catalogLoadedMsg:
		a.loading = false
		a.books = msg.books
		a.reviewsByBook = msg.reviews
		a.clampCursor()
		return a, nil

	case bookAddedMsg:
		a.state = stateHome
		a.loading = true
		return a, tea.Batch(a.notify("Book added"), a.loadCatalog())

	case bookDeletedMsg:
		a.state = stateHome
		a.selectedBook = nil
		a.loading = true
		return a, tea.Batch(a.notify("Book removed"), a.loadCatalog())

	case reviewAddedMsg:
		a.reviewing = false
		a.loading = true
		return a, tea.Batch(a.notify("Review added"), a.loadCatalog())

	case errMsg:
		a.loading = false
		return a, a.notifyError(msg.err.Error())

	case clearNoticeMsg:
		// A newer notice may have superseded this timer.
		if int(msg) == a.noticeSeq {
			a.notice = ""
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, a.updateInputs(msg)
}

// handleKey routes key presses by view.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.state {
	case stateLogin, stateSignup:
		return a.handleAuthKey(msg)
	case stateHome:
		return a.handleHomeKey(msg)
	case stateBookDetails:
		return a.handleDetailsKey(msg)
	case stateAddBook:
		return a.handleAddBookKey(msg)
	case stateProfile:
		return a.handleProfileKey(msg)
	}
	return a, nil
}

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the search box is focused, almost every key belongs to it.
	if a.searching {
		switch msg.String() {
		case "enter", "esc":
			a.searching = false
			a.search.Blur()
			a.page = 0
			a.clampCursor()
			return a, nil
		default:
			var cmd tea.Cmd
			a.search, cmd = a.search.Update(msg)
			a.page = 0
			a.clampCursor()
			return a, cmd
		}
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "/":
		a.searching = true
		return a, a.search.Focus()
	case "g":
		a.genreIdx = (a.genreIdx + 1) % (len(domain.Genres) + 1)
		a.page = 0
		a.clampCursor()
	case "s":
		switch a.sortKey {
		case SortByTitle:
			a.sortKey = SortByYear
		case SortByYear:
			a.sortKey = SortByRating
		default:
			a.sortKey = SortByTitle
		}
	case "right", "n":
		if a.page < TotalPages(a.filteredCount())-1 {
			a.page++
			a.cursor = 0
		}
	case "left", "p":
		if a.page > 0 {
			a.page--
			a.cursor = 0
		}
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.visibleBooks())-1 {
			a.cursor++
		}
	case "enter":
		visible := a.visibleBooks()
		if a.cursor < len(visible) {
			book := visible[a.cursor]
			a.selectedBook = &book
			a.state = stateBookDetails
			a.reviewing = false
		}
	case "a":
		a.state = stateAddBook
		a.setupAddBookForm()
	case "u":
		a.state = stateProfile
		a.loading = true
		return a, a.loadCatalog()
	case "t":
		a.persisted.DarkMode = !a.persisted.DarkMode
		a.applyTheme()
		_ = SaveState(a.statePath, a.persisted)
	case "r":
		a.loading = true
		return a, a.loadCatalog()
	}
	return a, nil
}

func (a *App) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.reviewing {
		switch msg.String() {
		case "esc":
			a.reviewing = false
			return a, nil
		case "enter":
			if a.focusIndex == len(a.inputs)-1 {
				return a.submitReview()
			}
			return a, a.cycleFocus(1)
		case "tab", "down":
			return a, a.cycleFocus(1)
		case "shift+tab", "up":
			return a, a.cycleFocus(-1)
		default:
			return a, a.updateInputs(msg)
		}
	}

	switch msg.String() {
	case "esc", "q":
		a.state = stateHome
		a.selectedBook = nil
		a.loading = true
		return a, a.loadCatalog()
	case "w":
		a.reviewing = true
		a.setupReviewForm()
		return a, textinput.Blink
	case "d":
		if a.selectedBook != nil && a.ownsSelected() {
			return a, a.deleteBook(a.selectedBook.ID)
		}
		return a, a.notifyError("Only the user who added a book can delete it")
	}
	return a, nil
}

func (a *App) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		a.state = stateHome
	case "x":
		// Log out: drop the session but keep the theme.
		a.persisted.Session = nil
		_ = SaveState(a.statePath, a.persisted)
		a.api.SetToken("")
		a.state = stateLogin
		a.setupLoginForm()
		return a, textinput.Blink
	}
	return a, nil
}

func (a *App) ownsSelected() bool {
	return a.persisted.Session != nil &&
		a.selectedBook != nil &&
		a.selectedBook.OwnedBy(a.persisted.Session.UserID)
}

func (a *App) clampCursor() {
	visible := len(a.visibleBooks())
	if visible == 0 {
		a.cursor = 0
	} else if a.cursor >= visible {
		a.cursor = visible - 1
	}
	if a.page >= TotalPages(a.filteredCount()) {
		a.page = TotalPages(a.filteredCount()) - 1
	}
	if a.page < 0 {
		a.page = 0
	}
}

// notify shows a transient confirmation for three seconds.
func (a *App) notify(text string) tea.Cmd {
	a.notice = text
	a.noticeIsErr = false
	a.noticeSeq++
	seq := a.noticeSeq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg(seq)
	})
}

// notifyError shows a transient error for three seconds.
func (a *App) notifyError(text string) tea.Cmd {
	a.notice = text
	a.noticeIsErr = true
	a.noticeSeq++
	seq := a.noticeSeq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg(seq)
	})
}

// parseRating converts the review form's rating field.
func parseRating(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !domain.ValidRating(n) {
		return 0, false
	}
	return n, true
}
