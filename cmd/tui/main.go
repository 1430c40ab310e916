// Command tui is the terminal client for the book review platform.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Umangjain-9/book-review-platform/internal/client"
	"github.com/Umangjain-9/book-review-platform/internal/tui"
)

func main() {
	serverURL := flag.String("server", defaultServerURL(), "base URL of the API server")
	flag.Parse()

	statePath, err := tui.StatePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve state path: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(client.New(*serverURL), statePath)

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func defaultServerURL() string {
	if url := os.Getenv("BOOKREVIEW_SERVER"); url != "" {
		return url
	}
	return "http://localhost:8080"
}
