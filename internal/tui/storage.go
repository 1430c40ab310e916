package tui

import (
	"encoding/json/v2"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Umangjain-9/book-review-platform/internal/client"
)

// AppState is what survives between runs: the session (so logins
// outlive the process, like a browser's local storage) and the theme.
type AppState struct {
	Session  *client.Session `json:"session,omitempty"`
	DarkMode bool            `json:"dark_mode"`
}

// StatePath returns the path of the persisted state file, creating its
// directory if needed.
func StatePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}

	dir := filepath.Join(configDir, "bookreview")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	return filepath.Join(dir, "state.json"), nil
}

// LoadState reads the persisted state. A missing or unreadable file
// yields a default state with dark mode on, never an error: state is a
// convenience, not a requirement.
func LoadState(path string) AppState {
	state := AppState{DarkMode: true}

	data, err := os.ReadFile(path) //#nosec G304 -- path comes from StatePath
	if err != nil {
		return state
	}

	if err := json.Unmarshal(data, &state); err != nil {
		return AppState{DarkMode: true}
	}
	return state
}

// SaveState writes the state file with user-only permissions; it holds
// a session token.
func SaveState(path string, state AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}
