package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cfg := &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Data:   DataConfig{BasePath: "/tmp/bookreview"},
		Auth:   AuthConfig{TokenDuration: 720 * time.Hour},
	}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_BadEnvironment(t *testing.T) {
	cfg := &Config{
		App:    AppConfig{Environment: "test"},
		Logger: LoggerConfig{Level: "info"},
		Data:   DataConfig{BasePath: "/tmp/bookreview"},
		Auth:   AuthConfig{TokenDuration: time.Hour},
	}
	assert.ErrorContains(t, cfg.Validate(), "invalid environment")
}

func TestValidate_BadLogLevel(t *testing.T) {
	cfg := &Config{
		App:    AppConfig{Environment: "production"},
		Logger: LoggerConfig{Level: "verbose"},
		Data:   DataConfig{BasePath: "/tmp/bookreview"},
		Auth:   AuthConfig{TokenDuration: time.Hour},
	}
	assert.ErrorContains(t, cfg.Validate(), "invalid log level")
}

func TestValidate_ZeroTokenDuration(t *testing.T) {
	cfg := &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Data:   DataConfig{BasePath: "/tmp/bookreview"},
	}
	assert.ErrorContains(t, cfg.Validate(), "token duration")
}

func TestExpandPath_Tilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandPath("~/data")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data"), got)
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, splitOrigins("*"))
	assert.Equal(t,
		[]string{"http://localhost:5173", "https://books.example.com"},
		splitOrigins("http://localhost:5173, https://books.example.com"),
	)
	assert.Empty(t, splitOrigins(" , "))
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "# comment\nBOOKREVIEW_TEST_KEY=hello\nQUOTED=\"value\"\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0o600))

	t.Cleanup(func() {
		_ = os.Unsetenv("BOOKREVIEW_TEST_KEY")
		_ = os.Unsetenv("QUOTED")
	})

	require.NoError(t, loadEnvFile(envPath))
	assert.Equal(t, "hello", os.Getenv("BOOKREVIEW_TEST_KEY"))
	assert.Equal(t, "value", os.Getenv("QUOTED"))
}
