package auth

import (
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, keyLength)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"), "expected cost-10 bcrypt hash, got %s", hash)

	assert.True(t, VerifyPassword("correct horse battery staple", hash))
	assert.False(t, VerifyPassword("wrong password", hash))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("same password")
	require.NoError(t, err)
	h2, err := HashPassword("same password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestTokenService_GenerateAndVerify(t *testing.T) {
	svc, err := NewTokenService(testKey(t), time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateToken("user-abc123", "reader@example.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, "v4.local."))

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-abc123", claims.UserID)
	assert.Equal(t, "reader@example.com", claims.Email)
	assert.Equal(t, "user-abc123", claims.Subject)
	assert.NotEmpty(t, claims.TokenID)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewTokenService(testKey(t), -time.Minute)
	require.NoError(t, err)

	token, err := svc.GenerateToken("user-abc123", "reader@example.com")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorContains(t, err, "invalid token")
}

func TestTokenService_RejectsForeignKey(t *testing.T) {
	svc1, err := NewTokenService(testKey(t), time.Hour)
	require.NoError(t, err)
	svc2, err := NewTokenService(testKey(t), time.Hour)
	require.NoError(t, err)

	token, err := svc1.GenerateToken("user-abc123", "reader@example.com")
	require.NoError(t, err)

	_, err = svc2.VerifyToken(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc, err := NewTokenService(testKey(t), time.Hour)
	require.NoError(t, err)

	_, err = svc.VerifyToken("not-a-token")
	assert.Error(t, err)
}

func TestNewTokenService_RejectsShortKey(t *testing.T) {
	_, err := NewTokenService([]byte("short"), time.Hour)
	assert.ErrorContains(t, err, "32 bytes")
}

func TestLoadOrGenerateKey(t *testing.T) {
	dir := t.TempDir()

	key1, err := LoadOrGenerateKey(dir)
	require.NoError(t, err)
	assert.Len(t, key1, keyLength)

	// Second load returns the same key.
	key2, err := LoadOrGenerateKey(dir)
	require.NoError(t, err)
	assert.Equal(t, key1, key2)

	// Key file has restricted permissions.
	info, err := os.Stat(filepath.Join(dir, "auth.key"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadOrGenerateKey_RejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "auth.key"), []byte("too short"), 0o600))

	_, err := LoadOrGenerateKey(dir)
	assert.ErrorContains(t, err, "invalid auth key length")
}
