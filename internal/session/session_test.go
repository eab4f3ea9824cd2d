// ABOUTME: Tests for the session gate, token sources and the file store
// ABOUTME: Covers boot transitions, redirect rules and credential persistence

package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct{}

func (failingSource) Token(string) (string, error) { return "", errors.New("disk on fire") }

func TestGate_StartsChecking(t *testing.T) {
	g := NewGate()
	assert.Equal(t, Checking, g.State())

	_, redirect := g.Redirect("/admin/default")
	assert.False(t, redirect, "no decision before boot")
}

func TestGate_BootWithToken(t *testing.T) {
	g, err := Boot(StaticSource("abc"))
	require.NoError(t, err)

	assert.Equal(t, Authenticated, g.State())
	assert.Equal(t, "abc", g.Session().Token())
	assert.True(t, g.Session().Present())
}

func TestGate_BootWithoutToken(t *testing.T) {
	g, err := Boot(StaticSource(""))
	require.NoError(t, err)

	assert.Equal(t, Unauthenticated, g.State())
	assert.False(t, g.Session().Present())
}

func TestGate_BootIsTerminal(t *testing.T) {
	g, err := Boot(StaticSource(""))
	require.NoError(t, err)

	err = g.Boot(StaticSource("late"))
	assert.ErrorIs(t, err, ErrAlreadyBooted)
	assert.Equal(t, Unauthenticated, g.State())
}

func TestGate_SourceFailure(t *testing.T) {
	g, err := Boot(failingSource{})
	require.Error(t, err)
	assert.Equal(t, Unauthenticated, g.State())
}

func TestGate_Redirect(t *testing.T) {
	signedIn, _ := Boot(StaticSource("tok"))
	signedOut, _ := Boot(StaticSource(""))

	tests := []struct {
		name     string
		gate     *Gate
		location string
		want     string
		redirect bool
	}{
		{"root signed in", signedIn, "/", HomeAddress, true},
		{"root signed out", signedOut, "/", SignInAddress, true},
		{"admin page signed out", signedOut, "/admin/roles", SignInAddress, true},
		{"admin page signed in", signedIn, "/admin/roles", "", false},
		{"admin root signed in", signedIn, "/admin/", HomeAddress, true},
		{"sign-in signed in", signedIn, "/auth/sign-in", HomeAddress, true},
		{"sign-in signed out", signedOut, "/auth/sign-in", "", false},
		{"other area", signedOut, "/healthz", "", false},
		{"lookalike prefix", signedOut, "/administrator", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, redirect := tt.gate.Redirect(tt.location)
			assert.Equal(t, tt.redirect, redirect)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCookieSource(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/admin/default", nil)
	_, err := CookieSource{Request: r}.Token(TokenKey)
	assert.ErrorIs(t, err, ErrNoToken)

	r.AddCookie(&http.Cookie{Name: TokenKey, Value: "cookie-token"})
	tok, err := CookieSource{Request: r}.Token(TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "cookie-token", tok)

	g, err := Boot(CookieSource{Request: r})
	require.NoError(t, err)
	assert.Equal(t, Authenticated, g.State())
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	s := NewFileStore(path)

	_, err := s.Get(TokenKey)
	assert.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, s.Set(TokenKey, "stored"))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// A fresh store reads what the first one wrote.
	g, err := Boot(NewFileStore(path))
	require.NoError(t, err)
	assert.Equal(t, Authenticated, g.State())
	assert.Equal(t, "stored", g.Session().Token())

	require.NoError(t, s.Delete(TokenKey))
	require.NoError(t, s.Delete(TokenKey))
	_, err = s.Get(TokenKey)
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := Boot(NewFileStore(path))
	assert.Error(t, err)
}

func TestDefaultStorePath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "konnect", "credentials.json"), DefaultStorePath())
}
