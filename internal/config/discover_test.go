package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate clears every discovery input and moves into an empty directory.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "xdg"))
	t.Chdir(t.TempDir())
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	assert.Contains(t, DefaultPath(), filepath.Join(".config", "moviedb", "config.toml"))

	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/moviedb/config.toml", DefaultPath())
}

func TestDefaultCatalogPath_XDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	assert.Equal(t, "/custom/data/moviedb/catalog.db", DefaultCatalogPath())
}

func TestSearchPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, []string{"./moviedb.toml", "/custom/config/moviedb/config.toml"}, SearchPaths())
}

func TestDiscover_Pinned(t *testing.T) {
	isolate(t)
	pinned := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(pinned, []byte("[tmdb]"), 0600))
	// A pinned file wins over one in the current directory.
	require.NoError(t, os.WriteFile("moviedb.toml", []byte("[tmdb]"), 0600))
	t.Setenv(EnvConfigPath, pinned)

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, pinned, path)
}

func TestDiscover_PinnedMissing(t *testing.T) {
	isolate(t)
	t.Setenv(EnvConfigPath, "/nonexistent/config.toml")

	_, err := Discover()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvConfigPath)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestDiscover_CurrentDir(t *testing.T) {
	isolate(t)
	require.NoError(t, WriteDefault(DefaultPath()))
	require.NoError(t, os.WriteFile("moviedb.toml", []byte("[tmdb]"), 0600))

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, "./moviedb.toml", path)
}

func TestDiscover_XDG(t *testing.T) {
	isolate(t)
	require.NoError(t, WriteDefault(DefaultPath()))

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, DefaultPath(), path)
}

func TestDiscover_SkipsDirectories(t *testing.T) {
	isolate(t)
	require.NoError(t, os.Mkdir("moviedb.toml", 0755))

	_, err := Discover()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiscover_NotFound(t *testing.T) {
	isolate(t)

	_, err := Discover()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "moviedb.toml")
}
