package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/moviedb/internal/config"
)

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, err := runCLI(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	_, err = runCLI(t, "config", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = runCLI(t, "config", "init", path, "--force")
	require.NoError(t, err)

	// The written example loads once the key comes from the environment.
	t.Setenv("TMDB_API_KEY", "from-env")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.TMDB.APIKey)
}

func TestConfigInit_DefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := runCLI(t, "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, config.DefaultPath())
}

func TestConfigInit_BrokenConfigDoesNotBlock(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("[tmdb\n"), 0600))

	_, err := runCLI(t, "--config", broken, "config", "init", filepath.Join(dir, "new.toml"))
	require.NoError(t, err)
}

func TestConfigShow(t *testing.T) {
	cfgPath := writeTestConfig(t, "https://api.example.test/3")

	out, err := runCLI(t, "--config", cfgPath, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "# source: "+cfgPath)
	assert.Contains(t, out, `api_key = "****-key"`)
	assert.Contains(t, out, `base_url = "https://api.example.test/3"`)
	assert.NotContains(t, out, testAPIKey)

	out, err = runCLI(t, "--config", cfgPath, "--json", "--language", "fr-FR", "config", "show")
	require.NoError(t, err)
	var shown config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "fr-FR", shown.TMDB.Language)
	assert.Equal(t, "****-key", shown.TMDB.APIKey)
}

func TestConfigShow_Invalid(t *testing.T) {
	cfgPath := writeTestConfig(t, "ftp://example.test")

	_, err := runCLI(t, "--config", cfgPath, "config", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration invalid")
}

func TestConfigShow_Discovered(t *testing.T) {
	cfgPath := writeTestConfig(t, "https://api.example.test/3")
	t.Setenv("MOVIEDB_CONFIG", cfgPath)

	out, err := runCLI(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "https://api.example.test/3")
}

func TestConfigShow_NoConfigUsesDefaults(t *testing.T) {
	t.Setenv("MOVIEDB_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	out, err := runCLI(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "# source: defaults, no config file found")
	assert.Contains(t, out, config.DefaultBaseURL)
	assert.Contains(t, out, filepath.Join("moviedb", "catalog.db"))
}

func TestInvalidLanguageFlag(t *testing.T) {
	cfgPath := writeTestConfig(t, "https://api.example.test/3")

	_, err := runCLI(t, "--config", cfgPath, "--language", "english", "movie", "550")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tmdb.language")
}

func TestConfigInit_APIKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	path := filepath.Join(t.TempDir(), "config.toml")

	_, err := runCLI(t, "--language", "pt-BR", "config", "init", path, "--api-key", "abc123")
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123", cfg.TMDB.APIKey)
	assert.Equal(t, "pt-BR", cfg.TMDB.Language)
	assert.Equal(t, config.DefaultBaseURL, cfg.TMDB.BaseURL)
}
