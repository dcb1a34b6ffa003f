package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "failed to write test config")
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
[tmdb]
api_key = "abc123"
language = "fr-FR"
timeout = "10s"

[catalog]
path = "/tmp/moviedb-test.db"

[log]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.TMDB.APIKey)
	assert.Equal(t, "fr-FR", cfg.TMDB.Language)
	assert.Equal(t, 10*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, DefaultBaseURL, cfg.TMDB.BaseURL)
	assert.Equal(t, "/tmp/moviedb-test.db", cfg.Catalog.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Empty(t, cfg.TMDB.APIKey)
	assert.Equal(t, DefaultBaseURL, cfg.TMDB.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.TMDB.Timeout)
	assert.Equal(t, "/data/moviedb/catalog.db", cfg.Catalog.Path)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoad_APIKeyFromEnvironment(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "from-env")

	cfg, err := Load(writeConfig(t, "[tmdb]\nlanguage = \"en\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.TMDB.APIKey)

	cfg, err = Load(writeConfig(t, "[tmdb]\napi_key = \"from-file\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.TMDB.APIKey)
}

func TestLoad_Substitution(t *testing.T) {
	t.Setenv("MOVIEDB_TEST_KEY", "substituted")

	cfg, err := Load(writeConfig(t, `
[tmdb]
api_key = "${MOVIEDB_TEST_KEY}"
language = "${MOVIEDB_TEST_UNSET_LANG:-es-ES}"
`))
	require.NoError(t, err)
	assert.Equal(t, "substituted", cfg.TMDB.APIKey)
	assert.Equal(t, "es-ES", cfg.TMDB.Language)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	path := writeConfig(t, `
[tmdb]
api_key = "${MOVIEDB_TEST_MISSING_KEY}"
`)

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{"MOVIEDB_TEST_MISSING_KEY"}, cfgErr.Missing)
	assert.Equal(t, path, cfgErr.Path)
}

func TestLoad_ValidationError(t *testing.T) {
	_, err := Load(writeConfig(t, `
[log]
level = "chatty"
`))
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.True(t, containsError(cfgErr.Errors, "log.level"))
}

func TestLoadWithoutValidation_SkipsValidate(t *testing.T) {
	cfg, err := LoadWithoutValidation(writeConfig(t, `
[log]
level = "chatty"
`))
	require.NoError(t, err)
	assert.Equal(t, "chatty", cfg.Log.Level)
}

func TestLoad_ParseError(t *testing.T) {
	_, err := Load(writeConfig(t, "[tmdb\napi_key = "))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
