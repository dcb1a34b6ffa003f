package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullWorkflow(t *testing.T) {
	tmp := t.TempDir()

	// 1. Write default config
	cfgPath := filepath.Join(tmp, "moviedb", "config.toml")
	require.NoError(t, WriteDefault(cfgPath))

	// 2. Key comes from the environment
	t.Setenv("TMDB_API_KEY", "test-tmdb-key")
	t.Setenv("XDG_DATA_HOME", tmp)

	// 3. Load with validation
	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "test-tmdb-key", cfg.TMDB.APIKey)
	assert.Equal(t, "en-US", cfg.TMDB.Language)
	assert.Equal(t, DefaultTimeout, cfg.TMDB.Timeout)
	assert.Equal(t, filepath.Join(tmp, "moviedb", "catalog.db"), cfg.Catalog.Path)

	// 4. Written config loads back to the same values
	outPath := filepath.Join(tmp, "copy.toml")
	require.NoError(t, cfg.Write(outPath))
	again, err := Load(outPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}
