package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Discover when no config file exists.
var ErrNotFound = errors.New("config not found")

// EnvConfigPath names the environment variable that pins the config file.
const EnvConfigPath = "MOVIEDB_CONFIG"

// DefaultPath returns $XDG_CONFIG_HOME/moviedb/config.toml.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./moviedb.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "moviedb", "config.toml")
}

// SearchPaths lists the files Discover tries when MOVIEDB_CONFIG is unset,
// in order.
func SearchPaths() []string {
	return []string{"./moviedb.toml", DefaultPath()}
}

// Discover returns the config file to load: MOVIEDB_CONFIG when set (it must
// exist), otherwise the first existing entry of SearchPaths.
func Discover() (string, error) {
	if pinned := os.Getenv(EnvConfigPath); pinned != "" {
		if _, err := os.Stat(pinned); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvConfigPath, pinned, err)
		}
		return pinned, nil
	}

	paths := SearchPaths()
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w (tried %s)", ErrNotFound, strings.Join(paths, ", "))
}
