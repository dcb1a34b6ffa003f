package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vmunix/moviedb/internal/catalog"
	"github.com/vmunix/moviedb/internal/config"
	"github.com/vmunix/moviedb/pkg/tmdb"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
	language   string
	logLevel   string
)

// Resolved by the root PersistentPreRunE before any command runs.
var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "moviedb",
	Short: "Query The Movie Database from the command line",
	Long: `moviedb - command line client for The Movie Database (TMDB)

Look up movies, series, seasons, episodes and people, search by title,
resolve a title to its TMDB id and keep a local catalog of saved titles.

The API key is read from tmdb.api_key in the config file or from
the TMDB_API_KEY environment variable.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&language, "language", "", "Response language, e.g. en-US (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("moviedb {{.Version}}\n")
}

func setup(cmd *cobra.Command, _ []string) error {
	loaded, _, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = loaded
	return setupLogging(cmd, cfg.Log.Level)
}

// loadConfig reads --config, or the discovered config file, and applies the
// global flag overrides. It also returns the file used, "" when no config
// file exists and defaults apply.
func loadConfig() (*config.Config, string, error) {
	path := configPath
	if path == "" {
		found, err := config.Discover()
		switch {
		case errors.Is(err, config.ErrNotFound):
			c, err := applyOverrides(config.Default())
			return c, "", err
		case err != nil:
			return nil, "", err
		}
		path = found
	}

	c, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	c, err = applyOverrides(c)
	return c, path, err
}

func applyOverrides(c *config.Config) (*config.Config, error) {
	if language != "" {
		c.TMDB.Language = language
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	if errs := c.Validate(); len(errs) > 0 {
		return nil, &config.ConfigError{Errors: errs}
	}
	return c, nil
}

func setupLogging(cmd *cobra.Command, name string) error {
	level := slog.LevelInfo
	if name != "" {
		if err := level.UnmarshalText([]byte(name)); err != nil {
			return fmt.Errorf("log level %q: %w", name, err)
		}
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

func newClient() (*tmdb.Client, error) {
	if cfg.TMDB.APIKey == "" {
		return nil, errors.New("no TMDB api key: set tmdb.api_key in the config file or TMDB_API_KEY")
	}
	return tmdb.New(cfg.TMDB.APIKey,
		tmdb.WithBaseURL(cfg.TMDB.BaseURL),
		tmdb.WithLanguage(cfg.TMDB.Language),
		tmdb.WithHTTPClient(&http.Client{Timeout: cfg.TMDB.Timeout}),
		tmdb.WithLogger(logger),
	), nil
}

func openCatalog(ctx context.Context) (*catalog.Store, error) {
	store, err := catalog.Open(ctx, cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return store, nil
}
