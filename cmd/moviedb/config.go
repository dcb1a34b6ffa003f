package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/vmunix/moviedb/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	// Skips config loading; show loads and reports errors itself.
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(cmd, logLevel)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example config file",
	Long: `Write an example config file. Without a path it goes to --config, or to
$XDG_CONFIG_HOME/moviedb/config.toml.

By default the file reads the api key from TMDB_API_KEY. With --api-key the
key and the effective defaults are written out instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  "Shows the configuration after discovery, environment substitution, defaults and flag overrides. The api key is masked.",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
	configInitCmd.Flags().String("api-key", "", "Store this TMDB api key in the file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	apiKey, _ := cmd.Flags().GetString("api-key")

	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		path = config.DefaultPath()
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	write := config.WriteDefault
	if apiKey != "" {
		c := config.Default()
		c.TMDB.APIKey = apiKey
		if language != "" {
			c.TMDB.Language = language
		}
		write = c.Write
	}
	if err := write(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	loaded, source, err := loadConfig()
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(cmd.ErrOrStderr(), configErr)
			return errors.New("configuration invalid")
		}
		return err
	}

	shown := *loaded
	shown.TMDB.APIKey = maskKey(shown.TMDB.APIKey)

	if jsonOutput {
		return printJSON(out, shown)
	}
	if source == "" {
		source = "defaults, no config file found"
	}
	fmt.Fprintf(out, "# source: %s\n\n", source)
	return toml.NewEncoder(out).Encode(shown)
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
	}
	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, msg := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
	}
}

// maskKey keeps the last four characters of a key.
func maskKey(key string) string {
	switch {
	case key == "":
		return ""
	case len(key) <= 4:
		return "****"
	}
	return "****" + key[len(key)-4:]
}
