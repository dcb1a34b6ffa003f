package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/vmunix/moviedb/internal/catalog"
	"github.com/vmunix/moviedb/internal/lookup"
	"github.com/vmunix/moviedb/pkg/tmdb"
)

func init() {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage saved titles",
		Long: `Manage the local catalog of titles saved with --save.

The catalog lives in a SQLite database at catalog.path.`,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved titles",
		Args:  cobra.NoArgs,
		RunE:  runCatalogList,
	}
	listCmd.Flags().StringP("kind", "k", "", "Only list one kind (movie, tv, person)")

	showCmd := &cobra.Command{
		Use:   "show <movie|tv|person> <id>",
		Short: "Show a saved title as it was when saved",
		Args:  cobra.ExactArgs(2),
		RunE:  runCatalogShow,
	}

	rmCmd := &cobra.Command{
		Use:     "rm <movie|tv|person> <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a saved title",
		Args:    cobra.ExactArgs(2),
		RunE:    runCatalogRemove,
	}

	catalogCmd.AddCommand(listCmd, showCmd, rmCmd)
	rootCmd.AddCommand(catalogCmd)
}

// saveEntry builds an entry and stores it in the catalog.
func saveEntry(cmd *cobra.Command, build func() (*catalog.Entry, error)) error {
	entry, err := build()
	if err != nil {
		return err
	}

	store, err := openCatalog(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Save(cmd.Context(), entry); err != nil {
		return fmt.Errorf("save %s %d: %w", entry.Kind, entry.TMDBID, err)
	}
	logger.Info("saved to catalog", "kind", entry.Kind, "tmdb_id", entry.TMDBID, "title", entry.Title)
	return nil
}

func parseKindAndID(args []string) (catalog.Kind, int, error) {
	kind, err := catalog.ParseKind(args[0])
	if err != nil {
		return "", 0, err
	}
	id, err := parseID(args[1], string(kind)+" id")
	if err != nil {
		return "", 0, err
	}
	return kind, id, nil
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	kindFlag, _ := cmd.Flags().GetString("kind")

	var kind catalog.Kind
	if kindFlag != "" {
		k, err := catalog.ParseKind(kindFlag)
		if err != nil {
			return err
		}
		kind = k
	}

	store, err := openCatalog(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	entries, err := store.List(cmd.Context(), kind)
	if err != nil {
		return fmt.Errorf("list catalog: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		if entries == nil {
			entries = []*catalog.Entry{}
		}
		return printJSON(out, entries)
	}
	printCatalogHuman(out, entries)
	return nil
}

func printCatalogHuman(w io.Writer, entries []*catalog.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "Catalog is empty")
		return
	}

	fmt.Fprintf(w, "  %-6s │ %8s │ %-4s │ %-42s │ %s\n", "KIND", "ID", "YEAR", "TITLE", "SAVED")
	fmt.Fprintln(w, "  ───────┼──────────┼──────┼────────────────────────────────────────────┼─────────────────")
	for _, e := range entries {
		fmt.Fprintf(w, "  %-6s │ %8d │ %-4s │ %-42s │ %s\n",
			e.Kind, e.TMDBID, yearColumn(e.Year), truncate(e.Title, 42), e.SavedAt.Local().Format(time.DateTime))
	}
	fmt.Fprintf(w, "\n%d saved\n", len(entries))
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	kind, id, err := parseKindAndID(args)
	if err != nil {
		return err
	}

	store, err := openCatalog(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	entry, err := store.Get(cmd.Context(), kind, id)
	if errors.Is(err, catalog.ErrNotFound) {
		return fmt.Errorf("%s %d is not in the catalog", kind, id)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, entry)
	}

	switch entry.Kind {
	case catalog.KindMovie:
		var m tmdb.Movie
		if err := entry.Decode(&m); err != nil {
			return err
		}
		printMovieHuman(out, &m, true)
	case catalog.KindTV:
		var s tmdb.TVSeries
		if err := entry.Decode(&s); err != nil {
			return err
		}
		printSeriesHuman(out, &lookup.SeriesDetails{Series: &s})
	case catalog.KindPerson:
		var p tmdb.Person
		if err := entry.Decode(&p); err != nil {
			return err
		}
		printPersonHuman(out, &p)
	}
	fmt.Fprintf(out, "\nSaved %s", entry.SavedAt.Local().Format(time.DateTime))
	if entry.Language != "" {
		fmt.Fprintf(out, " (%s)", entry.Language)
	}
	fmt.Fprintln(out)
	return nil
}

func runCatalogRemove(cmd *cobra.Command, args []string) error {
	kind, id, err := parseKindAndID(args)
	if err != nil {
		return err
	}

	store, err := openCatalog(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Delete(cmd.Context(), kind, id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return fmt.Errorf("%s %d is not in the catalog", kind, id)
		}
		return err
	}

	if !jsonOutput {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %d\n", kind, id)
	}
	return nil
}
