package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vmunix/moviedb/pkg/tmdb"
)

var findCmd = &cobra.Command{
	Use:   "find <external-id>",
	Short: "Find TMDB entries by an external id",
	Long: `Find TMDB entries by the id another database gives them.

Sources: imdb_id, tvdb_id, wikidata_id, facebook_id, instagram_id,
twitter_id, tiktok_id, youtube_id.

Examples:
  moviedb find tt0137523
  moviedb find 80379 --source tvdb_id`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().String("source", "imdb_id", "External source the id belongs to")
}

func runFind(cmd *cobra.Command, args []string) error {
	source, _ := cmd.Flags().GetString("source")

	client, err := newClient()
	if err != nil {
		return err
	}

	found, err := client.FindByExternalID(cmd.Context(), args[0], source)
	if err != nil {
		return fmt.Errorf("find %s %s: %w", source, args[0], err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, found)
	}
	printFindHuman(out, args[0], found)
	return nil
}

func printFindHuman(w io.Writer, id string, f *tmdb.FindResults) {
	if f.Empty() {
		fmt.Fprintf(w, "Nothing found for %s\n", id)
		return
	}
	for _, m := range f.MovieResults {
		fmt.Fprintf(w, "movie    %8d  %s\n", m.ID, titleYear(m.Title, m.Year()))
	}
	for _, s := range f.TVResults {
		fmt.Fprintf(w, "tv       %8d  %s\n", s.ID, titleYear(s.Name, s.Year()))
	}
	for _, p := range f.PersonResults {
		fmt.Fprintf(w, "person   %8d  %s\n", p.ID, p.Name)
	}
	for _, s := range f.TVSeasonResults {
		fmt.Fprintf(w, "season   %8d  %s (season %d)\n", s.ID, s.Name, s.SeasonNumber)
	}
	for _, e := range f.TVEpisodeResults {
		fmt.Fprintf(w, "episode  %8d  S%02dE%02d %s (series %d)\n", e.ID, e.SeasonNumber, e.EpisodeNumber, e.Name, e.ShowID)
	}
}
