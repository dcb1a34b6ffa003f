package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vmunix/moviedb/pkg/tmdb"
)

var seasonCmd = &cobra.Command{
	Use:   "season <tv-id> <season>",
	Short: "Show a season and its episodes",
	Long: `Show one season of a series. Season 0 holds the specials.

Examples:
  moviedb season 1418 1
  moviedb season 1418 0`,
	Args: cobra.ExactArgs(2),
	RunE: runSeason,
}

func init() {
	rootCmd.AddCommand(seasonCmd)
}

func runSeason(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "series id")
	if err != nil {
		return err
	}
	number, err := parseNumber(args[1], "season number")
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	season, err := client.GetTVSeason(cmd.Context(), id, number)
	if err != nil {
		return fmt.Errorf("get series %d season %d: %w", id, number, err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, season)
	}
	printSeasonHuman(out, season)
	return nil
}

func printSeasonHuman(w io.Writer, s *tmdb.TVSeason) {
	header := s.Name
	if s.AirDate != "" {
		header += "  (" + s.AirDate + ")"
	}
	fmt.Fprintf(w, "%s  [season %d, %d episodes]\n", header, s.SeasonNumber, len(s.Episodes))
	for _, e := range s.Episodes {
		fmt.Fprintf(w, "  S%02dE%02d  %-40s %s\n", e.SeasonNumber, e.EpisodeNumber, truncate(e.Name, 40), e.AirDate)
	}
}
