package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/moviedb/internal/lookup"
	"github.com/vmunix/moviedb/internal/match"
)

var matchCmd = &cobra.Command{
	Use:   "match <movie|tv> <title>...",
	Short: "Resolve a title to its TMDB entry",
	Long: `Resolve a title, as written in a file name or a list, to the TMDB entry
it most likely refers to.

Examples:
  moviedb match movie "Rocky II"
  moviedb match movie "the dark knight" --year 2008
  moviedb match tv "Big Bang Theory"`,
	Args:      cobra.MinimumNArgs(2),
	ValidArgs: []string{"movie", "tv"},
	RunE:      runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.Flags().Int("year", 0, "Year hint used to break ties")
}

// matchOutput is the JSON shape of a match.
type matchOutput struct {
	Kind       string  `json:"kind"`
	TMDBID     int     `json:"tmdb_id"`
	Title      string  `json:"title"`
	Year       int     `json:"year,omitempty"`
	Score      float64 `json:"score"`
	Confidence string  `json:"confidence"`
}

func runMatch(cmd *cobra.Command, args []string) error {
	kind := args[0]
	title := strings.Join(args[1:], " ")
	year, _ := cmd.Flags().GetInt("year")

	client, err := newClient()
	if err != nil {
		return err
	}
	resolver := lookup.NewResolver(client, logger)

	var result match.Result
	switch kind {
	case "movie":
		m, err := resolver.MatchMovie(cmd.Context(), title, year)
		if err != nil {
			return err
		}
		result = m.Result
	case "tv":
		s, err := resolver.MatchSeries(cmd.Context(), title, year)
		if err != nil {
			return err
		}
		result = s.Result
	default:
		return fmt.Errorf("unknown match type %q: use movie or tv", kind)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, matchOutput{
			Kind:       kind,
			TMDBID:     result.Candidate.ID,
			Title:      result.Candidate.Title,
			Year:       result.Candidate.Year,
			Score:      result.Score,
			Confidence: result.Confidence.String(),
		})
	}
	printMatchHuman(out, kind, result)
	return nil
}

func printMatchHuman(w io.Writer, kind string, r match.Result) {
	fmt.Fprintf(w, "%s  [%s tmdb:%d]\n", titleYear(r.Candidate.Title, r.Candidate.Year), kind, r.Candidate.ID)
	fmt.Fprintf(w, "Score:      %.2f (%s confidence)\n", r.Score, r.Confidence)
}
