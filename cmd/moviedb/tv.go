package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/moviedb/internal/catalog"
	"github.com/vmunix/moviedb/internal/lookup"
	"github.com/vmunix/moviedb/pkg/tmdb"
)

var tvCmd = &cobra.Command{
	Use:   "tv <id>",
	Short: "Show series details",
	Long: `Show the details of a TV series by TMDB id.

With --seasons every season is fetched as well, several at a time.

Examples:
  moviedb tv 1418
  moviedb tv 1418 --seasons --limit 8`,
	Args: cobra.ExactArgs(1),
	RunE: runTV,
}

func init() {
	rootCmd.AddCommand(tvCmd)
	tvCmd.Flags().String("append", "", "Sub-resources to append, comma separated (credits,external_ids,...)")
	tvCmd.Flags().Bool("seasons", false, "Fetch every season with its episodes")
	tvCmd.Flags().Int("limit", lookup.DefaultSeasonLimit, "Seasons fetched concurrently with --seasons")
	tvCmd.Flags().Bool("save", false, "Save the series to the catalog")
}

func runTV(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "series id")
	if err != nil {
		return err
	}
	appendFlag, _ := cmd.Flags().GetString("append")
	seasons, _ := cmd.Flags().GetBool("seasons")
	limit, _ := cmd.Flags().GetInt("limit")
	save, _ := cmd.Flags().GetBool("save")

	client, err := newClient()
	if err != nil {
		return err
	}

	var params []tmdb.Param
	if methods := splitList(appendFlag); len(methods) > 0 {
		params = append(params, tmdb.Append(methods...))
	}

	var details *lookup.SeriesDetails
	if seasons {
		resolver := lookup.NewResolver(client, logger)
		details, err = resolver.SeriesWithSeasons(cmd.Context(), id, limit, params...)
		if err != nil {
			return err
		}
	} else {
		series, err := client.GetTVSeries(cmd.Context(), id, params...)
		if err != nil {
			return fmt.Errorf("get series %d: %w", id, err)
		}
		details = &lookup.SeriesDetails{Series: series}
	}

	if save {
		if err := saveEntry(cmd, func() (*catalog.Entry, error) {
			return catalog.FromSeries(details.Series, cfg.TMDB.Language)
		}); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		if seasons {
			return printJSON(out, details)
		}
		return printJSON(out, details.Series)
	}
	printSeriesHuman(out, details)
	return nil
}

func printSeriesHuman(w io.Writer, d *lookup.SeriesDetails) {
	s := d.Series
	fmt.Fprintf(w, "%s  [tmdb:%d]\n", titleYear(s.Name, s.Year()), s.ID)
	if s.OriginalName != "" && s.OriginalName != s.Name {
		fmt.Fprintf(w, "Original:   %s\n", s.OriginalName)
	}
	if s.Status != "" {
		fmt.Fprintf(w, "Status:     %s\n", s.Status)
	}
	if s.FirstAirDate != "" {
		aired := s.FirstAirDate
		if s.LastAirDate != "" {
			aired += " to " + s.LastAirDate
		}
		fmt.Fprintf(w, "Aired:      %s\n", aired)
	}
	fmt.Fprintf(w, "Seasons:    %d (%d episodes)\n", s.NumberOfSeasons, s.NumberOfEpisodes)
	if len(s.Networks) > 0 {
		names := make([]string, len(s.Networks))
		for i, n := range s.Networks {
			names[i] = n.Name
		}
		fmt.Fprintf(w, "Networks:   %s\n", strings.Join(names, ", "))
	}
	if len(s.Genres) > 0 {
		fmt.Fprintf(w, "Genres:     %s\n", genreNames(s.Genres))
	}
	if s.VoteCount > 0 {
		fmt.Fprintf(w, "Rating:     %.1f (%d votes)\n", s.VoteAverage, s.VoteCount)
	}
	if s.NextEpisodeToAir != nil {
		next := s.NextEpisodeToAir
		fmt.Fprintf(w, "Next:       S%02dE%02d %s (%s)\n", next.SeasonNumber, next.EpisodeNumber, next.Name, next.AirDate)
	}
	printExternalIDs(w, s.ExternalIDs)
	printOverview(w, s.Overview)

	if s.Credits != nil {
		printCast(w, "Cast", s.Credits.Cast, 10)
	}

	if len(d.Seasons) > 0 {
		for _, season := range d.Seasons {
			fmt.Fprintln(w)
			printSeasonHuman(w, season)
		}
		return
	}

	if len(s.Seasons) > 0 {
		fmt.Fprintln(w, "\nSeasons:")
		for _, season := range s.Seasons {
			fmt.Fprintf(w, "  %3d  %-24s %3d episodes  %s\n",
				season.SeasonNumber, truncate(season.Name, 24), season.EpisodeCount, season.AirDate)
		}
	}
}
