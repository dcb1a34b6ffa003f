package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"github.com/vmunix/moviedb/internal/catalog"
	"github.com/vmunix/moviedb/pkg/tmdb"
)

var movieCmd = &cobra.Command{
	Use:   "movie <id>",
	Short: "Show movie details",
	Long: `Show the details of a movie by TMDB id.

Examples:
  moviedb movie 550
  moviedb movie 550 --append credits,keywords
  moviedb movie 550 --releases --save`,
	Args: cobra.ExactArgs(1),
	RunE: runMovie,
}

func init() {
	rootCmd.AddCommand(movieCmd)
	movieCmd.Flags().String("append", "", "Sub-resources to append, comma separated (credits,videos,images,...)")
	movieCmd.Flags().Bool("releases", false, "Show release dates and certifications per country")
	movieCmd.Flags().Bool("save", false, "Save the movie to the catalog")
}

func runMovie(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "movie id")
	if err != nil {
		return err
	}
	appendFlag, _ := cmd.Flags().GetString("append")
	releases, _ := cmd.Flags().GetBool("releases")
	save, _ := cmd.Flags().GetBool("save")

	client, err := newClient()
	if err != nil {
		return err
	}

	methods := splitList(appendFlag)
	if releases && !slices.Contains(methods, "releases") {
		methods = append(methods, "releases")
	}
	var params []tmdb.Param
	if len(methods) > 0 {
		params = append(params, tmdb.Append(methods...))
	}

	movie, err := client.GetMovie(cmd.Context(), id, params...)
	if err != nil {
		return fmt.Errorf("get movie %d: %w", id, err)
	}

	if save {
		if err := saveEntry(cmd, func() (*catalog.Entry, error) {
			return catalog.FromMovie(movie, cfg.TMDB.Language)
		}); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, movie)
	}
	printMovieHuman(out, movie, releases)
	return nil
}

func printMovieHuman(w io.Writer, m *tmdb.Movie, releases bool) {
	fmt.Fprintf(w, "%s  [tmdb:%d]\n", titleYear(m.Title, m.Year()), m.ID)
	if m.OriginalTitle != "" && m.OriginalTitle != m.Title {
		fmt.Fprintf(w, "Original:   %s\n", m.OriginalTitle)
	}
	if m.Tagline != "" {
		fmt.Fprintf(w, "Tagline:    %s\n", m.Tagline)
	}
	if m.Status != "" {
		fmt.Fprintf(w, "Status:     %s\n", m.Status)
	}
	if m.ReleaseDate != "" {
		fmt.Fprintf(w, "Released:   %s\n", m.ReleaseDate)
	}
	if m.Runtime > 0 {
		fmt.Fprintf(w, "Runtime:    %d min\n", m.Runtime)
	}
	if len(m.Genres) > 0 {
		fmt.Fprintf(w, "Genres:     %s\n", genreNames(m.Genres))
	}
	if m.VoteCount > 0 {
		fmt.Fprintf(w, "Rating:     %.1f (%d votes)\n", m.VoteAverage, m.VoteCount)
	}
	if m.IMDbID != "" {
		fmt.Fprintf(w, "IMDb:       %s\n", m.IMDbID)
	}
	if m.BelongsToCollection != nil {
		fmt.Fprintf(w, "Collection: %s [tmdb:%d]\n", m.BelongsToCollection.Name, m.BelongsToCollection.ID)
	}
	printExternalIDs(w, m.ExternalIDs)
	printOverview(w, m.Overview)

	if m.Credits != nil {
		printCast(w, "Cast", m.Credits.Cast, 10)
		printCrew(w, m.Credits.Crew, 10)
	}

	if releases && m.Releases != nil {
		fmt.Fprintln(w, "\nReleases:")
		if len(m.Releases.Countries) == 0 {
			fmt.Fprintln(w, "  none")
		}
		for _, r := range m.Releases.Countries {
			cert := r.Certification
			if cert == "" {
				cert = "-"
			}
			fmt.Fprintf(w, "  %-3s %-6s %s\n", r.Country, cert, r.ReleaseDate)
		}
	}
}
