package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"github.com/vmunix/moviedb/internal/catalog"
	"github.com/vmunix/moviedb/pkg/tmdb"
)

var personCmd = &cobra.Command{
	Use:   "person <id>",
	Short: "Show a person",
	Long: `Show a person by TMDB id.

Examples:
  moviedb person 819
  moviedb person 819 --credits`,
	Args: cobra.ExactArgs(1),
	RunE: runPerson,
}

func init() {
	rootCmd.AddCommand(personCmd)
	personCmd.Flags().Bool("credits", false, "Include movie and TV credits")
	personCmd.Flags().Bool("save", false, "Save the person to the catalog")
}

func runPerson(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "person id")
	if err != nil {
		return err
	}
	credits, _ := cmd.Flags().GetBool("credits")
	save, _ := cmd.Flags().GetBool("save")

	client, err := newClient()
	if err != nil {
		return err
	}

	params := []tmdb.Param{tmdb.Append("external_ids")}
	if credits {
		params = []tmdb.Param{tmdb.Append("external_ids", "movie_credits", "tv_credits")}
	}

	person, err := client.GetPerson(cmd.Context(), id, params...)
	if err != nil {
		return fmt.Errorf("get person %d: %w", id, err)
	}

	if save {
		if err := saveEntry(cmd, func() (*catalog.Entry, error) {
			return catalog.FromPerson(person, cfg.TMDB.Language)
		}); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, person)
	}
	printPersonHuman(out, person)
	return nil
}

func printPersonHuman(w io.Writer, p *tmdb.Person) {
	fmt.Fprintf(w, "%s  [tmdb:%d]\n", p.Name, p.ID)
	if p.KnownForDepartment != "" {
		fmt.Fprintf(w, "Known for:  %s\n", p.KnownForDepartment)
	}
	if p.Birthday != "" {
		born := p.Birthday
		if p.PlaceOfBirth != "" {
			born += ", " + p.PlaceOfBirth
		}
		fmt.Fprintf(w, "Born:       %s\n", born)
	}
	if p.Deathday != "" {
		fmt.Fprintf(w, "Died:       %s\n", p.Deathday)
	}
	printExternalIDs(w, p.ExternalIDs)
	printOverview(w, p.Biography)

	if p.MovieCredits != nil && len(p.MovieCredits.Cast)+len(p.MovieCredits.Crew) > 0 {
		fmt.Fprintln(w, "\nMovies:")
		for _, c := range byReleaseDate(append(slices.Clone(p.MovieCredits.Cast), p.MovieCredits.Crew...)) {
			role := c.Character
			if role == "" {
				role = c.Job
			}
			fmt.Fprintf(w, "  %s  %-40s %s\n", dateYear(c.ReleaseDate), truncate(c.Title, 40), role)
		}
	}

	if p.TVCredits != nil && len(p.TVCredits.Cast)+len(p.TVCredits.Crew) > 0 {
		fmt.Fprintln(w, "\nTV:")
		for _, c := range append(slices.Clone(p.TVCredits.Cast), p.TVCredits.Crew...) {
			role := c.Character
			if role == "" {
				role = c.Job
			}
			fmt.Fprintf(w, "  %s  %-40s %s", dateYear(c.FirstAirDate), truncate(c.Name, 40), role)
			if c.EpisodeCount > 0 {
				fmt.Fprintf(w, " (%d episodes)", c.EpisodeCount)
			}
			fmt.Fprintln(w)
		}
	}
}

// byReleaseDate sorts newest first; undated credits go last.
func byReleaseDate(credits []tmdb.PersonMovieCredit) []tmdb.PersonMovieCredit {
	slices.SortStableFunc(credits, func(a, b tmdb.PersonMovieCredit) int {
		switch {
		case a.ReleaseDate == b.ReleaseDate:
			return 0
		case a.ReleaseDate == "":
			return 1
		case b.ReleaseDate == "":
			return -1
		}
		return cmp.Compare(b.ReleaseDate, a.ReleaseDate)
	})
	return credits
}
