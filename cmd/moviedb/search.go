package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/moviedb/pkg/tmdb"
)

var searchCmd = &cobra.Command{
	Use:   "search <movie|tv|person|multi> <query>...",
	Short: "Search TMDB by title or name",
	Long: `Search TMDB by title or name.

Examples:
  moviedb search movie "The Dark Knight" --year 2008
  moviedb search tv big bang theory
  moviedb search person "Edward Norton"
  moviedb search multi fight --page 2`,
	Args:      cobra.MinimumNArgs(2),
	ValidArgs: []string{"movie", "tv", "person", "multi"},
	RunE:      runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Int("page", 1, "Result page")
	searchCmd.Flags().Int("year", 0, "Release year (movie) or first air year (tv)")
	searchCmd.Flags().Bool("adult", false, "Include adult results")
}

// searchRow is one line of search output, whatever the media type.
type searchRow struct {
	ID    int
	Media string
	Title string
	Year  int
	Extra string
}

type searchPage struct {
	Page         int
	TotalPages   int
	TotalResults int
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	kind := args[0]
	query := strings.Join(args[1:], " ")
	page, _ := cmd.Flags().GetInt("page")
	year, _ := cmd.Flags().GetInt("year")
	adult, _ := cmd.Flags().GetBool("adult")

	if page < 1 {
		return fmt.Errorf("invalid --page %d: must be at least 1", page)
	}
	if year != 0 && kind != "movie" && kind != "tv" {
		return errors.New("--year only applies to movie and tv searches")
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	params := []tmdb.Param{tmdb.Page(page), tmdb.IncludeAdult(adult)}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	var (
		rows   []searchRow
		paging searchPage
		result any
	)

	switch kind {
	case "movie":
		if year > 0 {
			params = append(params, tmdb.Year(year))
		}
		list, err := client.SearchMovies(ctx, query, params...)
		if err != nil {
			return fmt.Errorf("search movies: %w", err)
		}
		result, paging = list, pageOf(list)
		for _, m := range list.Results {
			rows = append(rows, searchRow{ID: m.ID, Media: "movie", Title: m.Title, Year: m.Year()})
		}
	case "tv":
		if year > 0 {
			params = append(params, tmdb.FirstAirDateYear(year))
		}
		list, err := client.SearchTV(ctx, query, params...)
		if err != nil {
			return fmt.Errorf("search tv: %w", err)
		}
		result, paging = list, pageOf(list)
		for _, s := range list.Results {
			rows = append(rows, searchRow{ID: s.ID, Media: "tv", Title: s.Name, Year: s.Year()})
		}
	case "person":
		list, err := client.SearchPeople(ctx, query, params...)
		if err != nil {
			return fmt.Errorf("search people: %w", err)
		}
		result, paging = list, pageOf(list)
		for _, p := range list.Results {
			rows = append(rows, searchRow{ID: p.ID, Media: "person", Title: p.Name, Extra: knownForTitles(p.KnownFor)})
		}
	case "multi":
		list, err := client.SearchMulti(ctx, query, params...)
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}
		result, paging = list, pageOf(list)
		for _, r := range list.Results {
			row := searchRow{ID: r.ID, Media: r.MediaType, Title: r.DisplayName()}
			switch r.MediaType {
			case "movie":
				row.Year = yearFromDate(r.ReleaseDate)
			case "tv":
				row.Year = yearFromDate(r.FirstAirDate)
			case "person":
				row.Extra = knownForTitles(r.KnownFor)
			}
			rows = append(rows, row)
		}
	default:
		return fmt.Errorf("unknown search type %q: use movie, tv, person or multi", kind)
	}

	if jsonOutput {
		return printJSON(out, result)
	}
	printSearchHuman(out, query, rows, paging)
	return nil
}

func pageOf[T any](list *tmdb.ResultsList[T]) searchPage {
	return searchPage{Page: list.Page, TotalPages: list.TotalPages, TotalResults: list.TotalResults}
}

func yearFromDate(date string) int {
	y, err := strconv.Atoi(dateYear(date))
	if err != nil {
		return 0
	}
	return y
}

func knownForTitles(known []tmdb.KnownFor) string {
	titles := make([]string, 0, len(known))
	for _, k := range known {
		if k.Title != "" {
			titles = append(titles, k.Title)
		} else if k.Name != "" {
			titles = append(titles, k.Name)
		}
	}
	return strings.Join(titles, ", ")
}

func printSearchHuman(w io.Writer, query string, rows []searchRow, p searchPage) {
	if len(rows) == 0 {
		fmt.Fprintf(w, "No results for %q\n", query)
		return
	}

	fmt.Fprintf(w, "Results for %q (page %d of %d, %d total):\n\n", query, p.Page, p.TotalPages, p.TotalResults)
	fmt.Fprintf(w, "  %8s │ %-6s │ %-4s │ %s\n", "ID", "TYPE", "YEAR", "TITLE")
	fmt.Fprintln(w, "  ─────────┼────────┼──────┼──────────────────────────────────────────")
	for _, r := range rows {
		title := truncate(r.Title, 42)
		if r.Extra != "" {
			title += "  (" + truncate(r.Extra, 40) + ")"
		}
		fmt.Fprintf(w, "  %8d │ %-6s │ %-4s │ %s\n", r.ID, r.Media, yearColumn(r.Year), title)
	}
}
