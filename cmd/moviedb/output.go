package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vmunix/moviedb/pkg/tmdb"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// titleYear formats "Title (1999)", or just the title when the year is unknown.
func titleYear(title string, year int) string {
	if year == 0 {
		return title
	}
	return fmt.Sprintf("%s (%d)", title, year)
}

func yearColumn(year int) string {
	if year == 0 {
		return "----"
	}
	return strconv.Itoa(year)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:max(n, 0)])
	}
	return string(runes[:n-3]) + "..."
}

func genreNames(genres []tmdb.Genre) string {
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = g.Name
	}
	return strings.Join(names, ", ")
}

func printOverview(w io.Writer, overview string) {
	if overview == "" {
		return
	}
	fmt.Fprintf(w, "\n%s\n", overview)
}

// printCast prints at most limit cast members; limit <= 0 prints all.
func printCast(w io.Writer, heading string, cast []tmdb.CastMember, limit int) {
	if len(cast) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", heading)
	for i, c := range cast {
		if limit > 0 && i == limit {
			fmt.Fprintf(w, "  ... and %d more\n", len(cast)-limit)
			break
		}
		if c.Character != "" {
			fmt.Fprintf(w, "  %-28s as %s\n", c.Name, c.Character)
		} else {
			fmt.Fprintf(w, "  %s\n", c.Name)
		}
	}
}

func printCrew(w io.Writer, crew []tmdb.CrewMember, limit int) {
	if len(crew) == 0 {
		return
	}
	fmt.Fprintln(w, "\nCrew:")
	for i, c := range crew {
		if limit > 0 && i == limit {
			fmt.Fprintf(w, "  ... and %d more\n", len(crew)-limit)
			break
		}
		fmt.Fprintf(w, "  %-28s %s\n", c.Name, c.Job)
	}
}

func printExternalIDs(w io.Writer, ids *tmdb.ExternalIDs) {
	if ids == nil {
		return
	}
	var parts []string
	for _, key := range []string{"imdb_id", "tvdb_id", "wikidata_id", "facebook_id", "instagram_id", "twitter_id"} {
		if v := ids.Get(key); v != "" {
			parts = append(parts, strings.TrimSuffix(key, "_id")+":"+v)
		}
	}
	if len(parts) > 0 {
		fmt.Fprintf(w, "External:   %s\n", strings.Join(parts, "  "))
	}
}

// dateYear returns the year of a "YYYY-MM-DD" date as shown in tables.
func dateYear(date string) string {
	if len(date) < 4 {
		return "----"
	}
	return date[:4]
}
