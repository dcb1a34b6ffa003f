package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vmunix/moviedb/pkg/tmdb"
)

var episodeCmd = &cobra.Command{
	Use:   "episode <tv-id> <season> <episode>",
	Short: "Show an episode",
	Long: `Show one episode of a series.

Examples:
  moviedb episode 1418 1 1
  moviedb episode 1418 1 1 --credits`,
	Args: cobra.ExactArgs(3),
	RunE: runEpisode,
}

func init() {
	rootCmd.AddCommand(episodeCmd)
	episodeCmd.Flags().Bool("credits", false, "Include cast, guest stars and crew")
}

func runEpisode(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "series id")
	if err != nil {
		return err
	}
	season, err := parseNumber(args[1], "season number")
	if err != nil {
		return err
	}
	number, err := parseNumber(args[2], "episode number")
	if err != nil {
		return err
	}
	credits, _ := cmd.Flags().GetBool("credits")

	client, err := newClient()
	if err != nil {
		return err
	}

	var params []tmdb.Param
	if credits {
		params = append(params, tmdb.Append("credits"))
	}

	episode, err := client.GetTVEpisode(cmd.Context(), id, season, number, params...)
	if err != nil {
		return fmt.Errorf("get series %d S%02dE%02d: %w", id, season, number, err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, episode)
	}
	printEpisodeHuman(out, episode)
	return nil
}

func printEpisodeHuman(w io.Writer, e *tmdb.TVEpisode) {
	fmt.Fprintf(w, "S%02dE%02d  %s  [tmdb:%d]\n", e.SeasonNumber, e.EpisodeNumber, e.Name, e.ID)
	if e.AirDate != "" {
		fmt.Fprintf(w, "Aired:      %s\n", e.AirDate)
	}
	if e.Runtime > 0 {
		fmt.Fprintf(w, "Runtime:    %d min\n", e.Runtime)
	}
	if e.VoteCount > 0 {
		fmt.Fprintf(w, "Rating:     %.1f (%d votes)\n", e.VoteAverage, e.VoteCount)
	}
	printOverview(w, e.Overview)

	if e.Credits == nil {
		return
	}
	printCast(w, "Cast", e.Credits.Cast, 0)
	guests := e.Credits.GuestStars
	if len(guests) == 0 {
		guests = e.GuestStars
	}
	printCast(w, "Guest stars", guests, 0)
	crew := e.Credits.Crew
	if len(crew) == 0 {
		crew = e.Crew
	}
	printCrew(w, crew, 0)
}
