// Package lookup composes TMDB calls into the lookups the CLI needs:
// picking the best search result for a title and loading a series together
// with all of its seasons.
package lookup

//go:generate mockgen -destination=mocks/mock_api.go -package=mocks github.com/vmunix/moviedb/internal/lookup API

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/vmunix/moviedb/internal/match"
	"github.com/vmunix/moviedb/pkg/tmdb"
	"golang.org/x/sync/errgroup"
)

// DefaultSeasonLimit bounds concurrent season requests when the caller passes
// no limit.
const DefaultSeasonLimit = 4

// ErrNoMatch is returned when no search result reaches low confidence.
var ErrNoMatch = errors.New("no confident match")

var _ API = (*tmdb.Client)(nil)

// API is the part of *tmdb.Client a Resolver uses.
type API interface {
	SearchMovies(ctx context.Context, query string, params ...tmdb.Param) (*tmdb.ResultsList[tmdb.MovieBasic], error)
	SearchTV(ctx context.Context, query string, params ...tmdb.Param) (*tmdb.ResultsList[tmdb.TVBasic], error)
	GetTVSeries(ctx context.Context, id int, params ...tmdb.Param) (*tmdb.TVSeries, error)
	GetTVSeason(ctx context.Context, id, season int, params ...tmdb.Param) (*tmdb.TVSeason, error)
}

// MovieMatch is the movie picked for a title.
type MovieMatch struct {
	Movie  tmdb.MovieBasic
	Result match.Result
}

// SeriesMatch is the series picked for a title.
type SeriesMatch struct {
	Series tmdb.TVBasic
	Result match.Result
}

// SeriesDetails is a series with every season it lists, ordered by season number.
type SeriesDetails struct {
	Series  *tmdb.TVSeries
	Seasons []*tmdb.TVSeason
}

// EpisodeCount sums the episodes of the loaded seasons.
func (d *SeriesDetails) EpisodeCount() int {
	n := 0
	for _, s := range d.Seasons {
		n += len(s.Episodes)
	}
	return n
}

// Resolver runs lookups against an API.
type Resolver struct {
	api    API
	logger *slog.Logger
}

// NewResolver creates a resolver.
func NewResolver(api API, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		api:    api,
		logger: logger.With("component", "lookup"),
	}
}

// MatchMovie searches for title and returns the best scoring movie. year may
// be 0. The search is not filtered by year; year only adjusts scores.
func (r *Resolver) MatchMovie(ctx context.Context, title string, year int) (*MovieMatch, error) {
	query := match.SearchQuery(title)
	list, err := r.api.SearchMovies(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search movies %q: %w", query, err)
	}

	candidates := make([]match.Candidate, len(list.Results))
	for i, m := range list.Results {
		candidates[i] = match.Candidate{ID: m.ID, Title: m.Title, Year: m.Year()}
	}

	best := match.Best(title, year, candidates)
	r.logger.Debug("movie match", "title", title, "year", year, "candidates", len(candidates),
		"score", best.Score, "confidence", best.Confidence.String())
	if !best.Matched() {
		return nil, fmt.Errorf("movie %q: %w", title, ErrNoMatch)
	}

	i := slices.IndexFunc(list.Results, func(m tmdb.MovieBasic) bool { return m.ID == best.Candidate.ID })
	return &MovieMatch{Movie: list.Results[i], Result: best}, nil
}

// MatchSeries searches for title and returns the best scoring series.
func (r *Resolver) MatchSeries(ctx context.Context, title string, year int) (*SeriesMatch, error) {
	query := match.SearchQuery(title)
	list, err := r.api.SearchTV(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search tv %q: %w", query, err)
	}

	candidates := make([]match.Candidate, len(list.Results))
	for i, s := range list.Results {
		candidates[i] = match.Candidate{ID: s.ID, Title: s.Name, Year: s.Year()}
	}

	best := match.Best(title, year, candidates)
	r.logger.Debug("series match", "title", title, "year", year, "candidates", len(candidates),
		"score", best.Score, "confidence", best.Confidence.String())
	if !best.Matched() {
		return nil, fmt.Errorf("series %q: %w", title, ErrNoMatch)
	}

	i := slices.IndexFunc(list.Results, func(s tmdb.TVBasic) bool { return s.ID == best.Candidate.ID })
	return &SeriesMatch{Series: list.Results[i], Result: best}, nil
}

// SeriesWithSeasons loads series id and then all of its seasons, at most
// limit at a time (DefaultSeasonLimit when limit <= 0). The first failing
// season cancels the others.
func (r *Resolver) SeriesWithSeasons(ctx context.Context, id, limit int, params ...tmdb.Param) (*SeriesDetails, error) {
	start := time.Now()

	series, err := r.api.GetTVSeries(ctx, id, params...)
	if err != nil {
		return nil, fmt.Errorf("get series %d: %w", id, err)
	}

	if limit <= 0 {
		limit = DefaultSeasonLimit
	}

	seasons := make([]*tmdb.TVSeason, len(series.Seasons))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, s := range series.Seasons {
		g.Go(func() error {
			season, err := r.api.GetTVSeason(gctx, id, s.SeasonNumber, params...)
			if err != nil {
				return fmt.Errorf("get season %d of series %d: %w", s.SeasonNumber, id, err)
			}
			seasons[i] = season
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(seasons, func(a, b *tmdb.TVSeason) int {
		return cmp.Compare(a.SeasonNumber, b.SeasonNumber)
	})

	r.logger.Debug("series loaded", "tmdb_id", id, "seasons", len(seasons),
		"duration_ms", time.Since(start).Milliseconds())

	return &SeriesDetails{Series: series, Seasons: seasons}, nil
}
