package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// MultiResult is one entry of a multi search. MediaType is "movie", "tv" or
// "person" and decides which members are filled.
type MultiResult struct {
	ID                 int        `json:"id"`
	MediaType          string     `json:"media_type"`
	Title              string     `json:"title"`
	OriginalTitle      string     `json:"original_title"`
	Name               string     `json:"name"`
	OriginalName       string     `json:"original_name"`
	Overview           string     `json:"overview"`
	ReleaseDate        string     `json:"release_date"`
	FirstAirDate       string     `json:"first_air_date"`
	Adult              bool       `json:"adult"`
	GenreIDs           []int      `json:"genre_ids"`
	Popularity         float64    `json:"popularity"`
	VoteAverage        float64    `json:"vote_average"`
	VoteCount          int        `json:"vote_count"`
	PosterPath         string     `json:"poster_path"`
	BackdropPath       string     `json:"backdrop_path"`
	ProfilePath        string     `json:"profile_path"`
	KnownForDepartment string     `json:"known_for_department"`
	KnownFor           []KnownFor `json:"known_for"`
	Unknown            Unknown    `json:"-"`
}

func (m *MultiResult) UnmarshalJSON(data []byte) error {
	type plain MultiResult
	return decodeLenient(data, (*plain)(m), &m.Unknown)
}

// DisplayName returns the title for movies and the name otherwise.
func (m *MultiResult) DisplayName() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Name
}

// SearchMovies searches movies by title.
func (c *Client) SearchMovies(ctx context.Context, query string, params ...Param) (*ResultsList[MovieBasic], error) {
	if err := checkQuery(query); err != nil {
		return nil, err
	}
	return getList[MovieBasic](ctx, c, "/search/movie", withQuery(query, params))
}

// SearchTV searches series by name.
func (c *Client) SearchTV(ctx context.Context, query string, params ...Param) (*ResultsList[TVBasic], error) {
	if err := checkQuery(query); err != nil {
		return nil, err
	}
	return getList[TVBasic](ctx, c, "/search/tv", withQuery(query, params))
}

// SearchPeople searches people by name.
func (c *Client) SearchPeople(ctx context.Context, query string, params ...Param) (*ResultsList[PersonBasic], error) {
	if err := checkQuery(query); err != nil {
		return nil, err
	}
	return getList[PersonBasic](ctx, c, "/search/person", withQuery(query, params))
}

// SearchMulti searches movies, series and people in one request.
func (c *Client) SearchMulti(ctx context.Context, query string, params ...Param) (*ResultsList[MultiResult], error) {
	if err := checkQuery(query); err != nil {
		return nil, err
	}
	return getList[MultiResult](ctx, c, "/search/multi", withQuery(query, params))
}

func withQuery(query string, params []Param) []Param {
	q := func(v url.Values) { v.Set("query", query) }
	return append([]Param{q}, params...)
}

func checkQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("empty search query: %w", ErrInvalidArgument)
	}
	return nil
}
