package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ImageConfiguration describes how to build image URLs from file paths.
type ImageConfiguration struct {
	BaseURL       string   `json:"base_url"`
	SecureBaseURL string   `json:"secure_base_url"`
	BackdropSizes []string `json:"backdrop_sizes"`
	LogoSizes     []string `json:"logo_sizes"`
	PosterSizes   []string `json:"poster_sizes"`
	ProfileSizes  []string `json:"profile_sizes"`
	StillSizes    []string `json:"still_sizes"`
	Unknown       Unknown  `json:"-"`
}

func (i *ImageConfiguration) UnmarshalJSON(data []byte) error {
	type plain ImageConfiguration
	return decodeLenient(data, (*plain)(i), &i.Unknown)
}

// ImageURL joins the secure base URL, a size ("w500", "original") and a file
// path ("/abc.jpg"). Returns "" when path is empty.
func (i *ImageConfiguration) ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	base := i.SecureBaseURL
	if base == "" {
		base = i.BaseURL
	}
	return strings.TrimSuffix(base, "/") + "/" + size + path
}

// HasSize reports whether size is valid for any image kind.
func (i *ImageConfiguration) HasSize(size string) bool {
	for _, sizes := range [][]string{i.BackdropSizes, i.LogoSizes, i.PosterSizes, i.ProfileSizes, i.StillSizes} {
		if slices.Contains(sizes, size) {
			return true
		}
	}
	return false
}

// Configuration is the API configuration response.
type Configuration struct {
	Images     ImageConfiguration `json:"images"`
	ChangeKeys []string           `json:"change_keys"`
	Unknown    Unknown            `json:"-"`
}

func (c *Configuration) UnmarshalJSON(data []byte) error {
	type plain Configuration
	return decodeLenient(data, (*plain)(c), &c.Unknown)
}

// genreList is the genre list response.
type genreList struct {
	Genres  []Genre `json:"genres"`
	Unknown Unknown `json:"-"`
}

func (g *genreList) UnmarshalJSON(data []byte) error {
	type plain genreList
	return decodeLenient(data, (*plain)(g), &g.Unknown)
}

// FindResults is the response of a lookup by external id. Usually exactly
// one of the slices is non-empty.
type FindResults struct {
	MovieResults     []MovieBasic     `json:"movie_results"`
	TVResults        []TVBasic        `json:"tv_results"`
	PersonResults    []PersonBasic    `json:"person_results"`
	TVEpisodeResults []TVEpisodeBasic `json:"tv_episode_results"`
	TVSeasonResults  []TVSeasonBasic  `json:"tv_season_results"`
	Unknown          Unknown          `json:"-"`
}

func (f *FindResults) UnmarshalJSON(data []byte) error {
	type plain FindResults
	return decodeLenient(data, (*plain)(f), &f.Unknown)
}

// Empty reports whether nothing matched.
func (f *FindResults) Empty() bool {
	return len(f.MovieResults) == 0 && len(f.TVResults) == 0 && len(f.PersonResults) == 0 &&
		len(f.TVEpisodeResults) == 0 && len(f.TVSeasonResults) == 0
}

// GetConfiguration fetches the image base URLs and sizes.
func (c *Client) GetConfiguration(ctx context.Context) (*Configuration, error) {
	var cfg Configuration
	if err := c.get(ctx, "/configuration", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetMovieGenres fetches the list of movie genres.
func (c *Client) GetMovieGenres(ctx context.Context, params ...Param) ([]Genre, error) {
	var list genreList
	if err := c.get(ctx, "/genre/movie/list", &list, params...); err != nil {
		return nil, err
	}
	return list.Genres, nil
}

// GetTVGenres fetches the list of TV genres.
func (c *Client) GetTVGenres(ctx context.Context, params ...Param) ([]Genre, error) {
	var list genreList
	if err := c.get(ctx, "/genre/tv/list", &list, params...); err != nil {
		return nil, err
	}
	return list.Genres, nil
}

// FindByExternalID looks up TMDB resources by an id from another database.
// source is one of imdb_id, tvdb_id, wikidata_id, facebook_id, instagram_id,
// twitter_id, tiktok_id, youtube_id.
func (c *Client) FindByExternalID(ctx context.Context, externalID, source string, params ...Param) (*FindResults, error) {
	if strings.TrimSpace(externalID) == "" {
		return nil, fmt.Errorf("empty external id: %w", ErrInvalidArgument)
	}
	if source == "" {
		return nil, fmt.Errorf("empty external source: %w", ErrInvalidArgument)
	}
	var results FindResults
	path := "/find/" + url.PathEscape(externalID)
	if err := c.get(ctx, path, &results, append([]Param{ExternalSource(source)}, params...)...); err != nil {
		return nil, err
	}
	return &results, nil
}
