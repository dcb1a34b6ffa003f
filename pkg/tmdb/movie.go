package tmdb

import (
	"context"
	"fmt"
	"strings"
)

// Movie is the movie details response. The pointer members are only filled
// when requested with Append (e.g. Append("credits", "releases")).
type Movie struct {
	ID                  int                 `json:"id"`
	IMDbID              string              `json:"imdb_id"`
	Title               string              `json:"title"`
	OriginalTitle       string              `json:"original_title"`
	OriginalLanguage    string              `json:"original_language"`
	Overview            string              `json:"overview"`
	Tagline             string              `json:"tagline"`
	Status              string              `json:"status"`
	ReleaseDate         string              `json:"release_date"`
	Runtime             int                 `json:"runtime"`
	Budget              int64               `json:"budget"`
	Revenue             int64               `json:"revenue"`
	Homepage            string              `json:"homepage"`
	Adult               bool                `json:"adult"`
	Video               bool                `json:"video"`
	Popularity          float64             `json:"popularity"`
	VoteAverage         float64             `json:"vote_average"`
	VoteCount           int                 `json:"vote_count"`
	PosterPath          string              `json:"poster_path"`
	BackdropPath        string              `json:"backdrop_path"`
	BelongsToCollection *CollectionBasic    `json:"belongs_to_collection"`
	Genres              []Genre             `json:"genres"`
	ProductionCompanies []ProductionCompany `json:"production_companies"`
	ProductionCountries []ProductionCountry `json:"production_countries"`
	SpokenLanguages     []SpokenLanguage    `json:"spoken_languages"`
	OriginCountry       []string            `json:"origin_country"`

	Credits           *Credits                 `json:"credits,omitempty"`
	Releases          *Releases                `json:"releases,omitempty"`
	AlternativeTitles *AlternativeTitles       `json:"alternative_titles,omitempty"`
	Images            *Images                  `json:"images,omitempty"`
	Keywords          *Keywords                `json:"keywords,omitempty"`
	Videos            *Videos                  `json:"videos,omitempty"`
	Translations      *Translations            `json:"translations,omitempty"`
	Similar           *ResultsList[MovieBasic] `json:"similar,omitempty"`
	ExternalIDs       *ExternalIDs             `json:"external_ids,omitempty"`

	Unknown Unknown `json:"-"`
}

func (m *Movie) UnmarshalJSON(data []byte) error {
	type plain Movie
	return decodeLenient(data, (*plain)(m), &m.Unknown)
}

// Year extracts the year from ReleaseDate.
func (m *Movie) Year() int {
	return yearOf(m.ReleaseDate)
}

// MovieBasic is a movie as it appears in lists and search results.
type MovieBasic struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	OriginalLanguage string  `json:"original_language"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	Adult            bool    `json:"adult"`
	Video            bool    `json:"video"`
	GenreIDs         []int   `json:"genre_ids"`
	Popularity       float64 `json:"popularity"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	Unknown          Unknown `json:"-"`
}

func (m *MovieBasic) UnmarshalJSON(data []byte) error {
	type plain MovieBasic
	return decodeLenient(data, (*plain)(m), &m.Unknown)
}

// Year extracts the year from ReleaseDate.
func (m *MovieBasic) Year() int {
	return yearOf(m.ReleaseDate)
}

// CollectionBasic is the collection a movie belongs to.
type CollectionBasic struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Unknown      Unknown `json:"-"`
}

func (c *CollectionBasic) UnmarshalJSON(data []byte) error {
	type plain CollectionBasic
	return decodeLenient(data, (*plain)(c), &c.Unknown)
}

// Collection is the collection details response.
type Collection struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Overview     string       `json:"overview"`
	PosterPath   string       `json:"poster_path"`
	BackdropPath string       `json:"backdrop_path"`
	Parts        []MovieBasic `json:"parts"`
	Unknown      Unknown      `json:"-"`
}

func (c *Collection) UnmarshalJSON(data []byte) error {
	type plain Collection
	return decodeLenient(data, (*plain)(c), &c.Unknown)
}

// ReleaseInfo is the certification and release date of a movie in one country.
type ReleaseInfo struct {
	Country       string  `json:"iso_3166_1"`
	Certification string  `json:"certification"`
	ReleaseDate   string  `json:"release_date"`
	Primary       bool    `json:"primary"`
	Unknown       Unknown `json:"-"`
}

func (r *ReleaseInfo) UnmarshalJSON(data []byte) error {
	type plain ReleaseInfo
	return decodeLenient(data, (*plain)(r), &r.Unknown)
}

func (r ReleaseInfo) String() string {
	return fmt.Sprintf("[ReleaseInfo=[country=%s],[certification=%s],[releaseDate=%s]]",
		r.Country, r.Certification, r.ReleaseDate)
}

// Releases is the releases response: one ReleaseInfo per country.
type Releases struct {
	ID        int           `json:"id"`
	Countries []ReleaseInfo `json:"countries"`
	Unknown   Unknown       `json:"-"`
}

func (r *Releases) UnmarshalJSON(data []byte) error {
	type plain Releases
	return decodeLenient(data, (*plain)(r), &r.Unknown)
}

// Country returns the release info for an ISO 3166-1 code.
func (r *Releases) Country(code string) (ReleaseInfo, bool) {
	for _, info := range r.Countries {
		if strings.EqualFold(info.Country, code) {
			return info, true
		}
	}
	return ReleaseInfo{}, false
}

// MovieList is a user list that contains a movie.
type MovieList struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	FavoriteCount int     `json:"favorite_count"`
	ItemCount     int     `json:"item_count"`
	ISO639_1      string  `json:"iso_639_1"`
	ListType      string  `json:"list_type"`
	PosterPath    string  `json:"poster_path"`
	Unknown       Unknown `json:"-"`
}

func (m *MovieList) UnmarshalJSON(data []byte) error {
	type plain MovieList
	return decodeLenient(data, (*plain)(m), &m.Unknown)
}

// GetMovie fetches movie details by TMDB ID.
func (c *Client) GetMovie(ctx context.Context, id int, params ...Param) (*Movie, error) {
	if err := checkID("movie", id); err != nil {
		return nil, err
	}
	var movie Movie
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), &movie, params...); err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetMovieReleaseInfo fetches per-country certifications and release dates.
func (c *Client) GetMovieReleaseInfo(ctx context.Context, id int, params ...Param) ([]ReleaseInfo, error) {
	if err := checkID("movie", id); err != nil {
		return nil, err
	}
	var releases Releases
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/releases", id), &releases, params...); err != nil {
		return nil, err
	}
	return releases.Countries, nil
}

// GetMovieAlternativeTitles fetches titles used in other countries.
func (c *Client) GetMovieAlternativeTitles(ctx context.Context, id int, params ...Param) (*AlternativeTitles, error) {
	if err := checkID("movie", id); err != nil {
		return nil, err
	}
	var titles AlternativeTitles
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/alternative_titles", id), &titles, params...); err != nil {
		return nil, err
	}
	return &titles, nil
}

// GetMovieCredits fetches cast and crew.
func (c *Client) GetMovieCredits(ctx context.Context, id int, params ...Param) (*Credits, error) {
	if err := checkID("movie", id); err != nil {
		return nil, err
	}
	var credits Credits
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/credits", id), &credits, params...); err != nil {
		return nil, err
	}
	return &credits, nil
}

// GetMovieImages fetches backdrops, posters and logos.
func (c *Client) GetMovieImages(ctx context.Context, id int, params ...Param) (*Images, error) {
	if err := checkID("movie", id); err != nil {
		return nil, err
	}
	var images Images
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/images", id), &images, params...); err != nil {
		return nil, err
	}
	return &images, nil
}

// GetMovieKeywords fetches keywords.
func (c *Client) GetMovieKeywords(ctx context.Context, id int, params ...Param) ([]Keyword, error) {
	if err := checkID("movie", id); err != nil {
		return nil, err
	}
	var keywords Keywords
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/keywords", id), &keywords, params...); err != nil {
		return nil, err
	}
	return keywords.All(), nil
}

// GetMovieVideos fetches trailers, teasers and clips.
func (c *Client) GetMovieVideos(ctx context.Context, id int, params ...Param) ([]Video, error) {
	if err := checkID("movie", id); err != nil {
		return nil, err
	}
	var videos Videos
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/videos", id), &videos, params...); err != nil {
		return nil, err
	}
	return videos.Results, nil
}

// GetMovieTranslations fetches the translations available for a movie.
func (c *Client) GetMovieTranslations(ctx context.Context, id int, params ...Param) ([]Translation, error) {
	if err := checkID("movie", id); err != nil {
		return nil, err
	}
	var translations Translations
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/translations", id), &translations, params...); err != nil {
		return nil, err
	}
	return translations.Translations, nil
}

// GetMovieSimilar fetches a page of similar movies.
func (c *Client) GetMovieSimilar(ctx context.Context, id int, params ...Param) (*ResultsList[MovieBasic], error) {
	if err := checkID("movie", id); err != nil {
		return nil, err
	}
	return getList[MovieBasic](ctx, c, fmt.Sprintf("/movie/%d/similar", id), params)
}

// GetMovieLists fetches a page of user lists that contain the movie.
func (c *Client) GetMovieLists(ctx context.Context, id int, params ...Param) (*ResultsList[MovieList], error) {
	if err := checkID("movie", id); err != nil {
		return nil, err
	}
	return getList[MovieList](ctx, c, fmt.Sprintf("/movie/%d/lists", id), params)
}

// GetMovieExternalIDs fetches IMDb, Wikidata and social ids.
func (c *Client) GetMovieExternalIDs(ctx context.Context, id int, params ...Param) (*ExternalIDs, error) {
	if err := checkID("movie", id); err != nil {
		return nil, err
	}
	var ids ExternalIDs
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/external_ids", id), &ids, params...); err != nil {
		return nil, err
	}
	return &ids, nil
}

// GetLatestMovie fetches the most recently added movie.
func (c *Client) GetLatestMovie(ctx context.Context, params ...Param) (*Movie, error) {
	var movie Movie
	if err := c.get(ctx, "/movie/latest", &movie, params...); err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetNowPlayingMovies fetches a page of movies in theatres.
func (c *Client) GetNowPlayingMovies(ctx context.Context, params ...Param) (*ResultsList[MovieBasic], error) {
	return getList[MovieBasic](ctx, c, "/movie/now_playing", params)
}

// GetPopularMovies fetches a page of popular movies.
func (c *Client) GetPopularMovies(ctx context.Context, params ...Param) (*ResultsList[MovieBasic], error) {
	return getList[MovieBasic](ctx, c, "/movie/popular", params)
}

// GetTopRatedMovies fetches a page of top rated movies.
func (c *Client) GetTopRatedMovies(ctx context.Context, params ...Param) (*ResultsList[MovieBasic], error) {
	return getList[MovieBasic](ctx, c, "/movie/top_rated", params)
}

// GetUpcomingMovies fetches a page of upcoming releases.
func (c *Client) GetUpcomingMovies(ctx context.Context, params ...Param) (*ResultsList[MovieBasic], error) {
	return getList[MovieBasic](ctx, c, "/movie/upcoming", params)
}

// GetCollection fetches a collection and its parts.
func (c *Client) GetCollection(ctx context.Context, id int, params ...Param) (*Collection, error) {
	if err := checkID("collection", id); err != nil {
		return nil, err
	}
	var collection Collection
	if err := c.get(ctx, fmt.Sprintf("/collection/%d", id), &collection, params...); err != nil {
		return nil, err
	}
	return &collection, nil
}
