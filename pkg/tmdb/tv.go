package tmdb

import (
	"context"
	"fmt"
)

// TVSeries is the series details response. The pointer members are only
// filled when requested with Append.
type TVSeries struct {
	ID                  int                 `json:"id"`
	Name                string              `json:"name"`
	OriginalName        string              `json:"original_name"`
	OriginalLanguage    string              `json:"original_language"`
	Overview            string              `json:"overview"`
	Tagline             string              `json:"tagline"`
	Status              string              `json:"status"`
	Type                string              `json:"type"`
	FirstAirDate        string              `json:"first_air_date"`
	LastAirDate         string              `json:"last_air_date"`
	InProduction        bool                `json:"in_production"`
	Homepage            string              `json:"homepage"`
	Adult               bool                `json:"adult"`
	NumberOfSeasons     int                 `json:"number_of_seasons"`
	NumberOfEpisodes    int                 `json:"number_of_episodes"`
	EpisodeRunTime      []int               `json:"episode_run_time"`
	Languages           []string            `json:"languages"`
	OriginCountry       []string            `json:"origin_country"`
	Popularity          float64             `json:"popularity"`
	VoteAverage         float64             `json:"vote_average"`
	VoteCount           int                 `json:"vote_count"`
	PosterPath          string              `json:"poster_path"`
	BackdropPath        string              `json:"backdrop_path"`
	CreatedBy           []CreatedBy         `json:"created_by"`
	Genres              []Genre             `json:"genres"`
	Networks            []Network           `json:"networks"`
	ProductionCompanies []ProductionCompany `json:"production_companies"`
	ProductionCountries []ProductionCountry `json:"production_countries"`
	SpokenLanguages     []SpokenLanguage    `json:"spoken_languages"`
	Seasons             []TVSeasonBasic     `json:"seasons"`
	LastEpisodeToAir    *TVEpisodeBasic     `json:"last_episode_to_air"`
	NextEpisodeToAir    *TVEpisodeBasic     `json:"next_episode_to_air"`

	Credits     *TVCredits   `json:"credits,omitempty"`
	ExternalIDs *ExternalIDs `json:"external_ids,omitempty"`
	Images      *Images      `json:"images,omitempty"`
	Keywords    *Keywords    `json:"keywords,omitempty"`
	Videos      *Videos      `json:"videos,omitempty"`

	Unknown Unknown `json:"-"`
}

func (t *TVSeries) UnmarshalJSON(data []byte) error {
	type plain TVSeries
	return decodeLenient(data, (*plain)(t), &t.Unknown)
}

// Year extracts the year from FirstAirDate.
func (t *TVSeries) Year() int {
	return yearOf(t.FirstAirDate)
}

// TVBasic is a series as it appears in lists and search results.
type TVBasic struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	OriginalName     string   `json:"original_name"`
	OriginalLanguage string   `json:"original_language"`
	Overview         string   `json:"overview"`
	FirstAirDate     string   `json:"first_air_date"`
	Adult            bool     `json:"adult"`
	GenreIDs         []int    `json:"genre_ids"`
	OriginCountry    []string `json:"origin_country"`
	Popularity       float64  `json:"popularity"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
	PosterPath       string   `json:"poster_path"`
	BackdropPath     string   `json:"backdrop_path"`
	Unknown          Unknown  `json:"-"`
}

func (t *TVBasic) UnmarshalJSON(data []byte) error {
	type plain TVBasic
	return decodeLenient(data, (*plain)(t), &t.Unknown)
}

// Year extracts the year from FirstAirDate.
func (t *TVBasic) Year() int {
	return yearOf(t.FirstAirDate)
}

// CreatedBy is a creator of a series.
type CreatedBy struct {
	ID           int     `json:"id"`
	CreditID     string  `json:"credit_id"`
	Name         string  `json:"name"`
	OriginalName string  `json:"original_name"`
	Gender       int     `json:"gender"`
	ProfilePath  string  `json:"profile_path"`
	Unknown      Unknown `json:"-"`
}

func (c *CreatedBy) UnmarshalJSON(data []byte) error {
	type plain CreatedBy
	return decodeLenient(data, (*plain)(c), &c.Unknown)
}

// TVSeasonBasic is a season summary inside a series or a person's TV credit.
type TVSeasonBasic struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	AirDate      string  `json:"air_date"`
	SeasonNumber int     `json:"season_number"`
	EpisodeCount int     `json:"episode_count"`
	VoteAverage  float64 `json:"vote_average"`
	PosterPath   string  `json:"poster_path"`
	Unknown      Unknown `json:"-"`
}

func (s *TVSeasonBasic) UnmarshalJSON(data []byte) error {
	type plain TVSeasonBasic
	return decodeLenient(data, (*plain)(s), &s.Unknown)
}

// TVSeason is the season details response.
type TVSeason struct {
	ID           int         `json:"id"`
	InternalID   string      `json:"_id"`
	Name         string      `json:"name"`
	Overview     string      `json:"overview"`
	AirDate      string      `json:"air_date"`
	SeasonNumber int         `json:"season_number"`
	VoteAverage  float64     `json:"vote_average"`
	PosterPath   string      `json:"poster_path"`
	Episodes     []TVEpisode `json:"episodes"`

	Credits     *TVCredits   `json:"credits,omitempty"`
	ExternalIDs *ExternalIDs `json:"external_ids,omitempty"`
	Images      *Images      `json:"images,omitempty"`
	Videos      *Videos      `json:"videos,omitempty"`

	Unknown Unknown `json:"-"`
}

func (s *TVSeason) UnmarshalJSON(data []byte) error {
	type plain TVSeason
	return decodeLenient(data, (*plain)(s), &s.Unknown)
}

// TVEpisodeBasic is an episode summary: last/next episode of a series, or an
// episode inside a person's TV credit.
type TVEpisodeBasic struct {
	ID             int     `json:"id"`
	ShowID         int     `json:"show_id"`
	Name           string  `json:"name"`
	Overview       string  `json:"overview"`
	AirDate        string  `json:"air_date"`
	SeasonNumber   int     `json:"season_number"`
	EpisodeNumber  int     `json:"episode_number"`
	EpisodeType    string  `json:"episode_type"`
	ProductionCode string  `json:"production_code"`
	Runtime        int     `json:"runtime"`
	VoteAverage    float64 `json:"vote_average"`
	VoteCount      int     `json:"vote_count"`
	StillPath      string  `json:"still_path"`
	Unknown        Unknown `json:"-"`
}

func (e *TVEpisodeBasic) UnmarshalJSON(data []byte) error {
	type plain TVEpisodeBasic
	return decodeLenient(data, (*plain)(e), &e.Unknown)
}

// TVEpisode is the episode details response, also used for the episodes
// listed inside a season.
type TVEpisode struct {
	ID             int          `json:"id"`
	ShowID         int          `json:"show_id"`
	Name           string       `json:"name"`
	Overview       string       `json:"overview"`
	AirDate        string       `json:"air_date"`
	SeasonNumber   int          `json:"season_number"`
	EpisodeNumber  int          `json:"episode_number"`
	EpisodeType    string       `json:"episode_type"`
	ProductionCode string       `json:"production_code"`
	Runtime        int          `json:"runtime"`
	VoteAverage    float64      `json:"vote_average"`
	VoteCount      int          `json:"vote_count"`
	StillPath      string       `json:"still_path"`
	Crew           []CrewMember `json:"crew"`
	GuestStars     []CastMember `json:"guest_stars"`

	Credits     *TVCredits   `json:"credits,omitempty"`
	ExternalIDs *ExternalIDs `json:"external_ids,omitempty"`
	Images      *Images      `json:"images,omitempty"`
	Videos      *Videos      `json:"videos,omitempty"`

	Unknown Unknown `json:"-"`
}

func (e *TVEpisode) UnmarshalJSON(data []byte) error {
	type plain TVEpisode
	return decodeLenient(data, (*plain)(e), &e.Unknown)
}

// GetTVSeries fetches series details by TMDB ID.
func (c *Client) GetTVSeries(ctx context.Context, id int, params ...Param) (*TVSeries, error) {
	if err := checkID("tv", id); err != nil {
		return nil, err
	}
	var series TVSeries
	if err := c.get(ctx, fmt.Sprintf("/tv/%d", id), &series, params...); err != nil {
		return nil, err
	}
	return &series, nil
}

// GetTVCredits fetches the cast and crew of the latest season.
func (c *Client) GetTVCredits(ctx context.Context, id int, params ...Param) (*TVCredits, error) {
	if err := checkID("tv", id); err != nil {
		return nil, err
	}
	var credits TVCredits
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/credits", id), &credits, params...); err != nil {
		return nil, err
	}
	return &credits, nil
}

// GetTVExternalIDs fetches IMDb, TVDB and social ids of a series.
func (c *Client) GetTVExternalIDs(ctx context.Context, id int, params ...Param) (*ExternalIDs, error) {
	if err := checkID("tv", id); err != nil {
		return nil, err
	}
	var ids ExternalIDs
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/external_ids", id), &ids, params...); err != nil {
		return nil, err
	}
	return &ids, nil
}

// GetTVImages fetches backdrops, posters and logos of a series.
func (c *Client) GetTVImages(ctx context.Context, id int, params ...Param) (*Images, error) {
	if err := checkID("tv", id); err != nil {
		return nil, err
	}
	var images Images
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/images", id), &images, params...); err != nil {
		return nil, err
	}
	return &images, nil
}

// GetTVKeywords fetches keywords of a series.
func (c *Client) GetTVKeywords(ctx context.Context, id int, params ...Param) ([]Keyword, error) {
	if err := checkID("tv", id); err != nil {
		return nil, err
	}
	var keywords Keywords
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/keywords", id), &keywords, params...); err != nil {
		return nil, err
	}
	return keywords.All(), nil
}

// GetTVVideos fetches trailers and clips of a series.
func (c *Client) GetTVVideos(ctx context.Context, id int, params ...Param) ([]Video, error) {
	if err := checkID("tv", id); err != nil {
		return nil, err
	}
	var videos Videos
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/videos", id), &videos, params...); err != nil {
		return nil, err
	}
	return videos.Results, nil
}

// GetTVSimilar fetches a page of similar series.
func (c *Client) GetTVSimilar(ctx context.Context, id int, params ...Param) (*ResultsList[TVBasic], error) {
	if err := checkID("tv", id); err != nil {
		return nil, err
	}
	return getList[TVBasic](ctx, c, fmt.Sprintf("/tv/%d/similar", id), params)
}

// GetPopularTV fetches a page of popular series.
func (c *Client) GetPopularTV(ctx context.Context, params ...Param) (*ResultsList[TVBasic], error) {
	return getList[TVBasic](ctx, c, "/tv/popular", params)
}

// GetTopRatedTV fetches a page of top rated series.
func (c *Client) GetTopRatedTV(ctx context.Context, params ...Param) (*ResultsList[TVBasic], error) {
	return getList[TVBasic](ctx, c, "/tv/top_rated", params)
}

// GetTVOnTheAir fetches a page of series with an episode airing in the next 7 days.
func (c *Client) GetTVOnTheAir(ctx context.Context, params ...Param) (*ResultsList[TVBasic], error) {
	return getList[TVBasic](ctx, c, "/tv/on_the_air", params)
}

// GetTVAiringToday fetches a page of series with an episode airing today.
func (c *Client) GetTVAiringToday(ctx context.Context, params ...Param) (*ResultsList[TVBasic], error) {
	return getList[TVBasic](ctx, c, "/tv/airing_today", params)
}

// GetTVSeason fetches season details including its episodes.
func (c *Client) GetTVSeason(ctx context.Context, id, season int, params ...Param) (*TVSeason, error) {
	if err := checkSeason(id, season); err != nil {
		return nil, err
	}
	var s TVSeason
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/season/%d", id, season), &s, params...); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetTVSeasonCredits fetches the cast and crew of a season.
func (c *Client) GetTVSeasonCredits(ctx context.Context, id, season int, params ...Param) (*TVCredits, error) {
	if err := checkSeason(id, season); err != nil {
		return nil, err
	}
	var credits TVCredits
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/season/%d/credits", id, season), &credits, params...); err != nil {
		return nil, err
	}
	return &credits, nil
}

// GetTVSeasonExternalIDs fetches the external ids of a season.
func (c *Client) GetTVSeasonExternalIDs(ctx context.Context, id, season int, params ...Param) (*ExternalIDs, error) {
	if err := checkSeason(id, season); err != nil {
		return nil, err
	}
	var ids ExternalIDs
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/season/%d/external_ids", id, season), &ids, params...); err != nil {
		return nil, err
	}
	return &ids, nil
}

// GetTVSeasonImages fetches the posters of a season.
func (c *Client) GetTVSeasonImages(ctx context.Context, id, season int, params ...Param) (*Images, error) {
	if err := checkSeason(id, season); err != nil {
		return nil, err
	}
	var images Images
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/season/%d/images", id, season), &images, params...); err != nil {
		return nil, err
	}
	return &images, nil
}

// GetTVEpisode fetches episode details.
func (c *Client) GetTVEpisode(ctx context.Context, id, season, episode int, params ...Param) (*TVEpisode, error) {
	if err := checkEpisode(id, season, episode); err != nil {
		return nil, err
	}
	var e TVEpisode
	if err := c.get(ctx, episodePath(id, season, episode, ""), &e, params...); err != nil {
		return nil, err
	}
	return &e, nil
}

// GetTVEpisodeCredits fetches the cast, crew and guest stars of an episode.
func (c *Client) GetTVEpisodeCredits(ctx context.Context, id, season, episode int, params ...Param) (*TVCredits, error) {
	if err := checkEpisode(id, season, episode); err != nil {
		return nil, err
	}
	var credits TVCredits
	if err := c.get(ctx, episodePath(id, season, episode, "/credits"), &credits, params...); err != nil {
		return nil, err
	}
	return &credits, nil
}

// GetTVEpisodeExternalIDs fetches the external ids of an episode.
func (c *Client) GetTVEpisodeExternalIDs(ctx context.Context, id, season, episode int, params ...Param) (*ExternalIDs, error) {
	if err := checkEpisode(id, season, episode); err != nil {
		return nil, err
	}
	var ids ExternalIDs
	if err := c.get(ctx, episodePath(id, season, episode, "/external_ids"), &ids, params...); err != nil {
		return nil, err
	}
	return &ids, nil
}

// GetTVEpisodeImages fetches the stills of an episode.
func (c *Client) GetTVEpisodeImages(ctx context.Context, id, season, episode int, params ...Param) (*Images, error) {
	if err := checkEpisode(id, season, episode); err != nil {
		return nil, err
	}
	var images Images
	if err := c.get(ctx, episodePath(id, season, episode, "/images"), &images, params...); err != nil {
		return nil, err
	}
	return &images, nil
}

func episodePath(id, season, episode int, suffix string) string {
	return fmt.Sprintf("/tv/%d/season/%d/episode/%d%s", id, season, episode, suffix)
}

// Season 0 holds specials, so only negative numbers are rejected.
func checkSeason(id, season int) error {
	if err := checkID("tv", id); err != nil {
		return err
	}
	if season < 0 {
		return fmt.Errorf("season number %d: %w", season, ErrInvalidArgument)
	}
	return nil
}

func checkEpisode(id, season, episode int) error {
	if err := checkSeason(id, season); err != nil {
		return err
	}
	if episode < 0 {
		return fmt.Errorf("episode number %d: %w", episode, ErrInvalidArgument)
	}
	return nil
}
