package tmdb

import (
	"context"
	"fmt"
)

// Person is the person details response. The pointer members are only
// filled when requested with Append.
type Person struct {
	ID                 int      `json:"id"`
	IMDbID             string   `json:"imdb_id"`
	Name               string   `json:"name"`
	AlsoKnownAs        []string `json:"also_known_as"`
	Biography          string   `json:"biography"`
	Birthday           string   `json:"birthday"`
	Deathday           string   `json:"deathday"`
	PlaceOfBirth       string   `json:"place_of_birth"`
	Gender             int      `json:"gender"`
	Adult              bool     `json:"adult"`
	Homepage           string   `json:"homepage"`
	KnownForDepartment string   `json:"known_for_department"`
	Popularity         float64  `json:"popularity"`
	ProfilePath        string   `json:"profile_path"`

	MovieCredits *PersonMovieCredits `json:"movie_credits,omitempty"`
	TVCredits    *PersonTVCredits    `json:"tv_credits,omitempty"`
	ExternalIDs  *ExternalIDs        `json:"external_ids,omitempty"`
	Images       *Images             `json:"images,omitempty"`

	Unknown Unknown `json:"-"`
}

func (p *Person) UnmarshalJSON(data []byte) error {
	type plain Person
	return decodeLenient(data, (*plain)(p), &p.Unknown)
}

// KnownFor is a title listed under a person in search and popular results.
// MediaType is "movie" or "tv"; Title is set for movies, Name for series.
type KnownFor struct {
	ID           int     `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	GenreIDs     []int   `json:"genre_ids"`
	VoteAverage  float64 `json:"vote_average"`
	PosterPath   string  `json:"poster_path"`
	Unknown      Unknown `json:"-"`
}

func (k *KnownFor) UnmarshalJSON(data []byte) error {
	type plain KnownFor
	return decodeLenient(data, (*plain)(k), &k.Unknown)
}

// PersonBasic is a person as it appears in lists and search results.
type PersonBasic struct {
	ID                 int        `json:"id"`
	Name               string     `json:"name"`
	OriginalName       string     `json:"original_name"`
	Gender             int        `json:"gender"`
	Adult              bool       `json:"adult"`
	KnownForDepartment string     `json:"known_for_department"`
	Popularity         float64    `json:"popularity"`
	ProfilePath        string     `json:"profile_path"`
	KnownFor           []KnownFor `json:"known_for"`
	Unknown            Unknown    `json:"-"`
}

func (p *PersonBasic) UnmarshalJSON(data []byte) error {
	type plain PersonBasic
	return decodeLenient(data, (*plain)(p), &p.Unknown)
}

// PersonMovieCredit is one movie in a person's filmography. Character is set
// for cast entries, Department and Job for crew entries.
type PersonMovieCredit struct {
	ID            int     `json:"id"`
	CreditID      string  `json:"credit_id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Character     string  `json:"character"`
	Department    string  `json:"department"`
	Job           string  `json:"job"`
	ReleaseDate   string  `json:"release_date"`
	Adult         bool    `json:"adult"`
	Order         int     `json:"order"`
	Popularity    float64 `json:"popularity"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	PosterPath    string  `json:"poster_path"`
	BackdropPath  string  `json:"backdrop_path"`
	Unknown       Unknown `json:"-"`
}

func (p *PersonMovieCredit) UnmarshalJSON(data []byte) error {
	type plain PersonMovieCredit
	return decodeLenient(data, (*plain)(p), &p.Unknown)
}

// PersonTVCredit is one series in a person's TV credits. Episodes and Seasons
// are only filled by endpoints that break a credit down further.
type PersonTVCredit struct {
	ID           int              `json:"id"`
	CreditID     string           `json:"credit_id"`
	Name         string           `json:"name"`
	OriginalName string           `json:"original_name"`
	Character    string           `json:"character"`
	Department   string           `json:"department"`
	Job          string           `json:"job"`
	FirstAirDate string           `json:"first_air_date"`
	EpisodeCount int              `json:"episode_count"`
	Popularity   float64          `json:"popularity"`
	VoteAverage  float64          `json:"vote_average"`
	PosterPath   string           `json:"poster_path"`
	Episodes     []TVEpisodeBasic `json:"episodes"`
	Seasons      []TVSeasonBasic  `json:"seasons"`
	Unknown      Unknown          `json:"-"`
}

func (p *PersonTVCredit) UnmarshalJSON(data []byte) error {
	type plain PersonTVCredit
	return decodeLenient(data, (*plain)(p), &p.Unknown)
}

// PersonMovieCredits is the movie credits response.
type PersonMovieCredits struct {
	ID      int                 `json:"id"`
	Cast    []PersonMovieCredit `json:"cast"`
	Crew    []PersonMovieCredit `json:"crew"`
	Unknown Unknown             `json:"-"`
}

func (p *PersonMovieCredits) UnmarshalJSON(data []byte) error {
	type plain PersonMovieCredits
	return decodeLenient(data, (*plain)(p), &p.Unknown)
}

// PersonTVCredits is the TV credits response.
type PersonTVCredits struct {
	ID      int              `json:"id"`
	Cast    []PersonTVCredit `json:"cast"`
	Crew    []PersonTVCredit `json:"crew"`
	Unknown Unknown          `json:"-"`
}

func (p *PersonTVCredits) UnmarshalJSON(data []byte) error {
	type plain PersonTVCredits
	return decodeLenient(data, (*plain)(p), &p.Unknown)
}

// GetPerson fetches person details by TMDB ID.
func (c *Client) GetPerson(ctx context.Context, id int, params ...Param) (*Person, error) {
	if err := checkID("person", id); err != nil {
		return nil, err
	}
	var person Person
	if err := c.get(ctx, fmt.Sprintf("/person/%d", id), &person, params...); err != nil {
		return nil, err
	}
	return &person, nil
}

// GetPersonMovieCredits fetches a person's movie cast and crew credits.
func (c *Client) GetPersonMovieCredits(ctx context.Context, id int, params ...Param) (*PersonMovieCredits, error) {
	if err := checkID("person", id); err != nil {
		return nil, err
	}
	var credits PersonMovieCredits
	if err := c.get(ctx, fmt.Sprintf("/person/%d/movie_credits", id), &credits, params...); err != nil {
		return nil, err
	}
	return &credits, nil
}

// GetPersonTVCredits fetches a person's TV cast and crew credits.
func (c *Client) GetPersonTVCredits(ctx context.Context, id int, params ...Param) (*PersonTVCredits, error) {
	if err := checkID("person", id); err != nil {
		return nil, err
	}
	var credits PersonTVCredits
	if err := c.get(ctx, fmt.Sprintf("/person/%d/tv_credits", id), &credits, params...); err != nil {
		return nil, err
	}
	return &credits, nil
}

// GetPersonExternalIDs fetches the external ids of a person.
func (c *Client) GetPersonExternalIDs(ctx context.Context, id int, params ...Param) (*ExternalIDs, error) {
	if err := checkID("person", id); err != nil {
		return nil, err
	}
	var ids ExternalIDs
	if err := c.get(ctx, fmt.Sprintf("/person/%d/external_ids", id), &ids, params...); err != nil {
		return nil, err
	}
	return &ids, nil
}

// GetPersonImages fetches profile images of a person.
func (c *Client) GetPersonImages(ctx context.Context, id int, params ...Param) (*Images, error) {
	if err := checkID("person", id); err != nil {
		return nil, err
	}
	var images Images
	if err := c.get(ctx, fmt.Sprintf("/person/%d/images", id), &images, params...); err != nil {
		return nil, err
	}
	return &images, nil
}

// GetPopularPeople fetches a page of popular people.
func (c *Client) GetPopularPeople(ctx context.Context, params ...Param) (*ResultsList[PersonBasic], error) {
	return getList[PersonBasic](ctx, c, "/person/popular", params)
}
