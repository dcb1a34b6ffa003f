package tmdb

import "strconv"

// Genre is a movie or TV genre.
type Genre struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Unknown Unknown `json:"-"`
}

func (g *Genre) UnmarshalJSON(data []byte) error {
	type plain Genre
	return decodeLenient(data, (*plain)(g), &g.Unknown)
}

// ProductionCompany is a studio credited on a movie or series.
type ProductionCompany struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	LogoPath      string  `json:"logo_path"`
	OriginCountry string  `json:"origin_country"`
	Unknown       Unknown `json:"-"`
}

func (p *ProductionCompany) UnmarshalJSON(data []byte) error {
	type plain ProductionCompany
	return decodeLenient(data, (*plain)(p), &p.Unknown)
}

// ProductionCountry is a country a title was produced in.
type ProductionCountry struct {
	ISO3166_1 string  `json:"iso_3166_1"`
	Name      string  `json:"name"`
	Unknown   Unknown `json:"-"`
}

func (p *ProductionCountry) UnmarshalJSON(data []byte) error {
	type plain ProductionCountry
	return decodeLenient(data, (*plain)(p), &p.Unknown)
}

// SpokenLanguage is a language spoken in a title.
type SpokenLanguage struct {
	ISO639_1    string  `json:"iso_639_1"`
	Name        string  `json:"name"`
	EnglishName string  `json:"english_name"`
	Unknown     Unknown `json:"-"`
}

func (s *SpokenLanguage) UnmarshalJSON(data []byte) error {
	type plain SpokenLanguage
	return decodeLenient(data, (*plain)(s), &s.Unknown)
}

// Network is a broadcaster or streaming service that airs a series.
type Network struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	LogoPath      string  `json:"logo_path"`
	OriginCountry string  `json:"origin_country"`
	Unknown       Unknown `json:"-"`
}

func (n *Network) UnmarshalJSON(data []byte) error {
	type plain Network
	return decodeLenient(data, (*plain)(n), &n.Unknown)
}

// Keyword is a tag attached to a title.
type Keyword struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Unknown Unknown `json:"-"`
}

func (k *Keyword) UnmarshalJSON(data []byte) error {
	type plain Keyword
	return decodeLenient(data, (*plain)(k), &k.Unknown)
}

// Keywords is the keywords response. Movies use "keywords", series use "results".
type Keywords struct {
	ID       int       `json:"id"`
	Keywords []Keyword `json:"keywords"`
	Results  []Keyword `json:"results"`
	Unknown  Unknown   `json:"-"`
}

func (k *Keywords) UnmarshalJSON(data []byte) error {
	type plain Keywords
	return decodeLenient(data, (*plain)(k), &k.Unknown)
}

// All returns the keywords regardless of which member carried them.
func (k *Keywords) All() []Keyword {
	if len(k.Keywords) > 0 {
		return k.Keywords
	}
	return k.Results
}

// Video is a trailer, teaser or clip hosted on an external site.
type Video struct {
	ID          string  `json:"id"`
	ISO639_1    string  `json:"iso_639_1"`
	ISO3166_1   string  `json:"iso_3166_1"`
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Site        string  `json:"site"`
	Size        int     `json:"size"`
	Type        string  `json:"type"`
	Official    bool    `json:"official"`
	PublishedAt string  `json:"published_at"`
	Unknown     Unknown `json:"-"`
}

func (v *Video) UnmarshalJSON(data []byte) error {
	type plain Video
	return decodeLenient(data, (*plain)(v), &v.Unknown)
}

// Videos is the videos response.
type Videos struct {
	ID      int     `json:"id"`
	Results []Video `json:"results"`
	Unknown Unknown `json:"-"`
}

func (v *Videos) UnmarshalJSON(data []byte) error {
	type plain Videos
	return decodeLenient(data, (*plain)(v), &v.Unknown)
}

// ArtworkType tells which images member an Artwork came from.
type ArtworkType string

const (
	ArtworkBackdrop ArtworkType = "backdrop"
	ArtworkPoster   ArtworkType = "poster"
	ArtworkLogo     ArtworkType = "logo"
	ArtworkStill    ArtworkType = "still"
	ArtworkProfile  ArtworkType = "profile"
)

// Artwork is one image of a title, season, episode or person.
type Artwork struct {
	AspectRatio float64     `json:"aspect_ratio"`
	FilePath    string      `json:"file_path"`
	Height      int         `json:"height"`
	Width       int         `json:"width"`
	ISO639_1    string      `json:"iso_639_1"`
	VoteAverage float64     `json:"vote_average"`
	VoteCount   int         `json:"vote_count"`
	Type        ArtworkType `json:"-"`
	Unknown     Unknown     `json:"-"`
}

func (a *Artwork) UnmarshalJSON(data []byte) error {
	type plain Artwork
	return decodeLenient(data, (*plain)(a), &a.Unknown)
}

// Images is the images response. Which members are filled depends on the resource:
// movies and series have backdrops, posters and logos; seasons posters;
// episodes stills; people profiles.
type Images struct {
	ID        int       `json:"id"`
	Backdrops []Artwork `json:"backdrops"`
	Posters   []Artwork `json:"posters"`
	Logos     []Artwork `json:"logos"`
	Stills    []Artwork `json:"stills"`
	Profiles  []Artwork `json:"profiles"`
	Unknown   Unknown   `json:"-"`
}

func (i *Images) UnmarshalJSON(data []byte) error {
	type plain Images
	return decodeLenient(data, (*plain)(i), &i.Unknown)
}

// All returns every image with Type set to the member it came from.
func (i *Images) All() []Artwork {
	all := make([]Artwork, 0, len(i.Backdrops)+len(i.Posters)+len(i.Logos)+len(i.Stills)+len(i.Profiles))
	add := func(list []Artwork, t ArtworkType) {
		for _, a := range list {
			a.Type = t
			all = append(all, a)
		}
	}
	add(i.Backdrops, ArtworkBackdrop)
	add(i.Posters, ArtworkPoster)
	add(i.Logos, ArtworkLogo)
	add(i.Stills, ArtworkStill)
	add(i.Profiles, ArtworkProfile)
	return all
}

// ExternalIDs maps a TMDB resource onto other databases.
// Numeric ids come back as numbers for some resources and null for others.
type ExternalIDs struct {
	ID          int     `json:"id"`
	IMDbID      string  `json:"imdb_id"`
	TVDBID      int     `json:"tvdb_id"`
	TVRageID    int     `json:"tvrage_id"`
	FreebaseID  string  `json:"freebase_id"`
	FreebaseMID string  `json:"freebase_mid"`
	WikidataID  string  `json:"wikidata_id"`
	FacebookID  string  `json:"facebook_id"`
	InstagramID string  `json:"instagram_id"`
	TwitterID   string  `json:"twitter_id"`
	TikTokID    string  `json:"tiktok_id"`
	YouTubeID   string  `json:"youtube_id"`
	Unknown     Unknown `json:"-"`
}

func (e *ExternalIDs) UnmarshalJSON(data []byte) error {
	type plain ExternalIDs
	return decodeLenient(data, (*plain)(e), &e.Unknown)
}

// IDs returns every non-empty id keyed by its JSON name, numbers in decimal.
func (e *ExternalIDs) IDs() map[string]string {
	ids := make(map[string]string)
	setInt := func(k string, v int) {
		if v != 0 {
			ids[k] = strconv.Itoa(v)
		}
	}
	setStr := func(k, v string) {
		if v != "" {
			ids[k] = v
		}
	}
	setInt("id", e.ID)
	setStr("imdb_id", e.IMDbID)
	setInt("tvdb_id", e.TVDBID)
	setInt("tvrage_id", e.TVRageID)
	setStr("freebase_id", e.FreebaseID)
	setStr("freebase_mid", e.FreebaseMID)
	setStr("wikidata_id", e.WikidataID)
	setStr("facebook_id", e.FacebookID)
	setStr("instagram_id", e.InstagramID)
	setStr("twitter_id", e.TwitterID)
	setStr("tiktok_id", e.TikTokID)
	setStr("youtube_id", e.YouTubeID)
	return ids
}

// Has reports whether the id named key is set.
func (e *ExternalIDs) Has(key string) bool {
	_, ok := e.IDs()[key]
	return ok
}

// Get returns the id named key, or "" when unset.
func (e *ExternalIDs) Get(key string) string {
	return e.IDs()[key]
}

// TranslationData is the translated text of a title.
type TranslationData struct {
	Title    string  `json:"title"`
	Name     string  `json:"name"`
	Overview string  `json:"overview"`
	Homepage string  `json:"homepage"`
	Tagline  string  `json:"tagline"`
	Runtime  int     `json:"runtime"`
	Unknown  Unknown `json:"-"`
}

func (t *TranslationData) UnmarshalJSON(data []byte) error {
	type plain TranslationData
	return decodeLenient(data, (*plain)(t), &t.Unknown)
}

// Translation is one available translation of a title.
type Translation struct {
	ISO3166_1   string          `json:"iso_3166_1"`
	ISO639_1    string          `json:"iso_639_1"`
	Name        string          `json:"name"`
	EnglishName string          `json:"english_name"`
	Data        TranslationData `json:"data"`
	Unknown     Unknown         `json:"-"`
}

func (t *Translation) UnmarshalJSON(data []byte) error {
	type plain Translation
	return decodeLenient(data, (*plain)(t), &t.Unknown)
}

// Translations is the translations response.
type Translations struct {
	ID           int           `json:"id"`
	Translations []Translation `json:"translations"`
	Unknown      Unknown       `json:"-"`
}

func (t *Translations) UnmarshalJSON(data []byte) error {
	type plain Translations
	return decodeLenient(data, (*plain)(t), &t.Unknown)
}

// AlternativeTitle is a title used in a specific country.
type AlternativeTitle struct {
	ISO3166_1 string  `json:"iso_3166_1"`
	Title     string  `json:"title"`
	Type      string  `json:"type"`
	Unknown   Unknown `json:"-"`
}

func (a *AlternativeTitle) UnmarshalJSON(data []byte) error {
	type plain AlternativeTitle
	return decodeLenient(data, (*plain)(a), &a.Unknown)
}

// AlternativeTitles is the alternative titles response.
type AlternativeTitles struct {
	ID      int                `json:"id"`
	Titles  []AlternativeTitle `json:"titles"`
	Unknown Unknown            `json:"-"`
}

func (a *AlternativeTitles) UnmarshalJSON(data []byte) error {
	type plain AlternativeTitles
	return decodeLenient(data, (*plain)(a), &a.Unknown)
}

// CastMember is an acting credit. Movies fill CastID and Character; series
// credits fill Character and Order; guest stars come in the same shape.
type CastMember struct {
	ID                 int     `json:"id"`
	CreditID           string  `json:"credit_id"`
	CastID             int     `json:"cast_id"`
	Name               string  `json:"name"`
	OriginalName       string  `json:"original_name"`
	Character          string  `json:"character"`
	Order              int     `json:"order"`
	Gender             int     `json:"gender"`
	Adult              bool    `json:"adult"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
	ProfilePath        string  `json:"profile_path"`
	Unknown            Unknown `json:"-"`
}

func (c *CastMember) UnmarshalJSON(data []byte) error {
	type plain CastMember
	return decodeLenient(data, (*plain)(c), &c.Unknown)
}

// CrewMember is a non-acting credit.
type CrewMember struct {
	ID                 int     `json:"id"`
	CreditID           string  `json:"credit_id"`
	Name               string  `json:"name"`
	OriginalName       string  `json:"original_name"`
	Department         string  `json:"department"`
	Job                string  `json:"job"`
	Gender             int     `json:"gender"`
	Adult              bool    `json:"adult"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
	ProfilePath        string  `json:"profile_path"`
	Unknown            Unknown `json:"-"`
}

func (c *CrewMember) UnmarshalJSON(data []byte) error {
	type plain CrewMember
	return decodeLenient(data, (*plain)(c), &c.Unknown)
}

// Credits is the cast and crew of a movie.
type Credits struct {
	ID      int          `json:"id"`
	Cast    []CastMember `json:"cast"`
	Crew    []CrewMember `json:"crew"`
	Unknown Unknown      `json:"-"`
}

func (c *Credits) UnmarshalJSON(data []byte) error {
	type plain Credits
	return decodeLenient(data, (*plain)(c), &c.Unknown)
}

// TVCredits is the cast and crew of a series, season or episode.
// GuestStars is only filled for episodes.
type TVCredits struct {
	ID         int          `json:"id"`
	Cast       []CastMember `json:"cast"`
	Crew       []CrewMember `json:"crew"`
	GuestStars []CastMember `json:"guest_stars"`
	Unknown    Unknown      `json:"-"`
}

func (c *TVCredits) UnmarshalJSON(data []byte) error {
	type plain TVCredits
	return decodeLenient(data, (*plain)(c), &c.Unknown)
}

// ResultsList is a page of a list endpoint.
type ResultsList[T any] struct {
	Page         int     `json:"page"`
	Results      []T     `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
	Unknown      Unknown `json:"-"`
}

type resultsListFields[T any] ResultsList[T]

func (r *ResultsList[T]) UnmarshalJSON(data []byte) error {
	return decodeLenient(data, (*resultsListFields[T])(r), &r.Unknown)
}

// HasMore reports whether pages after this one exist.
func (r *ResultsList[T]) HasMore() bool {
	return r.Page < r.TotalPages
}
