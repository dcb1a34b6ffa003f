package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/vmunix/moviedb/pkg/tmdb"
)

// FromMovie builds an entry holding m.
func FromMovie(m *tmdb.Movie, language string) (*Entry, error) {
	return newEntry(KindMovie, m.ID, m.Title, m.Year(), language, m)
}

// FromSeries builds an entry holding s.
func FromSeries(s *tmdb.TVSeries, language string) (*Entry, error) {
	return newEntry(KindTV, s.ID, s.Name, s.Year(), language, s)
}

// FromPerson builds an entry holding p. People have no year.
func FromPerson(p *tmdb.Person, language string) (*Entry, error) {
	return newEntry(KindPerson, p.ID, p.Name, 0, language, p)
}

func newEntry(kind Kind, id int, title string, year int, language string, v any) (*Entry, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s %d: %w", kind, id, err)
	}
	return &Entry{
		Kind:     kind,
		TMDBID:   id,
		Title:    title,
		Year:     year,
		Language: language,
		Payload:  payload,
	}, nil
}
