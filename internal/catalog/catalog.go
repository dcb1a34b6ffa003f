// Package catalog is a SQLite store of titles the user chose to keep.
// It is written and read by the CLI only; the TMDB client never consults it.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vmunix/moviedb/internal/migrations"
	_ "modernc.org/sqlite"
)

var (
	// ErrNotFound indicates the requested entry doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidEntry indicates an entry that cannot be stored.
	ErrInvalidEntry = errors.New("invalid entry")
)

// Kind is the TMDB resource type of an entry.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindTV     Kind = "tv"
	KindPerson Kind = "person"
)

// ParseKind accepts "movie", "tv" or "person".
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindMovie, KindTV, KindPerson:
		return k, nil
	}
	return "", fmt.Errorf("kind %q: %w", s, ErrInvalidEntry)
}

// Entry is one saved title.
type Entry struct {
	Kind     Kind            `json:"kind"`
	TMDBID   int             `json:"tmdb_id"`
	Title    string          `json:"title"`
	Year     int             `json:"year,omitempty"`
	Language string          `json:"language,omitempty"`
	Payload  json.RawMessage `json:"payload"`
	SavedAt  time.Time       `json:"saved_at"`
}

// Decode unmarshals the stored TMDB response into v.
func (e *Entry) Decode(v any) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("decode %s %d: %w", e.Kind, e.TMDBID, err)
	}
	return nil
}

// Store persists entries in the titles table.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database that already has the schema applied.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens (creating if needed) the database at path and applies migrations.
// Use ":memory:" for a throwaway store.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create catalog dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := migrations.Apply(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate catalog: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts e or replaces the entry with the same kind and TMDB id.
// SavedAt is set to the current time.
func (s *Store) Save(ctx context.Context, e *Entry) error {
	if _, err := ParseKind(string(e.Kind)); err != nil {
		return err
	}
	if e.TMDBID <= 0 {
		return fmt.Errorf("tmdb id %d: %w", e.TMDBID, ErrInvalidEntry)
	}
	if !json.Valid(e.Payload) {
		return fmt.Errorf("payload of %s %d is not JSON: %w", e.Kind, e.TMDBID, ErrInvalidEntry)
	}

	e.SavedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO titles (kind, tmdb_id, title, year, language, payload, saved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(kind, tmdb_id) DO UPDATE SET
		   title = excluded.title,
		   year = excluded.year,
		   language = excluded.language,
		   payload = excluded.payload,
		   saved_at = excluded.saved_at`,
		string(e.Kind), e.TMDBID, e.Title, e.Year, e.Language, string(e.Payload), e.SavedAt,
	)
	if err != nil {
		return fmt.Errorf("save %s %d: %w", e.Kind, e.TMDBID, err)
	}
	return nil
}

// Get returns the entry for kind and id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, kind Kind, id int) (*Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT kind, tmdb_id, title, year, language, payload, saved_at
		 FROM titles WHERE kind = ? AND tmdb_id = ?`,
		string(kind), id,
	)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %d: %w", kind, id, err)
	}
	return e, nil
}

// List returns entries of kind ordered by title, or every entry when kind is
// empty.
func (s *Store) List(ctx context.Context, kind Kind) ([]*Entry, error) {
	query := `SELECT kind, tmdb_id, title, year, language, payload, saved_at FROM titles`
	var args []any
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY kind, title COLLATE NOCASE, tmdb_id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list titles: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan title: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes the entry for kind and id, or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, kind Kind, id int) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM titles WHERE kind = ? AND tmdb_id = ?`, string(kind), id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", kind, id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", kind, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*Entry, error) {
	var (
		e       Entry
		kind    string
		payload string
	)
	if err := row.Scan(&kind, &e.TMDBID, &e.Title, &e.Year, &e.Language, &payload, &e.SavedAt); err != nil {
		return nil, err
	}
	e.Kind = Kind(kind)
	e.Payload = json.RawMessage(payload)
	return &e, nil
}
