package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestApply(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	require.NoError(t, Apply(ctx, db))

	// Second run is a no-op
	require.NoError(t, Apply(ctx, db))

	var n int
	err = db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'titles'`).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	err = db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = 'idx_titles_kind_title'`).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestApply_Constraints(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)
	require.NoError(t, Apply(context.Background(), db))

	_, err = db.Exec(`INSERT INTO titles (kind, tmdb_id, title, payload, saved_at) VALUES ('album', 1, 'x', '{}', CURRENT_TIMESTAMP)`)
	assert.Error(t, err, "unknown kind must be rejected")

	_, err = db.Exec(`INSERT INTO titles (kind, tmdb_id, title, payload, saved_at) VALUES ('movie', 0, 'x', '{}', CURRENT_TIMESTAMP)`)
	assert.Error(t, err, "non-positive id must be rejected")
}
