package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/moviedb/internal/lookup"
	"github.com/vmunix/moviedb/pkg/tmdb"
)

func TestSearchCommand_Movie(t *testing.T) {
	mock := newMockServer(t).
		RespondJSON("/search/movie", `{"page": 1, "total_pages": 1, "total_results": 1,
			"results": [{"id": 155, "title": "The Dark Knight", "release_date": "2008-07-16"}]}`).
		ExpectQuery("query", "The Dark Knight").
		ExpectQuery("year", "2008").
		ExpectQuery("page", "1")
	cfgPath := writeTestConfig(t, mock.Build().URL)

	out, err := runCLI(t, "--config", cfgPath, "search", "movie", "The", "Dark", "Knight", "--year", "2008")
	require.NoError(t, err)

	assert.Contains(t, out, `Results for "The Dark Knight" (page 1 of 1, 1 total)`)
	assert.Contains(t, out, "155 │ movie  │ 2008 │ The Dark Knight")
}

func TestSearchCommand_TVYear(t *testing.T) {
	mock := newMockServer(t).
		RespondJSON("/search/tv", `{"page": 1, "total_pages": 1, "total_results": 1,
			"results": [{"id": 1418, "name": "The Big Bang Theory", "first_air_date": "2007-09-24"}]}`).
		ExpectQuery("first_air_date_year", "2007")
	cfgPath := writeTestConfig(t, mock.Build().URL)

	out, err := runCLI(t, "--config", cfgPath, "search", "tv", "big bang theory", "--year", "2007")
	require.NoError(t, err)
	assert.Contains(t, out, "The Big Bang Theory")
}

func TestSearchCommand_Multi(t *testing.T) {
	mock := newMockServer(t).
		RespondJSON("/search/multi", `{"page": 2, "total_pages": 3, "total_results": 41, "results": [
			{"id": 550, "media_type": "movie", "title": "Fight Club", "release_date": "1999-10-15"},
			{"id": 1418, "media_type": "tv", "name": "The Big Bang Theory", "first_air_date": "2007-09-24"},
			{"id": 819, "media_type": "person", "name": "Edward Norton", "known_for": [{"id": 550, "title": "Fight Club"}]}
		]}`).
		ExpectQuery("page", "2")
	cfgPath := writeTestConfig(t, mock.Build().URL)

	out, err := runCLI(t, "--config", cfgPath, "search", "multi", "fight", "--page", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "(page 2 of 3, 41 total)")
	assert.Contains(t, out, "550 │ movie  │ 1999 │ Fight Club")
	assert.Contains(t, out, "1418 │ tv     │ 2007 │ The Big Bang Theory")
	assert.Contains(t, out, "819 │ person │ ---- │ Edward Norton  (Fight Club)")
}

func TestSearchCommand_JSON(t *testing.T) {
	mock := newMockServer(t).
		RespondJSON("/search/person", `{"page": 1, "total_pages": 1, "total_results": 1, "results": [{"id": 819, "name": "Edward Norton"}]}`)
	cfgPath := writeTestConfig(t, mock.Build().URL)

	out, err := runCLI(t, "--config", cfgPath, "--json", "search", "person", "Edward Norton")
	require.NoError(t, err)

	var list tmdb.ResultsList[tmdb.PersonBasic]
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list.Results, 1)
	assert.Equal(t, 819, list.Results[0].ID)
}

func TestSearchCommand_NoResults(t *testing.T) {
	mock := newMockServer(t).
		RespondJSON("/search/movie", `{"page": 1, "total_pages": 0, "total_results": 0, "results": []}`)
	cfgPath := writeTestConfig(t, mock.Build().URL)

	out, err := runCLI(t, "--config", cfgPath, "search", "movie", "zzzzzzzz")
	require.NoError(t, err)
	assert.Contains(t, out, `No results for "zzzzzzzz"`)
}

func TestSearchCommand_BadArguments(t *testing.T) {
	mock := newMockServer(t)
	cfgPath := writeTestConfig(t, mock.Build().URL)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown type", []string{"search", "episode", "pilot"}, "unknown search type"},
		{"year on person", []string{"search", "person", "norton", "--year", "1999"}, "--year only applies"},
		{"page zero", []string{"search", "movie", "x", "--page", "0"}, "invalid --page"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, append([]string{"--config", cfgPath}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

const rockySearch = `{"page": 1, "total_pages": 1, "total_results": 3, "results": [
	{"id": 1366, "title": "Rocky", "release_date": "1976-11-21"},
	{"id": 1367, "title": "Rocky II", "release_date": "1979-06-15"},
	{"id": 1371, "title": "Rocky III", "release_date": "1982-05-28"}
]}`

func TestMatchCommand_Movie(t *testing.T) {
	mock := newMockServer(t).RespondJSON("/search/movie", rockySearch)
	cfgPath := writeTestConfig(t, mock.Build().URL)

	out, err := runCLI(t, "--config", cfgPath, "match", "movie", "Rocky", "II")
	require.NoError(t, err)

	assert.Contains(t, out, "Rocky II (1979)  [movie tmdb:1367]")
	assert.Contains(t, out, "high confidence")
}

func TestMatchCommand_JSON(t *testing.T) {
	mock := newMockServer(t).RespondJSON("/search/movie", rockySearch)
	cfgPath := writeTestConfig(t, mock.Build().URL)

	out, err := runCLI(t, "--config", cfgPath, "--json", "match", "movie", "rocky", "--year", "1976")
	require.NoError(t, err)

	var got matchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1366, got.TMDBID)
	assert.Equal(t, "movie", got.Kind)
	assert.Equal(t, "high", got.Confidence)
}

func TestMatchCommand_Series(t *testing.T) {
	mock := newMockServer(t).
		RespondJSON("/search/tv", `{"page": 1, "total_pages": 1, "total_results": 1,
			"results": [{"id": 1418, "name": "The Big Bang Theory", "first_air_date": "2007-09-24"}]}`)
	cfgPath := writeTestConfig(t, mock.Build().URL)

	out, err := runCLI(t, "--config", cfgPath, "match", "tv", "Big Bang Theory")
	require.NoError(t, err)
	assert.Contains(t, out, "[tv tmdb:1418]")
}

func TestMatchCommand_NoMatch(t *testing.T) {
	mock := newMockServer(t).
		RespondJSON("/search/movie", `{"page": 1, "total_pages": 0, "total_results": 0, "results": []}`)
	cfgPath := writeTestConfig(t, mock.Build().URL)

	_, err := runCLI(t, "--config", cfgPath, "match", "movie", "zzzzzzzz")
	assert.ErrorIs(t, err, lookup.ErrNoMatch)
}

func TestFindCommand(t *testing.T) {
	mock := newMockServer(t).
		RespondJSON("/find/80379", `{"movie_results": [], "person_results": [],
			"tv_results": [{"id": 1418, "name": "The Big Bang Theory", "first_air_date": "2007-09-24"}]}`).
		ExpectQuery("external_source", "tvdb_id")
	cfgPath := writeTestConfig(t, mock.Build().URL)

	out, err := runCLI(t, "--config", cfgPath, "find", "80379", "--source", "tvdb_id")
	require.NoError(t, err)
	assert.Contains(t, out, "tv           1418  The Big Bang Theory (2007)")
}

func TestFindCommand_Nothing(t *testing.T) {
	mock := newMockServer(t).
		RespondJSON("/find/tt0000000", `{"movie_results": [], "tv_results": [], "person_results": []}`).
		ExpectQuery("external_source", "imdb_id")
	cfgPath := writeTestConfig(t, mock.Build().URL)

	out, err := runCLI(t, "--config", cfgPath, "find", "tt0000000")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing found for tt0000000")
}
