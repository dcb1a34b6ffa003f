package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonCommand_Credits(t *testing.T) {
	mock := newMockServer(t).
		RespondJSON("/person/819", `{
			"id": 819,
			"name": "Edward Norton",
			"known_for_department": "Acting",
			"birthday": "1969-08-18",
			"place_of_birth": "Boston, Massachusetts, USA",
			"external_ids": {"imdb_id": "nm0001570"},
			"movie_credits": {
				"cast": [
					{"id": 550, "title": "Fight Club", "character": "Narrator", "release_date": "1999-10-15"},
					{"id": 73, "title": "American History X", "character": "Derek Vinyard", "release_date": "1998-10-30"},
					{"id": 1, "title": "Untitled Project", "character": "", "release_date": ""}
				],
				"crew": [{"id": 9056, "title": "Keeping the Faith", "job": "Director", "release_date": "2000-04-14"}]
			},
			"tv_credits": {"cast": [], "crew": []}
		}`).
		ExpectQuery("append_to_response", "external_ids,movie_credits,tv_credits")
	cfgPath := writeTestConfig(t, mock.Build().URL)

	out, err := runCLI(t, "--config", cfgPath, "person", "819", "--credits")
	require.NoError(t, err)

	assert.Contains(t, out, "Edward Norton  [tmdb:819]")
	assert.Contains(t, out, "Born:       1969-08-18, Boston, Massachusetts, USA")
	assert.Contains(t, out, "imdb:nm0001570")
	assert.NotContains(t, out, "TV:")

	faith := strings.Index(out, "Keeping the Faith")
	fight := strings.Index(out, "Fight Club")
	history := strings.Index(out, "American History X")
	untitled := strings.Index(out, "Untitled Project")
	assert.True(t, faith < fight && fight < history && history < untitled, "credits newest first, undated last")
}

func TestPersonCommand_NoCredits(t *testing.T) {
	mock := newMockServer(t).
		RespondJSON("/person/819", `{"id": 819, "name": "Edward Norton"}`).
		ExpectQuery("append_to_response", "external_ids")
	cfgPath := writeTestConfig(t, mock.Build().URL)

	out, err := runCLI(t, "--config", cfgPath, "person", "819")
	require.NoError(t, err)
	assert.NotContains(t, out, "Movies:")
}
