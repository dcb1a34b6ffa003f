package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"The Matrix", "matrix"},
		{"A Beautiful Mind", "beautiful mind"},
		{"An American Werewolf in London", "american werewolf in london"},
		{"Fast & Furious", "fast and furious"},
		{"Léon: The Professional", "leon professional"},
		{"Amélie", "amelie"},
		{"Spider-Man: No Way Home", "spider man no way home"},
		{"Ocean's Eleven", "oceans eleven"},
		{"Star Wars: Episode IV - A New Hope", "star wars episode 4 a new hope"},
		{"Mr. Robot", "mr robot"},
		{"  Extra   Spaces  ", "extra spaces"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTitle(tt.input))
		})
	}
}

func TestNormalizeRomanNumerals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Rocky II", "Rocky 2"},
		{"rocky v", "rocky 5"},
		{"Final Fantasy VII", "Final Fantasy 7"},
		{"Henry VIII and Friends", "Henry 8 and Friends"},
		{"I, Robot", "I, Robot"},
		{"American History X", "American History X"},
		{"VII Days", "VII Days"},
		{"The Video", "The Video"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRomanNumerals(tt.input))
		})
	}
}

func TestSearchQuery(t *testing.T) {
	assert.Equal(t, "Fast and Furious", SearchQuery("  Fast  &  Furious "))
	assert.Equal(t, "Spider-Man: No Way Home", SearchQuery("Spider-Man: No Way Home"))
}
