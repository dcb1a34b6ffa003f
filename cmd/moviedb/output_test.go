package main

import (
	"testing"
	"unicode/utf8"
)

func TestTitleYear(t *testing.T) {
	tests := []struct {
		name  string
		title string
		year  int
		want  string
	}{
		{"with year", "Fight Club", 1999, "Fight Club (1999)"},
		{"unknown year", "Untitled", 0, "Untitled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := titleYear(tt.title, tt.year); got != tt.want {
				t.Errorf("titleYear(%q, %d) = %q, want %q", tt.title, tt.year, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"The Lord of the Rings: The Return of the King", 20, "The Lord of the R..."},
		{"Amélie Poulain à Montmartre", 10, "Amélie ..."},
		{"千と千尋の神隠し", 6, "千と千..."},
		{"Léon", 4, "Léon"},
		{"Heat", 2, "He"},
		{"Heat", 0, ""},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.n)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) = %q is not valid UTF-8", tt.in, tt.n, got)
		}
	}
}

func TestDateYear(t *testing.T) {
	tests := map[string]string{
		"1999-10-15": "1999",
		"":           "----",
		"19":         "----",
	}
	for in, want := range tests {
		if got := dateYear(in); got != want {
			t.Errorf("dateYear(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" credits, ,videos,")
	if len(got) != 2 || got[0] != "credits" || got[1] != "videos" {
		t.Errorf("splitList = %q, want [credits videos]", got)
	}
	if got := splitList(""); got != nil {
		t.Errorf("splitList(\"\") = %q, want nil", got)
	}
}

func TestParseID(t *testing.T) {
	if id, err := parseID("550", "movie id"); err != nil || id != 550 {
		t.Errorf("parseID(550) = %d, %v", id, err)
	}
	for _, bad := range []string{"0", "-1", "abc", ""} {
		if _, err := parseID(bad, "movie id"); err == nil {
			t.Errorf("parseID(%q): expected error", bad)
		}
	}
}

func TestParseNumber(t *testing.T) {
	if n, err := parseNumber("0", "season number"); err != nil || n != 0 {
		t.Errorf("parseNumber(0) = %d, %v", n, err)
	}
	if _, err := parseNumber("-1", "season number"); err == nil {
		t.Error("parseNumber(-1): expected error")
	}
}

func TestMaskKey(t *testing.T) {
	tests := map[string]string{
		"":                                 "",
		"abc":                              "****",
		"0123456789abcdef0123456789abcdef": "****cdef",
	}
	for in, want := range tests {
		if got := maskKey(in); got != want {
			t.Errorf("maskKey(%q) = %q, want %q", in, got, want)
		}
	}
}
