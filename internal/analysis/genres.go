// Package analysis derives genre sets, artist tallies, tabular rows and
// summary statistics from loaded tracks. Every function is pure.
package analysis

import (
	"cmp"
	"slices"
	"strings"

	"github.com/yvinc/203-proj1/internal/core"
)

// Genres returns the unique genres of every artist on the track, sorted.
func Genres(t core.Track) []string {
	seen := make(map[string]bool)
	genres := []string{}
	for _, a := range t.Artists {
		for _, g := range a.Genres {
			if !seen[g] {
				seen[g] = true
				genres = append(genres, g)
			}
		}
	}
	slices.Sort(genres)
	return genres
}

// GenreContains reports whether any genre of any artist on the track
// contains needle, ignoring case. Matching is by substring, so "pop"
// matches both "dance pop" and "k-pop".
func GenreContains(t core.Track, needle string) bool {
	needle = strings.ToLower(needle)
	for _, a := range t.Artists {
		for _, g := range a.Genres {
			if strings.Contains(strings.ToLower(g), needle) {
				return true
			}
		}
	}
	return false
}

// GenreCount is the number of tracks carrying a genre.
type GenreCount struct {
	Genre  string `json:"genre"`
	Tracks int    `json:"tracks"`
}

// GenreTally counts the tracks carrying each genre, most common first.
// Equal counts are ordered by genre name.
func GenreTally(tracks []core.Track) []GenreCount {
	counts := make(map[string]int)
	for _, t := range tracks {
		for _, g := range Genres(t) {
			counts[g]++
		}
	}

	tally := make([]GenreCount, 0, len(counts))
	for g, n := range counts {
		tally = append(tally, GenreCount{Genre: g, Tracks: n})
	}
	slices.SortFunc(tally, func(a, b GenreCount) int {
		if c := cmp.Compare(b.Tracks, a.Tracks); c != 0 {
			return c
		}
		return cmp.Compare(a.Genre, b.Genre)
	})
	return tally
}
