package analysis

import (
	"slices"

	"github.com/yvinc/203-proj1/internal/core"
	apperrors "github.com/yvinc/203-proj1/internal/errors"
)

// ArtistCount is the number of tracks an artist contributes to.
type ArtistCount struct {
	Artist core.Artist `json:"artist"`
	Tracks int         `json:"tracks"`
}

// ArtistTally counts, per artist ID, the tracks the artist is credited on.
// An artist credited twice on one track counts once. The result is sorted
// by count, most frequent first; equal counts keep first-appearance order.
// The first record seen for an ID is the one reported.
func ArtistTally(tracks []core.Track) []ArtistCount {
	index := make(map[string]int)
	var tally []ArtistCount

	for _, t := range tracks {
		credited := make(map[string]bool, len(t.Artists))
		for _, a := range t.Artists {
			if credited[a.ID] {
				continue
			}
			credited[a.ID] = true

			i, ok := index[a.ID]
			if !ok {
				i = len(tally)
				index[a.ID] = i
				tally = append(tally, ArtistCount{Artist: a})
			}
			tally[i].Tracks++
		}
	}

	slices.SortStableFunc(tally, func(a, b ArtistCount) int {
		return b.Tracks - a.Tracks
	})
	return tally
}

// MostFrequentArtist returns the artist credited on the most tracks. Ties
// go to the artist that appears first in the input. It returns ErrNoData
// when no track has an artist.
func MostFrequentArtist(tracks []core.Track) (ArtistCount, error) {
	tally := ArtistTally(tracks)
	if len(tally) == 0 {
		return ArtistCount{}, apperrors.ErrNoData
	}
	return tally[0], nil
}
