package anchor

import (
	"errors"
	"sort"

	"github.com/katalvlaran/phonowalk/chunk"
	"github.com/katalvlaran/phonowalk/similarity"
)

// ErrNoAnchorFound indicates the windowed search, including the single
// widened retry, found no candidate pair meeting the similarity threshold.
var ErrNoAnchorFound = errors.New("anchor: no anchor found")

// Config carries the subset of alignment configuration the anchor search
// needs. It is populated by the align facade from its own Options.
type Config struct {
	// PhoneticSimilarityThreshold is the minimum score a candidate pair
	// must reach to be considered an anchor.
	PhoneticSimilarityThreshold float64

	// InitialSearchWindowSeconds bounds |start2[j] - start1[i]| for a
	// candidate to be considered. Widened by 2x once if the first pass
	// yields no candidate.
	InitialSearchWindowSeconds float64
}

// Anchor is the seed match returned by Find: the index pair and its
// similarity score.
type Anchor struct {
	I, J  int
	Score float64
}

// searchK is the maximum number of leading track1 chunks considered as
// anchor candidates.
const searchK = 10

// Find searches the first min(len(track1), searchK) chunks of track1 for
// the best-scoring match within a time window of track2, per the anchor
// procedure: try InitialSearchWindowSeconds, and if nothing clears the
// threshold, retry once with the window doubled.
func Find(track1, track2 chunk.Track, cache *similarity.Cache, cfg Config) (Anchor, error) {
	starts := make([]float64, len(track2))
	for j, c := range track2 {
		starts[j] = c.Start
	}

	k := len(track1)
	if k > searchK {
		k = searchK
	}

	if best, ok := search(track1, track2, starts, cache, cfg, k, cfg.InitialSearchWindowSeconds); ok {
		return best, nil
	}
	if best, ok := search(track1, track2, starts, cache, cfg, k, cfg.InitialSearchWindowSeconds*2); ok {
		return best, nil
	}
	return Anchor{}, ErrNoAnchorFound
}

// search performs one full windowed pass over the first k chunks of
// track1, returning the best candidate found (if any) under the given
// window radius.
func search(track1, track2 chunk.Track, starts []float64, cache *similarity.Cache, cfg Config, k int, window float64) (Anchor, bool) {
	var (
		best    Anchor
		bestSet bool
	)

	for i := 0; i < k; i++ {
		if !track1[i].HasPhonemes() {
			continue
		}
		t := track1[i].Start
		lo := sort.Search(len(starts), func(idx int) bool { return starts[idx] >= t-window })
		for j := lo; j < len(starts) && starts[j] <= t+window; j++ {
			if !track2[j].HasPhonemes() {
				continue
			}
			score := cache.Sim(i, j)
			if score < cfg.PhoneticSimilarityThreshold {
				continue
			}
			cand := Anchor{I: i, J: j, Score: score}
			if !bestSet || better(cand, best, track1, track2) {
				best = cand
				bestSet = true
			}
		}
	}

	return best, bestSet
}

// better reports whether cand should replace incumbent as the anchor,
// applying the tie-break chain: higher score; then smaller |delta|
// (start2[j] - start1[i]); then smaller i; then smaller j.
func better(cand, incumbent Anchor, track1, track2 chunk.Track) bool {
	if cand.Score != incumbent.Score {
		return cand.Score > incumbent.Score
	}
	candDelta := absFloat(track2[cand.J].Start - track1[cand.I].Start)
	incumbentDelta := absFloat(track2[incumbent.J].Start - track1[incumbent.I].Start)
	if candDelta != incumbentDelta {
		return candDelta < incumbentDelta
	}
	if cand.I != incumbent.I {
		return cand.I < incumbent.I
	}
	return cand.J < incumbent.J
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
