package walker

import (
	"sort"

	"github.com/katalvlaran/phonowalk/chunk"
	"github.com/katalvlaran/phonowalk/similarity"
)

// Result is the outcome of one walk: the accepted path plus a diagnostic
// total of gap penalties subtracted along the way. PenaltyTotal is not
// consumed by the offset estimator's confidence formula; it exists purely
// for callers who want to see how much of the walk was gap-smoothed.
type Result struct {
	Path         Path
	PenaltyTotal float64
}

// candidate is one of the up to four next-step positions considered on
// each iteration.
type candidate struct {
	di, dj int
	i, j   int
	score  float64
}

// runner carries the walker's mutable search state, mirroring the
// stateless-entry/stateful-runner split dijkstra.Dijkstra uses.
type runner struct {
	track1, track2 chunk.Track
	cache          *similarity.Cache
	cfg            Config

	n1, n2 int

	curI, curJ       int
	consecutiveGaps  int
	path             Path
	acceptedOffsets  []float64
	anchorOffset     float64
	penaltyTotal     float64
}

// Walk builds the alignment path forward from the given anchor using the
// greedy local-neighborhood step described by the path walker: strong
// direct matches, smear probes when no direct match clears the threshold,
// bounded gap tolerance, and termination when either cursor reaches the
// last chunk of its track or the gap budget is exhausted.
func Walk(track1, track2 chunk.Track, cache *similarity.Cache, anchorI, anchorJ int, anchorScore float64, cfg Config) Result {
	r := &runner{
		track1:       track1,
		track2:       track2,
		cache:        cache,
		cfg:          cfg,
		n1:           len(track1),
		n2:           len(track2),
		curI:         anchorI,
		curJ:         anchorJ,
		anchorOffset: track2[anchorJ].Start - track1[anchorI].Start,
	}
	r.path = append(r.path, MatchPoint{I: anchorI, JStart: anchorJ, JEnd: anchorJ, Score: anchorScore, Kind: Direct})
	r.acceptedOffsets = append(r.acceptedOffsets, r.anchorOffset)

	for {
		if r.curI >= r.n1-1 || r.curJ >= r.n2-1 {
			break
		}

		cands := r.enumerateCandidates()
		best, ok := r.pickBest(cands)
		if !ok {
			break
		}

		if best.score >= r.cfg.PhoneticSimilarityThreshold {
			r.acceptDirect(best)
			continue
		}

		if r.trySmearOneToN(cands) {
			continue
		}
		if r.trySmearNToOne(cands) {
			continue
		}

		if r.consecutiveGaps < r.cfg.MaxConsecutiveGaps {
			r.consecutiveGaps++
			r.penaltyTotal += r.cfg.GapPenalty
			r.curI, r.curJ = best.i, best.j
			continue
		}

		break
	}

	return Result{Path: r.path, PenaltyTotal: r.penaltyTotal}
}

// enumerateCandidates returns every in-bounds (curI+di, curJ+dj) position
// for di, dj in {1, 2}.
func (r *runner) enumerateCandidates() []candidate {
	cands := make([]candidate, 0, 4)
	for _, di := range [2]int{1, 2} {
		for _, dj := range [2]int{1, 2} {
			i, j := r.curI+di, r.curJ+dj
			if i > r.n1-1 || j > r.n2-1 {
				continue
			}
			cands = append(cands, candidate{di: di, dj: dj, i: i, j: j, score: r.cache.Sim(i, j)})
		}
	}
	return cands
}

// pickBest selects the maximum-scoring candidate, breaking ties by
// preferring (1,1), then smaller di+dj, then smaller distance of the
// candidate's offset from the running reference offset.
func (r *runner) pickBest(cands []candidate) (candidate, bool) {
	if len(cands) == 0 {
		return candidate{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if r.better(c, best) {
			best = c
		}
	}
	return best, true
}

func (r *runner) better(c, incumbent candidate) bool {
	if c.score != incumbent.score {
		return c.score > incumbent.score
	}
	cOneOne := c.di == 1 && c.dj == 1
	iOneOne := incumbent.di == 1 && incumbent.dj == 1
	if cOneOne != iOneOne {
		return cOneOne
	}
	if c.di+c.dj != incumbent.di+incumbent.dj {
		return c.di+c.dj < incumbent.di+incumbent.dj
	}
	ref := r.referenceOffset()
	cDiff := absFloat(r.deltaFor(c.i, c.j) - ref)
	iDiff := absFloat(r.deltaFor(incumbent.i, incumbent.j) - ref)
	return cDiff < iDiff
}

// referenceOffset returns the running median of accepted path offsets once
// at least 3 points have been accepted, falling back to the anchor's own
// offset before that.
func (r *runner) referenceOffset() float64 {
	if len(r.acceptedOffsets) < 3 {
		return r.anchorOffset
	}
	return median(r.acceptedOffsets)
}

func (r *runner) deltaFor(i, j int) float64 {
	return r.track2[j].Start - r.track1[i].Start
}

func (r *runner) acceptDirect(c candidate) {
	r.path = append(r.path, MatchPoint{I: c.i, JStart: c.j, JEnd: c.j, Score: c.score, Kind: Direct})
	r.acceptedOffsets = append(r.acceptedOffsets, r.deltaFor(c.i, c.j))
	r.consecutiveGaps = 0
	r.curI, r.curJ = c.i, c.j
}

// trySmearOneToN attempts the 1-to-N smear: track1[curI+1] merged against
// track2[curJ+1..curJ+2]. Only two candidates ever "involve cur_i+1"
// ((1,1) and (1,2)); we require at least one of them to individually clear
// the smear threshold as a cheap plausibility gate before paying for the
// merged-phoneme comparison, which is the real acceptance gate against the
// (stricter) direct threshold. A segmentation split rarely gives both
// halves equal partial credit — the smear example in the aligner's test
// data has one half scoring above the smear threshold and the other well
// below it — so gating on both would make the probe unreachable in
// practice.
func (r *runner) trySmearOneToN(cands []candidate) bool {
	qualifying := 0
	for _, c := range cands {
		if c.di == 1 && c.score >= r.cfg.SmearSimilarityThreshold {
			qualifying++
		}
	}
	if qualifying < 1 {
		return false
	}

	i := r.curI + 1
	jStart, jEnd := r.curJ+1, r.curJ+2
	if !withinSpan(jStart, jEnd, r.n2-1) {
		return false
	}
	merged := r.cache.SimMergedTrack2(i, jStart, jEnd)
	if merged < r.cfg.PhoneticSimilarityThreshold {
		return false
	}

	r.path = append(r.path, MatchPoint{I: i, JStart: jStart, JEnd: jEnd, Score: merged, Kind: SmearOneToN})
	r.acceptedOffsets = append(r.acceptedOffsets, r.track2[jStart].Start-r.track1[i].Start)
	r.consecutiveGaps = 0
	r.curI, r.curJ = i, jEnd
	return true
}

// trySmearNToOne is the symmetric case: track1[curI+1..curI+2] merged
// against track2[curJ+1].
func (r *runner) trySmearNToOne(cands []candidate) bool {
	qualifying := 0
	for _, c := range cands {
		if c.dj == 1 && c.score >= r.cfg.SmearSimilarityThreshold {
			qualifying++
		}
	}
	if qualifying < 1 {
		return false
	}

	iStart, iEnd := r.curI+1, r.curI+2
	j := r.curJ + 1
	if !withinSpan(iStart, iEnd, r.n1-1) {
		return false
	}
	merged := r.cache.SimMergedTrack1(iStart, iEnd, j)
	if merged < r.cfg.PhoneticSimilarityThreshold {
		return false
	}

	r.path = append(r.path, MatchPoint{I: iStart, JStart: j, JEnd: j, Score: merged, Kind: SmearNToOne})
	r.acceptedOffsets = append(r.acceptedOffsets, r.track2[j].Start-r.track1[iStart].Start)
	r.consecutiveGaps = 0
	r.curI, r.curJ = iEnd, j
	return true
}

// withinSpan reports whether [start, end] is short enough to merge and does
// not run past the track's last valid index (maxIndex). The latter check
// matters at the tail of a track: curJ == n2-2 (or curI == n1-2) makes
// curJ+2 == n2, one past the last chunk, which would otherwise panic when
// the merged range is concatenated.
func withinSpan(start, end, maxIndex int) bool {
	return end-start+1 <= maxSmearSpan && end <= maxIndex
}

func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
