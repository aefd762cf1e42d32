package similarity

import "github.com/katalvlaran/phonowalk/chunk"

// directKey identifies a single (i, j) chunk pair.
type directKey struct {
	i, j int
}

// mergedKey identifies a smear candidate: a single chunk on one side and a
// contiguous, inclusive index range on the other. side distinguishes a
// track2-side merge ([j_a, j_b] against a single i) from a track1-side
// merge ([i_a, i_b] against a single j) so the two never collide.
type mergedKey struct {
	side       mergeSide
	single     int
	rangeStart int
	rangeEnd   int
}

type mergeSide int

const (
	mergeTrack2 mergeSide = iota
	mergeTrack1
)

// Cache memoizes similarity scores for one alignment call. It is not
// safe for concurrent use — each alignment call owns its own Cache, per
// the core's single-threaded, no-shared-mutable-state contract.
type Cache struct {
	track1, track2         chunk.Track
	speakerMismatchPenalty float64
	direct                 map[directKey]float64
	merged                 map[mergedKey]float64
}

// NewCache builds a similarity cache scoped to one alignment call over the
// given tracks. speakerMismatchPenalty is the configured penalty applied
// when both chunks in a pair carry speaker tags that differ.
func NewCache(track1, track2 chunk.Track, speakerMismatchPenalty float64) *Cache {
	return &Cache{
		track1:                 track1,
		track2:                 track2,
		speakerMismatchPenalty: speakerMismatchPenalty,
		direct:                 make(map[directKey]float64),
		merged:                 make(map[mergedKey]float64),
	}
}

// Sim returns the memoized similarity between track1[i] and track2[j],
// computing and storing it on first access.
func (c *Cache) Sim(i, j int) float64 {
	key := directKey{i, j}
	if v, ok := c.direct[key]; ok {
		return v
	}
	a, b := c.track1[i], c.track2[j]
	v := Score(a.Phonemes, b.Phonemes, a.Speaker, b.Speaker, a.HasSpeaker, b.HasSpeaker, c.speakerMismatchPenalty)
	c.direct[key] = v
	return v
}

// SimMergedTrack2 returns the similarity between track1[i] and the
// concatenated phoneme sequence of track2[jStart..jEnd] (inclusive),
// applying the same length-aware normalization and speaker penalty as Sim.
// The speaker used for the merged side is track2[jStart]'s.
func (c *Cache) SimMergedTrack2(i, jStart, jEnd int) float64 {
	key := mergedKey{side: mergeTrack2, single: i, rangeStart: jStart, rangeEnd: jEnd}
	if v, ok := c.merged[key]; ok {
		return v
	}
	merged := concatPhonemes(c.track2, jStart, jEnd)
	a := c.track1[i]
	ref := c.track2[jStart]
	v := Score(a.Phonemes, merged, a.Speaker, ref.Speaker, a.HasSpeaker, ref.HasSpeaker, c.speakerMismatchPenalty)
	c.merged[key] = v
	return v
}

// SimMergedTrack1 returns the similarity between the concatenated phoneme
// sequence of track1[iStart..iEnd] (inclusive) and track2[j], symmetric to
// SimMergedTrack2 for the opposite smear direction.
func (c *Cache) SimMergedTrack1(iStart, iEnd, j int) float64 {
	key := mergedKey{side: mergeTrack1, single: j, rangeStart: iStart, rangeEnd: iEnd}
	if v, ok := c.merged[key]; ok {
		return v
	}
	merged := concatPhonemes(c.track1, iStart, iEnd)
	b := c.track2[j]
	ref := c.track1[iStart]
	v := Score(merged, b.Phonemes, ref.Speaker, b.Speaker, ref.HasSpeaker, b.HasSpeaker, c.speakerMismatchPenalty)
	c.merged[key] = v
	return v
}

func concatPhonemes(t chunk.Track, start, end int) []string {
	total := 0
	for k := start; k <= end; k++ {
		total += len(t[k].Phonemes)
	}
	out := make([]string, 0, total)
	for k := start; k <= end; k++ {
		out = append(out, t[k].Phonemes...)
	}
	return out
}
