// Package chunk defines the Chunk and Track types shared by every stage of
// the phonetic aligner, plus the validation and helpers callers need before
// handing tracks to the align package.
//
// A Chunk is an immutable record of one subtitle utterance: timing,
// display text (opaque to the aligner), a phoneme sequence, and an optional
// speaker tag. A Track is an ordered, non-decreasing-by-start sequence of
// Chunks. Neither type is mutated by any package in this module; Shift
// returns a new Track rather than editing in place.
package chunk

import "errors"

// Sentinel errors returned by Validate.
var (
	// ErrEmptyTrack indicates a track with zero chunks was supplied.
	ErrEmptyTrack = errors.New("chunk: track is empty")

	// ErrNegativeTime indicates a chunk's start or end time is negative.
	ErrNegativeTime = errors.New("chunk: negative timestamp")

	// ErrEndBeforeStart indicates a chunk's end time precedes its start time.
	ErrEndBeforeStart = errors.New("chunk: end time before start time")

	// ErrNonMonotonicTrack indicates chunk start times decrease along the track.
	ErrNonMonotonicTrack = errors.New("chunk: chunk start times are not non-decreasing")
)

// Chunk is one subtitle utterance: a time span, its phoneme sequence, and
// optional speaker metadata. Text is carried through for diagnostics only —
// no package in this module reads it.
type Chunk struct {
	Start      float64  // seconds, >= 0
	End        float64  // seconds, >= Start
	Text       string   // display text, opaque to the aligner
	Phonemes   []string // ordered phoneme symbols; may be empty (non-matchable)
	Speaker    string   // optional; empty means "no speaker recorded"
	HasSpeaker bool     // distinguishes "" as a real speaker id from "absent"
}

// Track is an ordered sequence of Chunks with non-decreasing Start times.
type Track []Chunk

// HasPhonemes reports whether the chunk carries any phoneme symbols. Chunks
// without phonemes are traversable only as gaps; they never anchor or match.
func (c Chunk) HasPhonemes() bool {
	return len(c.Phonemes) > 0
}

// Validate checks the non-negotiable invariants from the data model: the
// track is non-empty, every timestamp is non-negative, End >= Start for
// every chunk, and Start is non-decreasing across the track.
func (t Track) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTrack
	}
	prevStart := -1.0
	for i, c := range t {
		if c.Start < 0 || c.End < 0 {
			return ErrNegativeTime
		}
		if c.End < c.Start {
			return ErrEndBeforeStart
		}
		if i > 0 && c.Start < prevStart {
			return ErrNonMonotonicTrack
		}
		prevStart = c.Start
	}
	return nil
}

// Shift returns a new Track with every chunk's Start and End advanced by
// offsetSeconds. The source track is untouched; this mirrors the harness
// convention of re-scoring a candidate offset by shifting one track and
// re-comparing, without mutating caller-owned data.
func Shift(t Track, offsetSeconds float64) Track {
	out := make(Track, len(t))
	for i, c := range t {
		shifted := c
		shifted.Start = c.Start + offsetSeconds
		shifted.End = c.End + offsetSeconds
		out[i] = shifted
	}
	return out
}
