package align

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/phonowalk/anchor"
	"github.com/katalvlaran/phonowalk/chunk"
	"github.com/katalvlaran/phonowalk/offset"
	"github.com/katalvlaran/phonowalk/similarity"
	"github.com/katalvlaran/phonowalk/walker"
)

// Align estimates the temporal offset between track1 and track2 using the
// phonetic walk: it validates both tracks, resolves configuration
// defaults, seeds a walk from the best-scoring anchor pair, extends the
// walk greedily with gap tolerance and smear detection, and derives a
// robust offset and confidence from the resulting path.
//
// On success Result.OK is true and OffsetSeconds/Confidence/Path are
// populated. On failure Result.OK is false and Result.Reason names the
// specific cause; the returned error wraps both the facade-level sentinel
// (ErrInvalidInput, ErrNoAnchorFound, ErrPathTooShort,
// ErrOffsetInconsistent) and the component-level sentinel that detected
// it, so callers can errors.Is against either.
func Align(track1, track2 chunk.Track, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := track1.Validate(); err != nil {
		return Result{Reason: ReasonInvalidInput}, fmt.Errorf("%w: track1: %w", ErrInvalidInput, err)
	}
	if err := track2.Validate(); err != nil {
		return Result{Reason: ReasonInvalidInput}, fmt.Errorf("%w: track2: %w", ErrInvalidInput, err)
	}

	speakerPenalty := cfg.SpeakerMismatchPenalty
	if speakerPenalty == unsetSpeakerPenalty {
		speakerPenalty = resolveSpeakerPenalty(track1, track2)
	}

	cache := similarity.NewCache(track1, track2, speakerPenalty)

	seed, err := anchor.Find(track1, track2, cache, anchor.Config{
		PhoneticSimilarityThreshold: cfg.PhoneticSimilarityThreshold,
		InitialSearchWindowSeconds:  cfg.InitialSearchWindowSeconds,
	})
	if err != nil {
		return Result{Reason: ReasonNoAnchorFound}, fmt.Errorf("%w: %w", ErrNoAnchorFound, err)
	}

	walked := walker.Walk(track1, track2, cache, seed.I, seed.J, seed.Score, walker.Config{
		PhoneticSimilarityThreshold: cfg.PhoneticSimilarityThreshold,
		SmearSimilarityThreshold:    cfg.SmearSimilarityThreshold,
		MaxConsecutiveGaps:          cfg.MaxConsecutiveGaps,
		GapPenalty:                  cfg.GapPenalty,
	})

	est, err := offset.Estimate(walked.Path, track1, track2, offset.Config{
		MinPathLength:                cfg.MinPathLength,
		OffsetConsistencyThresholdSD: cfg.OffsetConsistencyThresholdSD,
	})
	if err != nil {
		switch {
		case errors.Is(err, offset.ErrPathTooShort):
			return Result{Reason: ReasonPathTooShort, Path: walked.Path}, fmt.Errorf("%w: %w", ErrPathTooShort, err)
		case errors.Is(err, offset.ErrOffsetInconsistent):
			return Result{Reason: ReasonOffsetInconsistent, Path: walked.Path}, fmt.Errorf("%w: median=%.6f sd=%.6f: %w", ErrOffsetInconsistent, est.Median, est.SD, err)
		default:
			return Result{Reason: ReasonInvalidInput}, err
		}
	}

	return Result{
		OK:            true,
		OffsetSeconds: est.Offset,
		Confidence:    est.Confidence,
		Path:          walked.Path,
	}, nil
}

// resolveSpeakerPenalty implements the "0.5 when both tracks have
// speakers else 0" default: a track "has speakers" if at least one of its
// chunks carries a speaker tag.
func resolveSpeakerPenalty(track1, track2 chunk.Track) float64 {
	if trackHasSpeaker(track1) && trackHasSpeaker(track2) {
		return 0.5
	}
	return 0
}

func trackHasSpeaker(t chunk.Track) bool {
	for _, c := range t {
		if c.HasSpeaker {
			return true
		}
	}
	return false
}
