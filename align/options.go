package align

// unsetSpeakerPenalty marks SpeakerMismatchPenalty as not explicitly set
// by the caller, so Align can resolve it to 0.5 or 0 based on whether both
// tracks actually carry speaker tags.
const unsetSpeakerPenalty = -1

// Options configures a single Align call. Use DefaultOptions plus the
// With* functions to build one; unset fields keep the aligner's documented
// defaults.
type Options struct {
	PhoneticSimilarityThreshold  float64
	SmearSimilarityThreshold     float64
	InitialSearchWindowSeconds   float64
	MinPathLength                int
	MaxConsecutiveGaps           int
	GapPenalty                   float64
	SpeakerMismatchPenalty       float64
	OffsetConsistencyThresholdSD float64
}

// Option is a functional option for Align.
type Option func(*Options)

// DefaultOptions returns the aligner's documented defaults:
// PhoneticSimilarityThreshold=0.7, SmearSimilarityThreshold=0.5,
// InitialSearchWindowSeconds=120.0, MinPathLength=5,
// MaxConsecutiveGaps=2, GapPenalty=0.1, OffsetConsistencyThresholdSD=0.5,
// and SpeakerMismatchPenalty resolved at call time to 0.5 when both tracks
// carry speaker tags, else 0.
func DefaultOptions() Options {
	return Options{
		PhoneticSimilarityThreshold:  0.7,
		SmearSimilarityThreshold:     0.5,
		InitialSearchWindowSeconds:   120.0,
		MinPathLength:                5,
		MaxConsecutiveGaps:           2,
		GapPenalty:                   0.1,
		SpeakerMismatchPenalty:       unsetSpeakerPenalty,
		OffsetConsistencyThresholdSD: 0.5,
	}
}

// WithPhoneticSimilarityThreshold sets the minimum score for a direct
// match. Must be in [0, 1]; panics otherwise.
func WithPhoneticSimilarityThreshold(v float64) Option {
	if v < 0 || v > 1 {
		panic("align: PhoneticSimilarityThreshold must be in [0, 1]")
	}
	return func(o *Options) {
		o.PhoneticSimilarityThreshold = v
	}
}

// WithSmearSimilarityThreshold sets the minimum score for a smear match.
// Must be in [0, 1]; panics otherwise.
func WithSmearSimilarityThreshold(v float64) Option {
	if v < 0 || v > 1 {
		panic("align: SmearSimilarityThreshold must be in [0, 1]")
	}
	return func(o *Options) {
		o.SmearSimilarityThreshold = v
	}
}

// WithInitialSearchWindowSeconds sets the anchor search's time window.
// Must be positive; panics otherwise.
func WithInitialSearchWindowSeconds(v float64) Option {
	if v <= 0 {
		panic("align: InitialSearchWindowSeconds must be positive")
	}
	return func(o *Options) {
		o.InitialSearchWindowSeconds = v
	}
}

// WithMinPathLength sets the minimum accepted path length. Must be at
// least 1; panics otherwise.
func WithMinPathLength(n int) Option {
	if n < 1 {
		panic("align: MinPathLength must be >= 1")
	}
	return func(o *Options) {
		o.MinPathLength = n
	}
}

// WithMaxConsecutiveGaps sets the gap-tolerance budget. Must be
// non-negative; panics otherwise.
func WithMaxConsecutiveGaps(n int) Option {
	if n < 0 {
		panic("align: MaxConsecutiveGaps must be >= 0")
	}
	return func(o *Options) {
		o.MaxConsecutiveGaps = n
	}
}

// WithGapPenalty sets the per-gap score penalty. Must be non-negative;
// panics otherwise.
func WithGapPenalty(v float64) Option {
	if v < 0 {
		panic("align: GapPenalty must be >= 0")
	}
	return func(o *Options) {
		o.GapPenalty = v
	}
}

// WithSpeakerMismatchPenalty overrides the speaker-mismatch penalty
// instead of letting Align resolve it from whether both tracks carry
// speaker tags. Must be in [0, 1]; panics otherwise.
func WithSpeakerMismatchPenalty(v float64) Option {
	if v < 0 || v > 1 {
		panic("align: SpeakerMismatchPenalty must be in [0, 1]")
	}
	return func(o *Options) {
		o.SpeakerMismatchPenalty = v
	}
}

// WithOffsetConsistencyThresholdSD sets the maximum standard deviation of
// retained offset samples. Must be positive; panics otherwise.
func WithOffsetConsistencyThresholdSD(v float64) Option {
	if v <= 0 {
		panic("align: OffsetConsistencyThresholdSD must be positive")
	}
	return func(o *Options) {
		o.OffsetConsistencyThresholdSD = v
	}
}
