package align

import (
	"errors"

	"github.com/katalvlaran/phonowalk/walker"
)

// Sentinel errors returned by Align. Each wraps the lower-level sentinel
// from the package that actually detected the condition, so callers can
// match on either the facade-level or the component-level error with
// errors.Is.
var (
	// ErrInvalidInput indicates a track is empty, carries a negative
	// timestamp, an end before its start, or non-monotonic chunk starts.
	ErrInvalidInput = errors.New("align: invalid input")

	// ErrNoAnchorFound indicates the anchor search (plus its one widened
	// retry) found no candidate pair meeting the similarity threshold.
	ErrNoAnchorFound = errors.New("align: no anchor found")

	// ErrPathTooShort indicates the walked path has fewer points than
	// MinPathLength.
	ErrPathTooShort = errors.New("align: path shorter than minimum length")

	// ErrOffsetInconsistent indicates the retained offset samples' standard
	// deviation exceeds OffsetConsistencyThresholdSD.
	ErrOffsetInconsistent = errors.New("align: offset samples inconsistent")
)

// Reason is the machine-readable failure code attached to a failed Result,
// matching the four kinds from the error handling contract.
type Reason string

const (
	// ReasonNone is the zero value, present on successful results.
	ReasonNone Reason = ""

	// ReasonInvalidInput mirrors ErrInvalidInput.
	ReasonInvalidInput Reason = "invalid_input"

	// ReasonNoAnchorFound mirrors ErrNoAnchorFound.
	ReasonNoAnchorFound Reason = "no_anchor_found"

	// ReasonPathTooShort mirrors ErrPathTooShort.
	ReasonPathTooShort Reason = "path_too_short"

	// ReasonOffsetInconsistent mirrors ErrOffsetInconsistent.
	ReasonOffsetInconsistent Reason = "offset_inconsistent"
)

// Kind, MatchPoint and Path are re-exported from walker so callers of
// Align never need to import the walker package directly to inspect a
// Result's path.
type (
	Kind       = walker.Kind
	MatchPoint = walker.MatchPoint
	Path       = walker.Path
)

// Re-exported Kind values, see walker.Kind.
const (
	Direct      = walker.Direct
	SmearOneToN = walker.SmearOneToN
	SmearNToOne = walker.SmearNToOne
)

// Result is the outcome of an Align call. On success OK is true and
// OffsetSeconds/Confidence/Path are populated. On failure OK is false,
// Reason names the failure kind, and Path holds the walked path when the
// walk ran (path_too_short and offset_inconsistent) — empty otherwise, so
// the path is available for debugging.
type Result struct {
	OK            bool
	OffsetSeconds float64
	Confidence    float64
	Path          Path
	Reason        Reason
}
