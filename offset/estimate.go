package offset

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/phonowalk/chunk"
	"github.com/katalvlaran/phonowalk/walker"
)

// Sentinel errors returned by Estimate.
var (
	// ErrPathTooShort indicates the walked path has fewer points than
	// Config.MinPathLength.
	ErrPathTooShort = errors.New("offset: path shorter than minimum length")

	// ErrOffsetInconsistent indicates the retained samples' standard
	// deviation exceeds Config.OffsetConsistencyThresholdSD.
	ErrOffsetInconsistent = errors.New("offset: offset samples inconsistent")
)

// Config carries the subset of alignment configuration the offset
// estimator needs. It is populated by the align facade from its own
// Options.
type Config struct {
	MinPathLength                 int
	OffsetConsistencyThresholdSD float64
}

// Result is the estimator's output. Median and SD are populated even on
// failure so callers can surface them as diagnostics, per the error
// handling contract for offset_inconsistent.
type Result struct {
	Offset     float64
	Confidence float64
	Median     float64
	SD         float64
}

// Estimate derives a robust offset from a walked path: it extracts one
// delta sample per point, rejects outliers with a median/MAD filter that
// never drops more than half the samples, checks the retained samples'
// standard deviation against the configured threshold, and computes a
// three-factor confidence score.
func Estimate(path walker.Path, track1, track2 chunk.Track, cfg Config) (Result, error) {
	deltas := make([]float64, len(path))
	for n, mp := range path {
		deltas[n] = track2[mp.JStart].Start - track1[mp.I].Start
	}

	if len(path) < cfg.MinPathLength {
		return Result{Median: median(deltas), SD: sampleStdDev(deltas)}, ErrPathTooShort
	}

	m := median(deltas)
	absDevs := make([]float64, len(deltas))
	for n, d := range deltas {
		absDevs[n] = math.Abs(d - m)
	}
	mad := median(absDevs)

	retained := robustFilter(deltas, absDevs, mad)

	m2 := median(retained)
	sd := sampleStdDev(retained)

	if sd > cfg.OffsetConsistencyThresholdSD {
		return Result{Median: m2, SD: sd}, ErrOffsetInconsistent
	}

	pathLenFactor := math.Min(float64(len(path))/(2*float64(cfg.MinPathLength)), 1)
	avgScoreFactor := meanScore(path)
	consistencyFactor := 1 - math.Min(sd/cfg.OffsetConsistencyThresholdSD, 1)
	confidence := pathLenFactor * avgScoreFactor * consistencyFactor

	return Result{Offset: m2, Confidence: confidence, Median: m2, SD: sd}, nil
}

// robustFilter keeps samples within 3*MAD of the median, but never drops
// more than half the samples: if the 3*MAD cutoff would retain fewer than
// half, it falls back to keeping the smallest-deviation half instead.
func robustFilter(deltas, absDevs []float64, mad float64) []float64 {
	n := len(deltas)
	minKeep := (n + 1) / 2

	cutoff := 3 * mad
	within := make([]int, 0, n)
	for i, dev := range absDevs {
		if dev <= cutoff {
			within = append(within, i)
		}
	}
	if len(within) >= minKeep {
		out := make([]float64, len(within))
		for k, i := range within {
			out[k] = deltas[i]
		}
		return out
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return absDevs[idx[a]] < absDevs[idx[b]] })
	out := make([]float64, minKeep)
	for k := 0; k < minKeep; k++ {
		out[k] = deltas[idx[k]]
	}
	return out
}

func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// sampleStdDev computes the standard deviation of xs with Bessel's
// correction (n-1 denominator). A single-sample slice has SD 0.
func sampleStdDev(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(n)

	var sumSq float64
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n-1))
}

func meanScore(path walker.Path) float64 {
	if len(path) == 0 {
		return 0
	}
	var sum float64
	for _, mp := range path {
		sum += mp.Score
	}
	return sum / float64(len(path))
}
