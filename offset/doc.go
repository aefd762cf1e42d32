// Package offset turns a completed alignment path into a single robust
// time offset, with a standard-deviation consistency check and a
// three-factor confidence score.
//
// The estimator extracts one delta sample per path point, rejects
// outliers with a median/MAD filter (keeping at least half the samples),
// checks the retained sample's standard deviation against a caller-chosen
// threshold, and reports success or the specific failure reason. This is
// the same small-pure-function-over-slices shape as the numeric utilities
// in the matrix package, applied to alignment offsets instead of matrices.
package offset
