// Package align is the aligner facade: it validates two subtitle tracks,
// applies configuration defaults, and composes the anchor search, path
// walker, and offset estimator into a single Align call.
//
// Align follows the same validate-then-run-then-shape-the-result shape as
// dijkstra.Dijkstra: functional options configure the run, a chain of
// sentinel-error checks rejects malformed input up front, and the
// composed sub-packages (anchor, walker, offset) do the actual work.
package align
