// Package similarity computes the normalized, speaker-aware phonetic
// similarity between subtitle chunks, and memoizes results for the
// lifetime of one alignment call.
//
// The base similarity of a pair of phoneme sequences is a length-aware
// normalization of the phoneme package's edit distance into [0, 1],
// reduced by a flat penalty when both sides carry a speaker tag and the
// tags differ. A Cache wraps this computation with a per-call memo table
// keyed by chunk index pair (or, for smear candidates, by the merged
// index range), the same shape as tsp.TSPExact's dp[mask][j] memo table
// adapted from a bitmask key to a chunk-index-pair key.
package similarity
