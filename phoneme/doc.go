// Package phoneme computes edit distance between phoneme token sequences.
//
// Phonemes are compared as whole tokens (e.g. ARPABET symbols without
// stress digits), never as characters — "AE" and "EH" are two tokens, not
// four runes. Distance is a weighted Levenshtein: unit cost for
// insertion/deletion, unit cost for substitution unless the pair appears
// in the confusion table, in which case a reduced cost in [0.2, 0.4]
// applies. The DP runs in O(min(len(p1), len(p2))) space via a two-row
// rolling array, the same technique dtw.DTW uses in RollingArray mode.
package phoneme
