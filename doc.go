// Package phonowalk aligns two transcript tracks of the same spoken
// content that have drifted apart in time — subtitle re-encodes,
// re-cut recordings, dubbed tracks — by walking a path through their
// phoneme sequences instead of comparing raw text or timestamps.
//
// 🚀 What is phonowalk?
//
//	A pure-Go, synchronous alignment library that brings together:
//		• Chunk model: validated, phoneme-annotated transcript tracks
//		• Phoneme distance: confusion-aware weighted edit distance
//		• Similarity scoring: length- and speaker-aware chunk comparison
//		• Anchor search: time-windowed seed for the walk
//		• Path walker: greedy extension with gap tolerance and smear detection
//		• Offset estimation: median/MAD-robust offset with a confidence score
//		• Align facade: one call from two tracks to an offset and a path
//
// ✨ Why choose phonowalk?
//
//   - Beginner-friendly — one entry point, functional options for tuning
//   - Deterministic — no randomness, no goroutines, no suspension points
//   - Pure Go — no cgo, testify is the only dependency
//   - Diagnosable — every failure carries a reason and, where available, a path
//
// Under the hood, everything is organized under seven subpackages:
//
//	chunk/      — Track/Chunk types, validation, and time-shifting
//	phoneme/    — confusion-aware phoneme edit distance
//	similarity/ — chunk-pair scoring with a merged-range cache
//	anchor/     — time-windowed anchor search
//	walker/     — greedy path walker with gaps and smears
//	offset/     — robust offset and confidence estimation
//	align/      — the facade tying the above into a single Align call
//
// Quick example:
//
//	result, err := align.Align(track1, track2)
//	if err != nil {
//	    // result.Reason names why: invalid_input, no_anchor_found,
//	    // path_too_short, or offset_inconsistent
//	}
//	fmt.Println(result.OffsetSeconds, result.Confidence)
//
// The tests in align/align_test.go work through end-to-end scenarios,
// including a constant-shift track pair and a resegmentation-induced smear.
//
//	go get github.com/katalvlaran/phonowalk
package phonowalk
