package similarity

import "github.com/katalvlaran/phonowalk/phoneme"

// Score computes sim(p1, p2) per the aligner's similarity contract:
//
//  1. Either sequence empty -> 0.
//  2. base = 1 - dist/max(len(p1), len(p2)), via phoneme.Distance.
//  3. Length guard: adjusted = base * (0.5 + 0.5*ratio), ratio = min/max
//     of the two sequence lengths.
//  4. Speaker penalty: if both speakers are present and differ, subtract
//     speakerMismatchPenalty and clamp to [0, 1].
//
// Score is deterministic and depends only on its arguments; it does not
// read or write any cache.
func Score(p1, p2 []string, speaker1, speaker2 string, hasSpeaker1, hasSpeaker2 bool, speakerMismatchPenalty float64) float64 {
	if len(p1) == 0 || len(p2) == 0 {
		return 0
	}

	n1, n2 := len(p1), len(p2)
	maxLen := n1
	minLen := n2
	if n2 > n1 {
		maxLen = n2
		minLen = n1
	}

	dist := phoneme.Distance(p1, p2)
	base := 1 - dist/float64(maxLen)

	ratio := float64(minLen) / float64(maxLen)
	adjusted := base * (0.5 + 0.5*ratio)

	if hasSpeaker1 && hasSpeaker2 && speaker1 != speaker2 {
		adjusted -= speakerMismatchPenalty
	}

	return clamp01(adjusted)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
