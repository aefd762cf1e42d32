package phoneme

// Distance computes the weighted edit distance between two phoneme token
// sequences. Insertion and deletion cost 1; substitution costs 0 for an
// exact match, confusionCost for a confusable pair (see confusionTable),
// and 1 otherwise.
//
// Distance between an empty sequence and a non-empty one equals the length
// of the non-empty side. Distance between two empty sequences is 0.
//
// Complexity: O(len(p1) * len(p2)) time, O(min(len(p1), len(p2))) space —
// the DP keeps only two rolling rows, oriented so the shorter sequence is
// the row width, the same technique dtw.DTW uses for its RollingArray mode.
func Distance(p1, p2 []string) float64 {
	if len(p1) == 0 {
		return float64(len(p2))
	}
	if len(p2) == 0 {
		return float64(len(p1))
	}

	// Keep the shorter sequence as the inner (row) dimension to bound
	// space by min(len(p1), len(p2)).
	long, short := p1, p2
	if len(short) > len(long) {
		long, short = short, long
	}
	n, m := len(long), len(short)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = float64(j)
	}

	for i := 1; i <= n; i++ {
		curr[0] = float64(i)
		for j := 1; j <= m; j++ {
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + substCost(long[i-1], short[j-1])
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
