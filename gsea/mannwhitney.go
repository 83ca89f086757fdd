package gsea

import "sort"

// mannWhitneyU computes the Mann-Whitney U statistic for the "hit" ranks
// (hitIndices, 0-based positions in a ranked list of length L) against the
// complementary "miss" ranks, i.e. the rank-sum test of hit positions versus
// all L ranks. It is reported per gene set as an auxiliary statistic
// alongside the KS enrichment score (spec.md §4.1 step 3).
//
// U is computed directly from the hit ranks without materializing the miss
// ranks: since every rank in [0, L) belongs to exactly one of the two
// groups, the rank-sum of the complement is a closed-form function of L,
// the hit count, and the rank-sum of the hits.
func mannWhitneyU(hitIndices []int, L int) float64 {
	n1 := len(hitIndices)
	if n1 == 0 || n1 == L {
		return 0
	}
	n2 := L - n1

	// 1-based ranks with ties-aware averaging. Hit/miss membership never
	// produces tied *values* here (ranks are already unique integer
	// positions), so a plain sorted-rank sum suffices.
	sorted := make([]int, n1)
	copy(sorted, hitIndices)
	sort.Ints(sorted)

	rankSum1 := 0.0
	for _, r := range sorted {
		// r is 0-based; Mann-Whitney ranks are 1-based.
		rankSum1 += float64(r + 1)
	}

	u1 := rankSum1 - float64(n1*(n1+1))/2
	totalPairs := float64(n1 * n2)
	u2 := totalPairs - u1

	if u1 < u2 {
		return u1
	}
	return u2
}
