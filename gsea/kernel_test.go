package gsea

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRankedList(t *testing.T, names []Feature, scores []float64, order Order) *RankedList {
	t.Helper()
	rl, err := NewRankedList(names, scores, order)
	require.NoError(t, err)
	return rl
}

func mustCohort(t *testing.T, rl *RankedList, gsets []*GeneSet) *GeneSetCohort {
	t.Helper()
	c, err := NewGeneSetCohort(rl, gsets, true, 1)
	require.NoError(t, err)
	return c
}

// TestKernelAllAtTop is scenario "all-at-top": a 10-feature descending
// ranked list with the gene set concentrated in ranks 0-2. The running score
// should peak exactly at the last hit and settle back to zero by the end of
// the walk.
func TestKernelAllAtTop(t *testing.T) {
	names := []Feature{"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10"}
	scores := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	rl := mustRankedList(t, names, scores, Descending)
	g := mustGeneSet(t, "top", []Feature{"f1", "f2", "f3"})
	c := mustCohort(t, rl, []*GeneSet{g})

	result, err := Kernel(c, true)
	require.NoError(t, err)
	require.Len(t, result, 1)

	sc := result[0]
	assert.Greater(t, sc.MaxDeviation.ES, float32(0))
	assert.Equal(t, 2, sc.MaxDeviation.RankAtES)
	assert.Equal(t, 3, sc.HitCount)

	profile, err := sc.ESProfileFull()
	require.NoError(t, err)
	require.Len(t, profile, 10)
	// Monotonically increasing through the hit run, then decreasing.
	for i := 1; i <= 2; i++ {
		assert.Greater(t, profile[i], profile[i-1])
	}
	for i := 3; i < 10; i++ {
		assert.LessOrEqual(t, profile[i], profile[i-1])
	}
	assert.InDelta(t, 0, profile[9], 1e-6)
}

// TestKernelAllAtBottom is scenario "all-at-bottom": the gene set sits in
// the last three ranks of a descending list, including the terminal rank
// L-1 exercised by the closing-only terminal pass.
func TestKernelAllAtBottom(t *testing.T) {
	names := []Feature{"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10"}
	scores := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	rl := mustRankedList(t, names, scores, Descending)
	g := mustGeneSet(t, "bottom", []Feature{"f8", "f9", "f10"})
	c := mustCohort(t, rl, []*GeneSet{g})

	result, err := Kernel(c, true)
	require.NoError(t, err)
	sc := result[0]
	assert.Less(t, sc.MaxDeviation.ES, float32(0))
	assert.Equal(t, 9, sc.MaxDeviation.RankAtES)
}

// TestKernelDegenerateZeroScores is scenario "degenerate zero scores": every
// ranked score is 0, forcing hit weights to fall back to fallbackWeight, so
// the ES never rises above the three fallback hit weights combined. Misses
// keep their 1/(L-numTrue) weight, which drives the signed ES negative here.
func TestKernelDegenerateZeroScores(t *testing.T) {
	names := []Feature{"f1", "f2", "f3", "f4", "f5"}
	scores := []float64{0, 0, 0, 0, 0}
	rl := mustRankedList(t, names, scores, Descending)
	g := mustGeneSet(t, "zeros", []Feature{"f1", "f2", "f3"})
	c := mustCohort(t, rl, []*GeneSet{g})

	result, err := Kernel(c, false)
	require.NoError(t, err)
	sc := result[0]
	assert.LessOrEqual(t, float64(sc.MaxDeviation.ES), 3*fallbackWeight+1e-12)
}

// TestKernelUniformSpread is scenario "uniform spread": the gene set is
// thinly distributed across a longer list, so |ES| stays small.
func TestKernelUniformSpread(t *testing.T) {
	names := make([]Feature, 12)
	scores := make([]float64, 12)
	for i := 0; i < 12; i++ {
		names[i] = Feature("f" + strconv.Itoa(i+1))
		scores[i] = float64(12 - i)
	}
	rl := mustRankedList(t, names, scores, Descending)
	g := mustGeneSet(t, "spread", []Feature{"f1", "f5", "f9"})
	c := mustCohort(t, rl, []*GeneSet{g})

	result, err := Kernel(c, false)
	require.NoError(t, err)
	sc := result[0]
	assert.Less(t, float64(sc.MaxDeviation.ES), 0.6)
}

func TestKernelNilCohort(t *testing.T) {
	_, err := Kernel(nil, false)
	assert.Error(t, err)
}

// TestKernelDeepDataGuard verifies that requesting profile accessors on a
// result computed with storeDeep=false reports errDeepNotAvailable rather
// than a nil-pointer panic.
func TestKernelDeepDataGuard(t *testing.T) {
	rl := mustRankedList(t, []Feature{"f1", "f2"}, []float64{2, 1}, Descending)
	g := mustGeneSet(t, "g", []Feature{"f1"})
	c := mustCohort(t, rl, []*GeneSet{g})

	result, err := Kernel(c, false)
	require.NoError(t, err)
	assert.False(t, result[0].HasDeep())
	_, err = result[0].ESProfileFull()
	assert.Error(t, err)
}

func mustGeneSet(t *testing.T, id string, members []Feature) *GeneSet {
	t.Helper()
	g, err := NewGeneSet(id, members)
	require.NoError(t, err)
	return g
}
