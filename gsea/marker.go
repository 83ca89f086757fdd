package gsea

import "math"

// PermutationTest is the external collaborator spec.md §4.3 describes
// alongside template shuffling: it sees every random (template, rankedList)
// pair and is finalized exactly once via DoCalc. The kernel only requires
// these two methods; it does not interpret what DoCalc computes.
type PermutationTest interface {
	AddRnd(template *Template, rankedList *RankedList)
	DoCalc()
}

// MarkerStats is a concrete PermutationTest: it accumulates, per feature,
// the mean and variance of that feature's score across the randomized
// ranked lists produced during template shuffling — the "downstream
// feature-marker statistics" spec.md §4.3 names but leaves external.
type MarkerStats struct {
	sum       map[Feature]float64
	sumSq     map[Feature]float64
	count     map[Feature]int
	finalized bool

	// Mean and Variance are populated by DoCalc and are nil before it runs.
	Mean     map[Feature]float64
	Variance map[Feature]float64
}

// NewMarkerStats returns an empty MarkerStats accumulator.
func NewMarkerStats() *MarkerStats {
	return &MarkerStats{
		sum:   map[Feature]float64{},
		sumSq: map[Feature]float64{},
		count: map[Feature]int{},
	}
}

// AddRnd folds one randomized ranked list's scores into the running
// per-feature accumulators. template is accepted to satisfy the
// PermutationTest interface but is not otherwise consulted: the marker
// statistic is purely a function of the randomized ranked scores.
func (m *MarkerStats) AddRnd(template *Template, rankedList *RankedList) {
	if m.finalized {
		panic("gsea: MarkerStats.AddRnd called after DoCalc")
	}
	for i := 0; i < rankedList.Len(); i++ {
		name := rankedList.Name(i)
		score := rankedList.Score(i)
		m.sum[name] += score
		m.sumSq[name] += score * score
		m.count[name]++
	}
}

// DoCalc finalizes Mean and Variance from the accumulated sums. It must be
// called exactly once, after all AddRnd calls.
func (m *MarkerStats) DoCalc() {
	if m.finalized {
		panic("gsea: MarkerStats.DoCalc called twice")
	}
	m.finalized = true
	m.Mean = make(map[Feature]float64, len(m.sum))
	m.Variance = make(map[Feature]float64, len(m.sum))
	for name, n := range m.count {
		mean := m.sum[name] / float64(n)
		m.Mean[name] = mean
		if n < 2 {
			m.Variance[name] = 0
			continue
		}
		variance := m.sumSq[name]/float64(n) - mean*mean
		m.Variance[name] = math.Max(variance, 0)
	}
}
