package gsea

// EnrichmentResult binds one gene set's real scoring to its permutation null
// distribution: the real EnrichmentScoreCohort (computed with storeDeep=true)
// and a vector of permutation ES values, one per permutation, each the
// max-deviation ES of the same set under that permutation (spec.md §3).
type EnrichmentResult struct {
	GeneSet *GeneSet
	Real    *EnrichmentScoreCohort
	RndES   []float32 // length nperm
}

// EnrichmentDb is the kernel's full output: the ranked list, the optional
// dataset/template/chip that produced it, per-set results, the metric
// configuration used, the sort order, the permutation count, and (for
// template shuffling) the finalized marker statistics, if requested
// (spec.md §3).
type EnrichmentDb struct {
	RankedList *RankedList
	Dataset    *Dataset // nil in pre-ranked mode
	Template   *Template
	Chip       *Chip

	Results []*EnrichmentResult

	Metric       Metric
	SortMode     SortMode
	Order        Order
	MetricParams MetricParams
	NumPerm      int

	Markers *MarkerStats // nil unless requested
}

// aggregateResults performs the purely structural binding spec.md §4.5
// describes: no computation beyond assembling EnrichmentResult values from
// already-computed real scores and permutation ES matrix columns.
func aggregateResults(gsets []*GeneSet, real []*EnrichmentScoreCohort, rndEss [][]float32) []*EnrichmentResult {
	results := make([]*EnrichmentResult, len(gsets))
	for gi, g := range gsets {
		var rnd []float32
		if rndEss != nil {
			rnd = rndEss[gi]
		}
		results[gi] = &EnrichmentResult{GeneSet: g, Real: real[gi], RndES: rnd}
	}
	return results
}
