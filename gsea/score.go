package gsea

// EnrichmentScore is one scored variant of a gene set against a ranked
// list: the running-sum value at which the variant's extremum was attained,
// the rank, and the ranked-list score at that rank.
type EnrichmentScore struct {
	// ES is the signed value attained at the extremum (sign preserved).
	ES float32
	// RankAtES is the index in the ranked list where ES was attained, or -1
	// if no visited rank in the variant's region improved on the starting
	// value of 0 (including when the region was never visited).
	RankAtES int
	// RankScoreAtES is the ranked-list score at RankAtES.
	RankScoreAtES float64
}

// DeepData holds the optional full-resolution vectors kept only when a KS
// Kernel pass is run with storeDeep=true: the running score at each hit, the
// running score at every rank, and the hit ranks themselves.
type DeepData struct {
	ProfileAtHits []float32
	FullProfile   []float32
	HitIndices    []int
}

// EnrichmentScoreCohort bundles the five ES variants the KS Kernel computes
// for one gene set in one pass: overall max-deviation, positive-region
// signed-max and absolute-max, and negative-region signed-min and
// absolute-max. It also carries the Mann-Whitney U statistic on hit ranks,
// the hit count, and (if the pass was run with storeDeep) the deep vectors.
//
// All variants for one gene set share a single *DeepData handle rather than
// each holding its own copy, so the full-resolution vectors are never
// duplicated across variants (spec's "shared inner cohort object" note).
type EnrichmentScoreCohort struct {
	MaxDeviation     EnrichmentScore
	PositiveSigned   EnrichmentScore
	PositiveAbsolute EnrichmentScore
	NegativeSigned   EnrichmentScore
	NegativeAbsolute EnrichmentScore

	MannWhitneyU float64
	HitCount     int

	deep *DeepData // nil unless storeDeep was requested
}

// ESProfile returns the running score recorded at each hit rank. It returns
// errDeepNotAvailable if the cohort was computed with storeDeep=false.
func (sc *EnrichmentScoreCohort) ESProfile() ([]float32, error) {
	if sc.deep == nil {
		return nil, errDeepNotAvailable
	}
	return sc.deep.ProfileAtHits, nil
}

// ESProfileFull returns the running score recorded at every rank. It returns
// errDeepNotAvailable if the cohort was computed with storeDeep=false.
func (sc *EnrichmentScoreCohort) ESProfileFull() ([]float32, error) {
	if sc.deep == nil {
		return nil, errDeepNotAvailable
	}
	return sc.deep.FullProfile, nil
}

// HitIndices returns the ranks at which hits occurred. It returns
// errDeepNotAvailable if the cohort was computed with storeDeep=false.
func (sc *EnrichmentScoreCohort) HitIndices() ([]int, error) {
	if sc.deep == nil {
		return nil, errDeepNotAvailable
	}
	return sc.deep.HitIndices, nil
}

// HasDeep reports whether deep vectors are available on this result.
func (sc *EnrichmentScoreCohort) HasDeep() bool { return sc.deep != nil }
