package gsea

import "math"

// setTracker holds the mutable per-gene-set running state the KS Kernel
// carries across its single pass over the ranked list.
type setTracker struct {
	score float64 // S_g
	lastVisited int // J_g, last rank visited (hit or terminal), -1 initially

	maxDevValue     float64
	maxDevRank      int
	maxDevRankScore float64

	posSignedValue     float64
	posSignedRank      int
	posSignedRankScore float64

	posAbsValue     float64
	posAbsRank      int
	posAbsRankScore float64

	negSignedValue     float64
	negSignedRank      int
	negSignedRankScore float64

	negAbsValue     float64
	negAbsRank      int
	negAbsRankScore float64

	hitIndices []int

	fullProfile   []float32 // len L, only allocated if storeDeep
	profileAtHits []float32 // only allocated if storeDeep
}

func newSetTracker(L int, storeDeep bool) *setTracker {
	t := &setTracker{
		lastVisited: -1,
		maxDevRank:  -1, posSignedRank: -1, posAbsRank: -1, negSignedRank: -1, negAbsRank: -1,
	}
	if storeDeep {
		t.fullProfile = make([]float32, L)
	}
	return t
}

// recordRegionExtrema updates the positive/negative region bests using the
// value at rank r with ranked-list score corr. Called once per rank actually
// visited (hits and the terminal pass), never for backfilled gap positions.
func (t *setTracker) recordRegionExtrema(r int, corr float64) {
	if corr > 0 {
		if t.score > t.posSignedValue {
			t.posSignedValue, t.posSignedRank, t.posSignedRankScore = t.score, r, corr
		}
		if math.Abs(t.score) > math.Abs(t.posAbsValue) {
			t.posAbsValue, t.posAbsRank, t.posAbsRankScore = t.score, r, corr
		}
	} else {
		if t.score < t.negSignedValue {
			t.negSignedValue, t.negSignedRank, t.negSignedRankScore = t.score, r, corr
		}
		if math.Abs(t.score) > math.Abs(t.negAbsValue) {
			t.negAbsValue, t.negAbsRank, t.negAbsRankScore = t.score, r, corr
		}
	}
}

// recordMaxDeviation updates the overall max-deviation best using value at
// rank r with ranked-list score corr. The comparison is strict: ties keep
// the earlier rank.
func (t *setTracker) recordMaxDeviation(r int, corr float64, value float64) {
	if math.Abs(value) > math.Abs(t.maxDevValue) {
		t.maxDevValue, t.maxDevRank, t.maxDevRankScore = value, r, corr
	}
}

// Kernel computes an EnrichmentScoreCohort for every gene set in cohort in a
// single pass over its ranked list, per spec.md §4.1.
func Kernel(cohort *GeneSetCohort, storeDeep bool) ([]*EnrichmentScoreCohort, error) {
	if cohort == nil {
		return nil, errInvalidArgument("gsea: Kernel: nil cohort")
	}
	rl := cohort.RankedList()
	L := rl.Len()
	K := cohort.NumGeneSets()

	trackers := make([]*setTracker, K)
	for gi := range trackers {
		trackers[gi] = newSetTracker(L, storeDeep)
	}

	backfill := func(g int, r int, name Feature) {
		t := trackers[g]
		gap := r - t.lastVisited - 1
		if gap <= 0 {
			return
		}
		miss := cohort.missPoints(g)
		start := t.lastVisited + 1
		base := t.score
		for j := start; j < r; j++ {
			v := base - float64(j-t.lastVisited)*miss
			if storeDeep {
				t.fullProfile[j] = float32(v)
			}
		}
		t.score -= float64(gap) * miss
		// Evaluate the max-deviation update at position r-1 using the score
		// there: this is the deepest point reached during the miss run,
		// captured without having to revisit every intermediate rank.
		t.recordMaxDeviation(r-1, rl.Score(r-1), t.score)
	}

	visitHit := func(g int, r int, name Feature) {
		t := trackers[g]
		t.lastVisited = r
		hit := cohort.hitPoints(g, name)
		if math.IsNaN(hit) || math.IsInf(hit, 0) {
			hit = fallbackWeight
		}
		t.score += hit
		t.hitIndices = append(t.hitIndices, r)
		if storeDeep {
			t.profileAtHits = append(t.profileAtHits, float32(t.score))
		}
	}

	finishRank := func(g int, r int) {
		t := trackers[g]
		corr := rl.Score(r)
		if storeDeep {
			t.fullProfile[r] = float32(t.score)
		}
		t.recordMaxDeviation(r, corr, t.score)
		t.recordRegionExtrema(r, corr)
	}

	for r := 0; r < L; r++ {
		name := rl.Name(r)
		if r < L-1 {
			touched := cohort.genesetIndicesForGene(name)
			for _, g := range touched {
				backfill(g, r, name)
				visitHit(g, r, name)
				finishRank(g, r)
			}
			continue
		}
		// Terminal pass: closing-only. Visit every gene set exactly once,
		// regardless of whether the inverted index would also report it, so
		// a set whose last-ranked feature is a qualified member is not
		// double-processed.
		for g := 0; g < K; g++ {
			backfill(g, r, name)
			if cohort.isMember(g, name) {
				visitHit(g, r, name)
			} else {
				t := trackers[g]
				t.lastVisited = r
				t.score -= cohort.missPoints(g)
			}
			finishRank(g, r)
		}
	}

	results := make([]*EnrichmentScoreCohort, K)
	for gi, t := range trackers {
		sc := &EnrichmentScoreCohort{
			MaxDeviation:     EnrichmentScore{ES: float32(t.maxDevValue), RankAtES: t.maxDevRank, RankScoreAtES: t.maxDevRankScore},
			PositiveSigned:   EnrichmentScore{ES: float32(t.posSignedValue), RankAtES: t.posSignedRank, RankScoreAtES: t.posSignedRankScore},
			PositiveAbsolute: EnrichmentScore{ES: float32(t.posAbsValue), RankAtES: t.posAbsRank, RankScoreAtES: t.posAbsRankScore},
			NegativeSigned:   EnrichmentScore{ES: float32(t.negSignedValue), RankAtES: t.negSignedRank, RankScoreAtES: t.negSignedRankScore},
			NegativeAbsolute: EnrichmentScore{ES: float32(t.negAbsValue), RankAtES: t.negAbsRank, RankScoreAtES: t.negAbsRankScore},
			MannWhitneyU:     mannWhitneyU(t.hitIndices, L),
			HitCount:         len(t.hitIndices),
		}
		if storeDeep {
			sc.deep = &DeepData{
				ProfileAtHits: t.profileAtHits,
				FullProfile:   t.fullProfile,
				HitIndices:    t.hitIndices,
			}
		}
		results[gi] = sc
	}
	return results, nil
}
