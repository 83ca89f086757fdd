package gsea

import (
	"math/rand"

	"github.com/grailbio/base/traverse"
)

// randomGeneSet draws a gene set of size q, sampled without replacement from
// universe, using rng. It performs a partial Fisher-Yates shuffle over a
// scratch copy of universe rather than touching the original slice.
func randomGeneSet(id string, universe []Feature, q int, rng *rand.Rand) *GeneSet {
	scratch := make([]Feature, len(universe))
	copy(scratch, universe)
	n := len(scratch)
	for i := 0; i < q && i < n; i++ {
		j := i + rng.Intn(n-i)
		scratch[i], scratch[j] = scratch[j], scratch[i]
	}
	members := make([]Feature, q)
	copy(members, scratch[:q])
	g, _ := NewGeneSet(id, members) // q >= 1 is guaranteed by the caller
	return g
}

// GeneSetShuffle runs the gene-set shuffling null model (spec.md §4.3): the
// real ranked list is scored once against gsets with storeDeep=true, then
// nperm random gene sets (one per real set, matched in size) are drawn from
// the ranked list's universe and scored with storeDeep=false, accumulating
// one ES column per permutation into each result's RndES.
//
// Permutations run on parallel workers via grailbio/base/traverse.Each, each
// with its own RNG sub-stream from seeds and writing to its own column of
// each result's RndES slice — satisfying spec.md §5's concurrency contract.
func GeneSetShuffle(rankedList *RankedList, gsets []*GeneSet, nperm int, seeds RandomSeedGenerator, params MetricParams) (*EnrichmentDb, *Stats, error) {
	if nperm < 0 {
		return nil, nil, errInvalidArgument("gsea: GeneSetShuffle: negative nperm %d", nperm)
	}
	p := params.weightExponent()
	realCohort, err := NewGeneSetCohort(rankedList, gsets, true, p)
	if err != nil {
		return nil, nil, err
	}
	realScores, err := Kernel(realCohort, true)
	if err != nil {
		return nil, nil, err
	}
	qualified := realCohort.GeneSets()

	stats := &Stats{SetsScored: realCohort.NumGeneSets(), SetsDegenerate: realCohort.DegenerateCount()}

	rndEss := make([][]float32, len(qualified))
	for gi := range qualified {
		rndEss[gi] = make([]float32, nperm)
	}

	universe := rankedList.Names()
	err = traverse.Each(nperm, func(c int) error {
		rng := seeds.ForPermutation(c)
		randomSets := make([]*GeneSet, len(qualified))
		for gi, g := range qualified {
			randomSets[gi] = randomGeneSet(g.ID(), universe, realCohort.numTrue(gi), rng)
		}
		rndCohort, err := realCohort.Clone(randomSets, false)
		if err != nil {
			return err
		}
		rndScores, err := Kernel(rndCohort, false)
		if err != nil {
			return err
		}
		for gi, sc := range rndScores {
			rndEss[gi][c] = sc.MaxDeviation.ES
		}
		return nil
	})
	if err != nil {
		return nil, stats, err
	}
	stats.PermutationsCompleted = nperm * len(qualified)

	db := &EnrichmentDb{
		RankedList:   rankedList,
		Results:      aggregateResults(qualified, realScores, rndEss),
		MetricParams: params,
		Order:        rankedList.Order(),
		NumPerm:      nperm,
	}
	return db, stats, nil
}
