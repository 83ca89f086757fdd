package gsea

import (
	"sync"
	"sync/atomic"

	"github.com/grailbio/base/traverse"
)

// TemplateShuffle runs the phenotype/template shuffling null model (spec.md
// §4.3): the real ranked list is produced once via ScoreDataset and scored
// with storeDeep=true, then nperm random templates are drawn via rt,
// re-scored against dataset, and scored with storeDeep=false, one ES column
// per permutation.
//
// markers, if non-nil, receives every randomized (template, rankedList) pair
// via AddRnd and is finalized with DoCalc before TemplateShuffle returns.
// progress, if non-nil, is notified every LogFreq permutations.
func TemplateShuffle(
	dataset *Dataset,
	template *Template,
	gsets []*GeneSet,
	nperm int,
	metric Metric,
	sortMode SortMode,
	params MetricParams,
	seeds RandomSeedGenerator,
	rt TemplateRandomizerType,
	progress ProgressSink,
	markers PermutationTest,
) (*EnrichmentDb, *Stats, error) {
	if nperm < 0 {
		return nil, nil, errInvalidArgument("gsea: TemplateShuffle: negative nperm %d", nperm)
	}
	order := Descending
	p := params.weightExponent()

	realRankedList, err := ScoreDataset(metric, sortMode, order, params, dataset, template)
	if err != nil {
		return nil, nil, err
	}
	realCohort, err := NewGeneSetCohort(realRankedList, gsets, true, p)
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

	if progress == nil {
		progress = NoopSink
	}
	var markersMu sync.Mutex
	var completed int64

	err = traverse.Each(nperm, func(c int) error {
		rng := seeds.ForPermutation(c)
		rndTemplate := RandomizeTemplate(rt, template, rng)
		rndRankedList, err := ScoreDataset(metric, sortMode, order, params, dataset, rndTemplate)
		if err != nil {
			return err
		}
		rndCohort, err := NewGeneSetCohort(rndRankedList, qualified, true, p)
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
		if markers != nil {
			markersMu.Lock()
			markers.AddRnd(rndTemplate, rndRankedList)
			markersMu.Unlock()
		}
		if done := atomic.AddInt64(&completed, 1); done%LogFreq == 0 {
			progress.OnProgress(int(done), nperm, "template")
		}
		return nil
	})
	if err != nil {
		return nil, stats, err
	}
	if markers != nil {
		markers.DoCalc()
	}
	stats.PermutationsCompleted = nperm * len(qualified)

	db := &EnrichmentDb{
		RankedList:   realRankedList,
		Dataset:      dataset,
		Template:     template,
		Results:      aggregateResults(qualified, realScores, rndEss),
		Metric:       metric,
		SortMode:     sortMode,
		Order:        order,
		MetricParams: params,
		NumPerm:      nperm,
	}
	if ms, ok := markers.(*MarkerStats); ok {
		db.Markers = ms
	}
	return db, stats, nil
}
