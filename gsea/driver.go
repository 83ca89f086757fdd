package gsea

// Config bundles the driver-level options for ExecuteGseaDataset /
// ExecuteGseaPreranked, the pattern fusion.Opts/DefaultOpts and
// pileup/snp.Opts/DefaultOpts use for their own entry points: a plain struct
// plus a package-level DefaultConfig, rather than a long positional
// parameter list or process-wide flags (spec.md §9 "Global flags in
// source... replaced by explicit parameters on the driver constructor").
type Config struct {
	Metric         Metric
	SortMode       SortMode
	MetricParams   MetricParams
	RandomizerType TemplateRandomizerType
	Progress       ProgressSink
	// EnableMarkers requests a MarkerStats be built and attached to the
	// resulting EnrichmentDb.Markers (template-shuffle mode only).
	EnableMarkers bool
}

// DefaultConfig mirrors the weighted-KS default (signal-to-noise metric,
// signed-score sort, weighting exponent 1, unbalanced template shuffling,
// silent progress).
var DefaultConfig = Config{
	Metric:         SignalToNoise,
	SortMode:       SortBySignedScore,
	MetricParams:   DefaultMetricParams,
	RandomizerType: NoBalanceRandomizer,
	Progress:       NoopSink,
}

// ExecuteGseaDataset is spec.md §6's dataset+template entry point: it scores
// dataset against template with cfg.Metric to obtain the real ranked list,
// then runs the template-shuffling null model for nperm permutations.
func ExecuteGseaDataset(dataset *Dataset, template *Template, gsets []*GeneSet, nperm int, seeds RandomSeedGenerator, cfg Config) (*EnrichmentDb, *Stats, error) {
	progress := cfg.Progress
	if progress == nil {
		progress = NoopSink
	}
	var markers PermutationTest
	if cfg.EnableMarkers {
		markers = NewMarkerStats()
	}
	return TemplateShuffle(dataset, template, gsets, nperm, cfg.Metric, cfg.SortMode, cfg.MetricParams, seeds, cfg.RandomizerType, progress, markers)
}

// ExecuteGseaPreranked is spec.md §6's pre-ranked entry point: rankedList is
// taken as given (no dataset/template scoring step) and only the gene-set
// shuffling null model applies, per spec.md §9's randomizer-separation rule.
func ExecuteGseaPreranked(rankedList *RankedList, gsets []*GeneSet, nperm int, seeds RandomSeedGenerator, chip *Chip, cfg Config) (*EnrichmentDb, *Stats, error) {
	db, stats, err := GeneSetShuffle(rankedList, gsets, nperm, seeds, cfg.MetricParams)
	if err != nil {
		return nil, stats, err
	}
	db.Chip = chip
	db.Metric = cfg.Metric
	db.SortMode = cfg.SortMode
	return db, stats, nil
}
