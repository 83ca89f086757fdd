package gsea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallDatasetAndTemplate() (*Dataset, *Template, []*GeneSet) {
	dataset := &Dataset{
		FeatureNames: []Feature{"f1", "f2", "f3", "f4", "f5", "f6"},
		SampleNames:  []string{"s1", "s2", "s3", "s4", "s5", "s6"},
		Data: [][]float64{
			{10, 11, 9, 1, 2, 0},
			{1, 0, 2, 10, 9, 11},
			{5, 4, 6, 5, 6, 4},
			{3, 3, 4, 3, 2, 4},
			{8, 9, 7, 2, 1, 3},
			{2, 1, 3, 8, 9, 7},
		},
	}
	template := &Template{Classes: []int{0, 0, 0, 1, 1, 1}}
	g1, _ := NewGeneSet("S1", []Feature{"f1", "f5"})
	g2, _ := NewGeneSet("S2", []Feature{"f2", "f6"})
	return dataset, template, []*GeneSet{g1, g2}
}

// TestTemplateShuffleParity is scenario "template-shuffle parity": two runs
// with identical seeds must produce bit-identical rndEss matrices.
func TestTemplateShuffleParity(t *testing.T) {
	dataset, template, gsets := smallDatasetAndTemplate()

	db1, stats1, err := TemplateShuffle(dataset, template, gsets, 20, SignalToNoise, SortBySignedScore, DefaultMetricParams, NewSeedGenerator(99), NoBalanceRandomizer, NoopSink, nil)
	require.NoError(t, err)
	db2, stats2, err := TemplateShuffle(dataset, template, gsets, 20, SignalToNoise, SortBySignedScore, DefaultMetricParams, NewSeedGenerator(99), NoBalanceRandomizer, NoopSink, nil)
	require.NoError(t, err)

	require.Len(t, db1.Results, 2)
	require.Len(t, db2.Results, 2)
	for gi := range db1.Results {
		assert.Equal(t, db1.Results[gi].RndES, db2.Results[gi].RndES)
	}
	assert.Equal(t, stats1.SetsScored, stats2.SetsScored)
}

func TestTemplateShuffleDifferentSeedsDiffer(t *testing.T) {
	dataset, template, gsets := smallDatasetAndTemplate()

	db1, _, err := TemplateShuffle(dataset, template, gsets, 20, SignalToNoise, SortBySignedScore, DefaultMetricParams, NewSeedGenerator(1), NoBalanceRandomizer, NoopSink, nil)
	require.NoError(t, err)
	db2, _, err := TemplateShuffle(dataset, template, gsets, 20, SignalToNoise, SortBySignedScore, DefaultMetricParams, NewSeedGenerator(2), NoBalanceRandomizer, NoopSink, nil)
	require.NoError(t, err)

	assert.NotEqual(t, db1.Results[0].RndES, db2.Results[0].RndES)
}

func TestTemplateShuffleWithMarkers(t *testing.T) {
	dataset, template, gsets := smallDatasetAndTemplate()
	ms := NewMarkerStats()

	db, _, err := TemplateShuffle(dataset, template, gsets, 15, SignalToNoise, SortBySignedScore, DefaultMetricParams, NewSeedGenerator(3), NoBalanceRandomizer, NoopSink, ms)
	require.NoError(t, err)
	require.NotNil(t, db.Markers)
	assert.Len(t, db.Markers.Mean, dataset.NumFeatures())
}

func TestTemplateShuffleNegativeNperm(t *testing.T) {
	dataset, template, gsets := smallDatasetAndTemplate()
	_, _, err := TemplateShuffle(dataset, template, gsets, -5, SignalToNoise, SortBySignedScore, DefaultMetricParams, NewSeedGenerator(1), NoBalanceRandomizer, NoopSink, nil)
	assert.Error(t, err)
}
