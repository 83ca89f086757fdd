package gsea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteGseaDataset(t *testing.T) {
	dataset, template, gsets := smallDatasetAndTemplate()
	cfg := DefaultConfig
	cfg.EnableMarkers = true

	db, stats, err := ExecuteGseaDataset(dataset, template, gsets, 10, NewSeedGenerator(1), cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.SetsScored)
	require.Len(t, db.Results, 2)
	assert.NotNil(t, db.Markers)
	assert.Same(t, dataset, db.Dataset)
	assert.Same(t, template, db.Template)
}

func TestExecuteGseaPreranked(t *testing.T) {
	rl, err := NewRankedList(
		[]Feature{"f1", "f2", "f3", "f4"},
		[]float64{4, 3, 2, 1},
		Descending,
	)
	require.NoError(t, err)
	g, err := NewGeneSet("S1", []Feature{"f1", "f2"})
	require.NoError(t, err)
	chip := NewChip(map[Feature][]Feature{"f1": {"probe1"}})

	db, stats, err := ExecuteGseaPreranked(rl, []*GeneSet{g}, 10, NewSeedGenerator(1), chip, DefaultConfig)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.SetsScored)
	assert.Same(t, chip, db.Chip)
	assert.Nil(t, db.Dataset)
}
