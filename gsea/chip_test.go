package gsea

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChipResolveExact(t *testing.T) {
	chip := NewChip(map[Feature][]Feature{
		"TP53": {"p53", "TRP53"},
	})
	symbol, ok := chip.Resolve("p53", 0.9)
	assert.True(t, ok)
	assert.Equal(t, Feature("TP53"), symbol)

	symbol, ok = chip.Resolve("TP53", 0.9)
	assert.True(t, ok)
	assert.Equal(t, Feature("TP53"), symbol)
}

func TestChipResolveFuzzyFallback(t *testing.T) {
	chip := NewChip(map[Feature][]Feature{
		"BRCA1": nil,
	})
	symbol, ok := chip.Resolve("BRAC1", 0.8)
	assert.True(t, ok)
	assert.Equal(t, Feature("BRCA1"), symbol)
}

func TestChipResolveBelowThreshold(t *testing.T) {
	chip := NewChip(map[Feature][]Feature{
		"BRCA1": nil,
	})
	_, ok := chip.Resolve("COMPLETELY_DIFFERENT", 0.99)
	assert.False(t, ok)
}
