package gsea

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsMerge(t *testing.T) {
	a := Stats{SetsScored: 3, SetsDegenerate: 1, PermutationsCompleted: 100}
	b := Stats{SetsScored: 2, SetsDegenerate: 0, PermutationsCompleted: 50}
	c := a.Merge(b)
	assert.Equal(t, 5, c.SetsScored)
	assert.Equal(t, 1, c.SetsDegenerate)
	assert.Equal(t, 150, c.PermutationsCompleted)

	// Merge must not mutate its receiver's argument.
	assert.Equal(t, 3, a.SetsScored)
}
