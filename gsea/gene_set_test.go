package gsea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneSet(t *testing.T) {
	g, err := NewGeneSet("S1", []Feature{"f1", "f2", "f1"})
	require.NoError(t, err)
	assert.Equal(t, "S1", g.ID())
	assert.Equal(t, 2, g.NumMembers())
	assert.True(t, g.Has("f1"))
	assert.False(t, g.Has("f3"))
}

func TestNewGeneSetEmpty(t *testing.T) {
	_, err := NewGeneSet("empty", nil)
	assert.Error(t, err)
}
