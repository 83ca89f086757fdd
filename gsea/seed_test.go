package gsea

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedGeneratorReproducible(t *testing.T) {
	g1 := NewSeedGenerator(42)
	g2 := NewSeedGenerator(42)

	for i := 0; i < 5; i++ {
		r1 := g1.ForPermutation(i)
		r2 := g2.ForPermutation(i)
		assert.Equal(t, r1.Int63(), r2.Int63())
	}
}

func TestSeedGeneratorDistinctPerPermutation(t *testing.T) {
	g := NewSeedGenerator(7)
	a := g.ForPermutation(0).Int63()
	b := g.ForPermutation(1).Int63()
	assert.NotEqual(t, a, b)
}

func TestSeedGeneratorDistinctPerSeed(t *testing.T) {
	a := NewSeedGenerator(1).ForPermutation(0).Int63()
	b := NewSeedGenerator(2).ForPermutation(0).Int63()
	assert.NotEqual(t, a, b)
}
