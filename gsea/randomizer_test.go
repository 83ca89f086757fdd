package gsea

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomizeTemplatePreservesClassCounts(t *testing.T) {
	template := &Template{Classes: []int{0, 0, 0, 1, 1, 1, 1}}
	rng := rand.New(rand.NewSource(1))
	rnd := RandomizeTemplate(NoBalanceRandomizer, template, rng)

	assert.Len(t, rnd.Classes, 7)
	var zeros, ones int
	for _, c := range rnd.Classes {
		if c == 0 {
			zeros++
		} else {
			ones++
		}
	}
	assert.Equal(t, 3, zeros)
	assert.Equal(t, 4, ones)
	// Original must be untouched.
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1, 1}, template.Classes)
}

func TestRandomizeTemplateContinuous(t *testing.T) {
	template := &Template{ContinuousValues: []float64{1, 2, 3, 4, 5}}
	rng := rand.New(rand.NewSource(1))
	rnd := RandomizeTemplate(NoBalanceRandomizer, template, rng)

	sorted := append([]float64{}, rnd.ContinuousValues...)
	sort.Float64s(sorted)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, sorted)
}

func TestRandomizeTemplateBalanceWithinStrata(t *testing.T) {
	template := &Template{
		Classes: []int{0, 1, 0, 1},
		Strata:  []int{0, 0, 1, 1},
	}
	rng := rand.New(rand.NewSource(1))
	rnd := RandomizeTemplate(BalanceWithinClassRandomizer, template, rng)

	// Each stratum's label multiset must be preserved: stratum 0 is indices
	// {0,1}, stratum 1 is indices {2,3}; each started as one 0 and one 1.
	assert.ElementsMatch(t, []int{0, 1}, []int{rnd.Classes[0], rnd.Classes[1]})
	assert.ElementsMatch(t, []int{0, 1}, []int{rnd.Classes[2], rnd.Classes[3]})
}

func TestRandomizeTemplateNoStrataFallsBackToFreeShuffle(t *testing.T) {
	template := &Template{Classes: []int{0, 1, 0, 1}}
	rng := rand.New(rand.NewSource(2))
	rnd := RandomizeTemplate(BalanceWithinClassRandomizer, template, rng)
	var zeros int
	for _, c := range rnd.Classes {
		if c == 0 {
			zeros++
		}
	}
	assert.Equal(t, 2, zeros)
}
