package gsea

import "math/rand"

// TemplateRandomizerType selects how a Template's labels are permuted to
// build one random template for the template-shuffling null model (spec.md
// §6: "TemplateRandomizerType: {no-balance, balance-within-class}").
type TemplateRandomizerType int

const (
	// NoBalanceRandomizer shuffles all sample labels freely.
	NoBalanceRandomizer TemplateRandomizerType = iota
	// BalanceWithinClassRandomizer shuffles labels only within each stratum
	// of Template.Strata, preserving any secondary grouping (e.g. batch or
	// paired-sample structure) across the permutation. With no strata
	// configured it behaves identically to NoBalanceRandomizer.
	BalanceWithinClassRandomizer
)

// RandomizeTemplate returns a new Template with labels permuted according to
// rt, drawn from rng. The input template is not modified.
func RandomizeTemplate(rt TemplateRandomizerType, template *Template, rng *rand.Rand) *Template {
	strata := template.Strata
	if rt == NoBalanceRandomizer || strata == nil {
		strata = make([]int, template.sampleCount())
	}

	groups := map[int][]int{} // stratum -> sample indices
	for i, s := range strata {
		groups[s] = append(groups[s], i)
	}

	out := &Template{Strata: template.Strata}
	if template.isContinuous() {
		out.ContinuousValues = make([]float64, len(template.ContinuousValues))
		copy(out.ContinuousValues, template.ContinuousValues)
		for _, idxs := range groups {
			shuffleFloatsAt(out.ContinuousValues, idxs, rng)
		}
		return out
	}
	out.Classes = make([]int, len(template.Classes))
	copy(out.Classes, template.Classes)
	for _, idxs := range groups {
		shuffleIntsAt(out.Classes, idxs, rng)
	}
	return out
}

// shuffleIntsAt performs a Fisher-Yates shuffle of xs restricted to the
// positions named in at.
func shuffleIntsAt(xs []int, at []int, rng *rand.Rand) {
	for i := len(at) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		xs[at[i]], xs[at[j]] = xs[at[j]], xs[at[i]]
	}
}

// shuffleFloatsAt is shuffleIntsAt's float64 counterpart.
func shuffleFloatsAt(xs []float64, at []int, rng *rand.Rand) {
	for i := len(at) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		xs[at[i]], xs[at[j]] = xs[at[j]], xs[at[i]]
	}
}
