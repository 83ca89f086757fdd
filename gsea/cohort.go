package gsea

import (
	"math"

	farm "github.com/dgryski/go-farm"
)

// fallbackWeight is substituted whenever a weight computation produces a
// zero, NaN, or infinite value (degenerate Z_g, or an all-zero-score gene
// set). Spec.md §3/§4.1 call this out explicitly for both hitPoints and the
// per-hit running-score update.
const fallbackWeight = 1e-6

// invertedIndex maps a feature name to the indices of the gene sets (within
// a single GeneSetCohort) that contain it. It is a flat, farm-hash-keyed,
// linear-probed table rather than a Go map: a GeneSetCohort is built once and
// then read millions of times (once per touched set per rank) during the KS
// kernel's single pass, so avoiding Go map's per-lookup hashing and bucket
// interface overhead matters on ranked lists with tens of thousands of
// features and cohorts with thousands of gene sets.
type invertedIndex struct {
	slots []invertedSlot
	mask  uint64
}

type invertedSlot struct {
	name     Feature
	sets     []int
	occupied bool
}

func newInvertedIndex(expectedEntries int) *invertedIndex {
	size := uint64(16)
	for size < uint64(expectedEntries)*2 {
		size *= 2
	}
	return &invertedIndex{slots: make([]invertedSlot, size), mask: size - 1}
}

func (idx *invertedIndex) hash(name Feature) uint64 {
	return farm.Hash64([]byte(name))
}

// add records that gene set gi contains name.
func (idx *invertedIndex) add(name Feature, gi int) {
	h := idx.hash(name) & idx.mask
	for {
		slot := &idx.slots[h]
		if !slot.occupied {
			slot.occupied = true
			slot.name = name
			slot.sets = []int{gi}
			return
		}
		if slot.name == name {
			slot.sets = append(slot.sets, gi)
			return
		}
		h = (h + 1) & idx.mask
	}
}

// lookup returns the gene set indices containing name, or nil if name
// belongs to no set in this cohort.
func (idx *invertedIndex) lookup(name Feature) []int {
	h := idx.hash(name) & idx.mask
	for probes := uint64(0); probes <= idx.mask; probes++ {
		slot := &idx.slots[h]
		if !slot.occupied {
			return nil
		}
		if slot.name == name {
			return slot.sets
		}
		h = (h + 1) & idx.mask
	}
	return nil
}

// geneSetWeights holds the precomputed per-set tables described in spec.md
// §3: the hit-weight of each qualified member, the scalar miss weight, and
// the qualified-member count.
type geneSetWeights struct {
	numTrue    int
	missWeight float64
	hitWeight  map[Feature]float64
}

// GeneSetCohort is the immutable binding of one RankedList and K gene sets,
// with precomputed hit/miss weights and an inverted index from feature to
// containing gene sets. It borrows its RankedList and GeneSets; their
// lifetime must outlive the cohort.
//
// Gene sets with zero qualified members are dropped during construction
// rather than failing the whole cohort (spec.md §7: the driver continues
// past one bad set, logging a single error summary); geneSets/weights/index
// only ever cover the sets that survived. degenerateCount tallies how many
// were dropped, for the caller to fold into its own Stats.SetsDegenerate.
type GeneSetCohort struct {
	rankedList      *RankedList
	geneSets        []*GeneSet
	weights         []geneSetWeights
	index           *invertedIndex
	p               float64 // metric weighting exponent
	degenerateCount int
}

// NewGeneSetCohort builds a GeneSetCohort from rankedList and gsets. If
// qualify is true, each gene set's effective membership is restricted to
// names present in rankedList before weights are computed. p is the metric's
// weighting exponent (pass 1 for the spec's default). Gene sets with zero
// qualified members are dropped and counted in DegenerateCount rather than
// failing the call; an error is returned only if every gene set in gsets
// turns out degenerate, leaving nothing to score.
func NewGeneSetCohort(rankedList *RankedList, gsets []*GeneSet, qualify bool, p float64) (*GeneSetCohort, error) {
	if rankedList == nil {
		return nil, errInvalidArgument("gsea: NewGeneSetCohort: nil ranked list")
	}
	if len(gsets) == 0 {
		return nil, errInvalidArgument("gsea: NewGeneSetCohort: no gene sets")
	}
	c := &GeneSetCohort{
		rankedList: rankedList,
		p:          p,
	}

	var qualified []*GeneSet
	var weights []geneSetWeights
	totalQualified := 0
	for _, g := range gsets {
		w, err := c.computeWeights(g, qualify)
		if err != nil {
			c.degenerateCount++
			continue
		}
		qualified = append(qualified, g)
		weights = append(weights, w)
		totalQualified += w.numTrue
	}
	if len(qualified) == 0 {
		return nil, errGeneSetDegenerate("gsea: NewGeneSetCohort: all %d gene sets were degenerate", len(gsets))
	}
	c.geneSets = qualified
	c.weights = weights

	c.index = newInvertedIndex(totalQualified)
	for gi := range qualified {
		for name := range weights[gi].hitWeight {
			c.index.add(name, gi)
		}
	}
	return c, nil
}

func (c *GeneSetCohort) computeWeights(g *GeneSet, qualify bool) (geneSetWeights, error) {
	rl := c.rankedList
	var qualifiedNames []Feature
	if qualify {
		for _, name := range g.Members() {
			if _, ok := rl.RankOf(name); ok {
				qualifiedNames = append(qualifiedNames, name)
			}
		}
	} else {
		qualifiedNames = g.Members()
	}
	numTrue := len(qualifiedNames)
	if numTrue == 0 {
		return geneSetWeights{}, errGeneSetDegenerate("gsea: gene set %q has zero qualified members", g.ID())
	}

	z := 0.0
	for _, name := range qualifiedNames {
		rank, ok := rl.RankOf(name)
		if !ok {
			continue
		}
		z += math.Pow(math.Abs(rl.Score(rank)), c.p)
	}
	if math.IsNaN(z) || math.IsInf(z, 0) || z == 0 {
		z = 0 // marker: fall back below per-member
	}

	hitWeight := make(map[Feature]float64, numTrue)
	for _, name := range qualifiedNames {
		rank, ok := rl.RankOf(name)
		if !ok {
			continue
		}
		var w float64
		if z == 0 {
			w = fallbackWeight
		} else {
			w = math.Pow(math.Abs(rl.Score(rank)), c.p) / z
			if math.IsNaN(w) || math.IsInf(w, 0) || w == 0 {
				w = fallbackWeight
			}
		}
		hitWeight[name] = w
	}

	L := rl.Len()
	missWeight := 1.0 / float64(L-numTrue)

	return geneSetWeights{numTrue: numTrue, missWeight: missWeight, hitWeight: hitWeight}, nil
}

// NumGeneSets returns the number of gene sets bound to this cohort.
func (c *GeneSetCohort) NumGeneSets() int { return len(c.geneSets) }

// RankedList returns the cohort's bound ranked list.
func (c *GeneSetCohort) RankedList() *RankedList { return c.rankedList }

// GeneSet returns the gi'th gene set bound to this cohort.
func (c *GeneSetCohort) GeneSet(gi int) *GeneSet { return c.geneSets[gi] }

// GeneSets returns the gene sets actually bound to this cohort, i.e. the
// input list passed to NewGeneSetCohort with degenerate sets dropped.
func (c *GeneSetCohort) GeneSets() []*GeneSet { return c.geneSets }

// DegenerateCount returns the number of gene sets dropped at construction
// time for having zero qualified members.
func (c *GeneSetCohort) DegenerateCount() int { return c.degenerateCount }

// isMember reports whether featureName is a qualified member of gene set gi.
func (c *GeneSetCohort) isMember(gi int, featureName Feature) bool {
	_, ok := c.weights[gi].hitWeight[featureName]
	return ok
}

// numTrue returns the number of qualified members of gene set gi.
func (c *GeneSetCohort) numTrue(gi int) int { return c.weights[gi].numTrue }

// hitPoints returns the weight added to the running score when gene set gi
// hits featureName.
func (c *GeneSetCohort) hitPoints(gi int, featureName Feature) float64 {
	return c.weights[gi].hitWeight[featureName]
}

// missPoints returns the weight subtracted per miss for gene set gi.
func (c *GeneSetCohort) missPoints(gi int) float64 {
	return c.weights[gi].missWeight
}

// genesetIndicesForGene returns the indices (into this cohort's gene set
// list) of sets containing featureName, or nil if none do.
func (c *GeneSetCohort) genesetIndicesForGene(featureName Feature) []int {
	return c.index.lookup(featureName)
}

// Clone produces a new cohort sharing this cohort's ranked list but swapping
// in newGeneSets, recomputing weights and the inverted index. This amortizes
// ranked-list setup when only gene sets change, as in gene-set shuffling
// where each permutation scores a freshly drawn random set against the same
// real ranked list.
func (c *GeneSetCohort) Clone(newGeneSets []*GeneSet, qualify bool) (*GeneSetCohort, error) {
	return NewGeneSetCohort(c.rankedList, newGeneSets, qualify, c.p)
}
