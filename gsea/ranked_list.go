package gsea

import "math"

// Order describes the interpretation of a RankedList's index 0.
type Order int

const (
	// Descending means index 0 is the most extreme positive score and
	// index L-1 the most extreme negative score. This is the usual GSEA
	// convention.
	Descending Order = iota
	// Ascending is the reverse: index 0 is most extreme negative.
	Ascending
)

// Feature identifies a gene or probe by name. Equality is by string.
type Feature string

// rankedEntry is one (name, score) pair in a RankedList.
type rankedEntry struct {
	name  Feature
	score float64
}

// RankedList is an ordered sequence of (feature name, score) pairs. It is
// immutable once built: names are unique, and scores are finite.
//
// Index 0 is "most extreme" in the direction given by Order; index L-1 is
// most extreme in the opposite direction.
type RankedList struct {
	entries []rankedEntry
	order   Order
	index   map[Feature]int
}

// NewRankedList builds a RankedList from parallel name/score slices. It
// returns an InvalidArgument error if the slices differ in length, a name
// repeats, or a score is NaN or infinite.
func NewRankedList(names []Feature, scores []float64, order Order) (*RankedList, error) {
	if len(names) != len(scores) {
		return nil, errInvalidArgument("gsea: ranked list name/score length mismatch: %d names, %d scores", len(names), len(scores))
	}
	index := make(map[Feature]int, len(names))
	entries := make([]rankedEntry, len(names))
	for i, name := range names {
		score := scores[i]
		if math.IsNaN(score) || math.IsInf(score, 0) {
			return nil, errInvalidArgument("gsea: ranked list score for %q is non-finite: %v", name, score)
		}
		if _, dup := index[name]; dup {
			return nil, errInvalidArgument("gsea: ranked list contains duplicate feature name %q", name)
		}
		index[name] = i
		entries[i] = rankedEntry{name: name, score: score}
	}
	return &RankedList{entries: entries, order: order, index: index}, nil
}

// Len returns the number of features in the list.
func (rl *RankedList) Len() int { return len(rl.entries) }

// Order returns the sort order the list was constructed with.
func (rl *RankedList) Order() Order { return rl.order }

// Name returns the feature name at rank i.
func (rl *RankedList) Name(i int) Feature { return rl.entries[i].name }

// Score returns the correlation score at rank i.
func (rl *RankedList) Score(i int) float64 { return rl.entries[i].score }

// RankOf returns the rank of name and true, or (0, false) if name is not in
// the list.
func (rl *RankedList) RankOf(name Feature) (int, bool) {
	i, ok := rl.index[name]
	return i, ok
}

// Names returns a copy of the ordered feature names.
func (rl *RankedList) Names() []Feature {
	names := make([]Feature, len(rl.entries))
	for i, e := range rl.entries {
		names[i] = e.name
	}
	return names
}
