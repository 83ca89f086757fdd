package gsea

// GeneSet is an unordered collection of feature names sharing a stable id
// (e.g. "HALLMARK_APOPTOSIS"). Members may or may not appear in any given
// RankedList; only members intersecting a list ("qualified" members)
// participate in scoring.
type GeneSet struct {
	id      string
	members map[Feature]struct{}
}

// NewGeneSet builds a GeneSet from id and members. Returns an
// InvalidArgument error if members is empty.
func NewGeneSet(id string, members []Feature) (*GeneSet, error) {
	if len(members) == 0 {
		return nil, errInvalidArgument("gsea: gene set %q has no members", id)
	}
	m := make(map[Feature]struct{}, len(members))
	for _, f := range members {
		m[f] = struct{}{}
	}
	return &GeneSet{id: id, members: m}, nil
}

// ID returns the gene set's stable identifier.
func (g *GeneSet) ID() string { return g.id }

// NumMembers returns the number of distinct members in the set, regardless
// of whether they appear in any ranked list.
func (g *GeneSet) NumMembers() int { return len(g.members) }

// Has reports whether name is a member of the set.
func (g *GeneSet) Has(name Feature) bool {
	_, ok := g.members[name]
	return ok
}

// Members returns the set's member names in unspecified order.
func (g *GeneSet) Members() []Feature {
	out := make([]Feature, 0, len(g.members))
	for f := range g.members {
		out = append(out, f)
	}
	return out
}
