package gsea

// Stats tallies run-level counts for a single ExecuteGsea invocation, the
// payload behind the "single error summary" spec.md §7 calls for. It
// mirrors fusion.Stats's accumulate-then-merge shape, with fields for this
// domain instead of fusion's read-pair/kmer counters.
type Stats struct {
	// SetsScored is the number of gene sets successfully scored.
	SetsScored int
	// SetsDegenerate is the number of gene sets dropped before scoring
	// because they had zero qualified members.
	SetsDegenerate int
	// PermutationsCompleted is the number of permutations that ran to
	// completion across all gene sets.
	PermutationsCompleted int
}

// Merge adds the field values of s and o and returns the sum.
func (s Stats) Merge(o Stats) Stats {
	s.SetsScored += o.SetsScored
	s.SetsDegenerate += o.SetsDegenerate
	s.PermutationsCompleted += o.PermutationsCompleted
	return s
}
