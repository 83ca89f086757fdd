package gsea

import "github.com/grailbio/base/log"

// LogFreq is how often (in permutation iterations) the template-shuffling
// driver reports progress: spec.md §4.3 "every LOG_FREQ=5 iterations". The
// gene-set shuffling driver reports no progress.
const LogFreq = 5

// ProgressSink receives periodic progress notifications during permutation
// scoring. Implementations must be safe to call from multiple goroutines,
// since permutations may run on independent workers (spec.md §5).
type ProgressSink interface {
	// OnProgress reports that iter of total permutations have completed for
	// the given label (e.g. a gene set id or "template").
	OnProgress(iter, total int, label string)
}

// noopSink discards all progress notifications; it is the default for
// silent operation.
type noopSink struct{}

func (noopSink) OnProgress(iter, total int, label string) {}

// NoopSink is the no-op ProgressSink used when no progress stream is
// configured.
var NoopSink ProgressSink = noopSink{}

// LogSink reports progress via github.com/grailbio/base/log, mirroring the
// one-line progress messages pileup/snp.pileupSNPMain emits during its own
// sharded main loop.
type LogSink struct{}

// OnProgress logs a single line through the ambient grailbio/base/log
// logger.
func (LogSink) OnProgress(iter, total int, label string) {
	log.Printf("gsea: %s: %d/%d permutations complete", label, iter, total)
}
