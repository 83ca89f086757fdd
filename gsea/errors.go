package gsea

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// Error kinds raised by this package. They follow the spec's three error
// kinds (InvalidArgument, GeneSetDegenerate, DeepNotAvailable), mapped onto
// grailbio/base/errors.Kind so callers can type-switch with errors.Is /
// e.(*errors.Error).Kind the same way the rest of the bio tree does.
const (
	// KindInvalidArgument covers a nil/empty cohort, an empty gene set, a
	// dataset row count mismatch, or non-finite ranked-list scores.
	KindInvalidArgument = errors.Invalid
	// KindGeneSetDegenerate is raised when a gene set has zero qualified
	// members after intersection with the ranked list.
	KindGeneSetDegenerate = errors.Precondition
)

// errInvalidArgument wraps msg as an InvalidArgument error.
func errInvalidArgument(msg string, args ...interface{}) error {
	return errors.E(KindInvalidArgument, fmt.Sprintf(msg, args...))
}

// errGeneSetDegenerate wraps msg as a GeneSetDegenerate error.
func errGeneSetDegenerate(msg string, args ...interface{}) error {
	return errors.E(KindGeneSetDegenerate, fmt.Sprintf(msg, args...))
}

// errDeepNotAvailable is returned (not panicked) when deep-only data is read
// off a result computed with storeDeep=false. Spec.md calls this a
// "programming error" but the access pattern (reading an optional field) is
// common enough at the edges of a report-generation pipeline that we surface
// it as an explicit error rather than panicking outright.
var errDeepNotAvailable = errors.E(errors.Invalid, "gsea: deep scoring vectors not available; cohort was computed with storeDeep=false")
