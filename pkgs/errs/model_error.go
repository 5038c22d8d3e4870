// Package errs holds the two error families the system raises: ModelError
// at Model-construction time, and ParseError during tokenization.
package errs

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ModelError reports a fatal failure while resolving a Model description:
// a missing region, state, group, or template reference. It is raised
// once, at construction time, distinct from the per-parse ParseError
// family.
type ModelError struct {
	// Kind names what was being resolved: "region", "state", "group", or
	// "template".
	Kind string
	// Reference is the dotted/colon path that failed to resolve, e.g.
	// "toplevel:afterColon" or "selector:type".
	Reference string
	// Candidates is the set of known names in the same namespace, used to
	// compute a nearest-match suggestion.
	Candidates []string
}

// NewModelError builds a ModelError, recording candidates over which
// Error computes a nearest-match suggestion with
// github.com/lithammer/fuzzysearch. A missing
// reference in a hand-authored grammar description is almost always a
// typo, and a bare "not found" is not actionable on its own.
func NewModelError(kind, reference string, candidates []string) *ModelError {
	return &ModelError{Kind: kind, Reference: reference, Candidates: candidates}
}

func (e *ModelError) Error() string {
	msg := fmt.Sprintf("unresolved %s reference %q", e.Kind, e.Reference)
	if suggestion := e.suggestion(); suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return msg
}

// suggestion returns the candidate closest to the failed reference's last
// path segment by edit distance, or "" when nothing is close enough to be
// a plausible typo. Edit distance rather than fuzzy subsequence matching:
// the common grammar-authoring mistake is a transposition ("staet" for
// "state"), which is not a subsequence of the intended name.
func (e *ModelError) suggestion() string {
	segment := e.Reference
	if idx := strings.LastIndexByte(segment, ':'); idx >= 0 {
		segment = segment[idx+1:]
	}

	limit := 1 + len(segment)/3
	best := ""
	bestDist := -1
	for _, c := range e.Candidates {
		dist := fuzzy.LevenshteinDistance(segment, c)
		if dist > limit {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			bestDist = dist
			best = c
		}
	}
	return best
}
