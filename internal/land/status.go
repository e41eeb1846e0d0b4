package land

import "landcheck/internal/gh"

// BlockingSet is the set of status contexts whose failure must prevent
// landing. Contexts outside the set never affect classification.
type BlockingSet map[string]struct{}

// NewBlockingSet builds a BlockingSet from a list of context names
func NewBlockingSet(names []string) BlockingSet {
	set := make(BlockingSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether the context is land-blocking
func (s BlockingSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// StatusState is the aggregate classification of a commit's blocking checks
type StatusState int

const (
	// StatusSuccess means every land-blocking check succeeded (or none exist)
	StatusSuccess StatusState = iota
	// StatusPending means at least one land-blocking check is still running
	StatusPending
	// StatusFailed means at least one land-blocking check failed
	StatusFailed
)

// Classification is the outcome of classifying a combined status, carrying
// the offending context names for pending and failed results.
type Classification struct {
	State    StatusState
	Contexts []string
}

// Classify reduces a list of status records to a single state, considering
// only records whose context is in the blocking set. Failure takes
// precedence over pending; success carries no context names.
func Classify(records []gh.StatusRecord, blocking BlockingSet) Classification {
	var failed, pending []string

	for _, record := range records {
		if !blocking.Contains(record.Context) {
			continue
		}
		switch record.State {
		case "failure":
			failed = append(failed, record.Context)
		case "pending":
			pending = append(pending, record.Context)
		}
	}

	if len(failed) > 0 {
		return Classification{State: StatusFailed, Contexts: failed}
	}
	if len(pending) > 0 {
		return Classification{State: StatusPending, Contexts: pending}
	}
	return Classification{State: StatusSuccess}
}
