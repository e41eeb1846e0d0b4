package land

import (
	"fmt"
	"strings"
	"time"
)

// InvalidRefError indicates the head ref does not follow the stacked-branch
// naming scheme.
type InvalidRefError struct {
	Ref string
}

func (e *InvalidRefError) Error() string {
	return fmt.Sprintf("invalid head ref %q: expected gh/<author>/<index>/head", e.Ref)
}

// FetchError indicates a remote fetch failed.
type FetchError struct {
	Ref string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Ref, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// LogError indicates the commit-range enumeration failed.
type LogError struct {
	Base string
	Head string
	Err  error
}

func (e *LogError) Error() string {
	return fmt.Sprintf("failed to enumerate commits between %s and %s: %v", e.Base, e.Head, e.Err)
}

func (e *LogError) Unwrap() error { return e.Err }

// StackMismatchError indicates the resolved stack does not start with the PR
// the command was invoked on.
type StackMismatchError struct {
	Want     int
	Resolved []int
}

func (e *StackMismatchError) Error() string {
	if len(e.Resolved) == 0 {
		return fmt.Sprintf("no resolved pull requests found in commit history for PR #%d", e.Want)
	}
	return fmt.Sprintf("resolved stack %v does not start with PR #%d", e.Resolved, e.Want)
}

// ReviewFetchError indicates the review list could not be retrieved.
type ReviewFetchError struct {
	PR  int
	Err error
}

func (e *ReviewFetchError) Error() string {
	return fmt.Sprintf("failed to fetch reviews for PR #%d: %v", e.PR, e.Err)
}

func (e *ReviewFetchError) Unwrap() error { return e.Err }

// NotApprovedError indicates a PR in the stack has no approving review.
type NotApprovedError struct {
	PR int
}

func (e *NotApprovedError) Error() string {
	return fmt.Sprintf("PR #%d has not been approved yet", e.PR)
}

// StatusFetchError indicates the merge state or combined status could not be
// retrieved.
type StatusFetchError struct {
	PR  int
	Err error
}

func (e *StatusFetchError) Error() string {
	return fmt.Sprintf("failed to fetch merge status for PR #%d: %v", e.PR, e.Err)
}

func (e *StatusFetchError) Unwrap() error { return e.Err }

// TimeoutError indicates the poll loop exceeded the configured maximum wait.
type TimeoutError struct {
	PR     int
	Waited time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for checks on PR #%d", e.Waited, e.PR)
}

// BlockedError indicates the PR is blocked from merging.
type BlockedError struct {
	PR int
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("PR #%d is blocked from merging", e.PR)
}

// DirtyError indicates the PR has merge conflicts.
type DirtyError struct {
	PR int
}

func (e *DirtyError) Error() string {
	return fmt.Sprintf("PR #%d has merge conflicts", e.PR)
}

// ChecksFailedError indicates one or more land-blocking checks failed.
type ChecksFailedError struct {
	PR       int
	Contexts []string
}

func (e *ChecksFailedError) Error() string {
	return fmt.Sprintf("land-blocking checks failed for PR #%d: %s", e.PR, strings.Join(e.Contexts, ", "))
}

// UnexpectedStateError indicates the remote reported a mergeable state the
// poller does not recognize.
type UnexpectedStateError struct {
	PR    int
	State string
}

func (e *UnexpectedStateError) Error() string {
	return fmt.Sprintf("unexpected mergeable state %q for PR #%d", e.State, e.PR)
}
