package land

import (
	"fmt"
	"regexp"
	"strconv"
)

// Stacked-PR tooling names the pushed branch for each change
// gh/<author>/<index>/head, with the pre-rebase commits kept on a sibling
// gh/<author>/<index>/orig branch.
var headRefPattern = regexp.MustCompile(`^gh/([^/]+)/(\d+)/head$`)

// HeadRef identifies the head branch of a stacked PR
type HeadRef struct {
	Author string
	Index  int
}

// ParseHeadRef parses a stacked-PR head ref of the form gh/<author>/<index>/head
func ParseHeadRef(ref string) (HeadRef, error) {
	m := headRefPattern.FindStringSubmatch(ref)
	if m == nil {
		return HeadRef{}, &InvalidRefError{Ref: ref}
	}

	index, err := strconv.Atoi(m[2])
	if err != nil {
		return HeadRef{}, &InvalidRefError{Ref: ref}
	}

	return HeadRef{Author: m[1], Index: index}, nil
}

// String returns the head branch name
func (r HeadRef) String() string {
	return fmt.Sprintf("gh/%s/%d/head", r.Author, r.Index)
}

// OrigRef returns the sibling branch holding the original commits
func (r HeadRef) OrigRef() string {
	return fmt.Sprintf("gh/%s/%d/orig", r.Author, r.Index)
}
