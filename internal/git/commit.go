package git

import (
	"regexp"
	"strconv"
	"strings"
)

// Commit represents a git commit
type Commit struct {
	Hash    string
	Title   string
	Message string
}

// NewCommit builds a Commit from a hash and its full message
func NewCommit(hash, message string) Commit {
	title := message
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		title = message[:idx]
	}
	return Commit{
		Hash:    hash,
		Title:   strings.TrimSpace(title),
		Message: message,
	}
}

// Commits produced by stacked-PR tooling carry a marker line recording the PR
// the commit was resolved from:
//
//	Pull Request resolved: https://github.com/owner/repo/pull/123
var resolvedPattern = regexp.MustCompile(`(?m)^Pull Request resolved: https?://\S+/pull/(\d+)\s*$`)

// ResolvedPullRequest extracts the PR number from the commit's resolved
// marker line. The second return value is false if the commit has no marker.
func (c Commit) ResolvedPullRequest() (int, bool) {
	m := resolvedPattern.FindStringSubmatch(c.Message)
	if m == nil {
		return 0, false
	}
	number, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return number, true
}
