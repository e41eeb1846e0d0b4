package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// Client provides git operations for a repository
type Client struct {
	gitRoot string
}

// NewClient creates a new git client for the current directory
func NewClient() (*Client, error) {
	gitRoot, err := getGitRoot()
	if err != nil {
		return nil, err
	}
	return &Client{gitRoot: gitRoot}, nil
}

// GitRoot returns the root directory of the git repository
func (c *Client) GitRoot() string {
	return c.gitRoot
}

// FetchRef fetches a single branch from the remote into the matching
// remote-tracking ref, so it can be addressed as "<remote>/<ref>" afterwards.
func (c *Client) FetchRef(remote, ref string) error {
	refspec := fmt.Sprintf("+refs/heads/%s:refs/remotes/%s/%s", ref, remote, ref)
	cmd := exec.Command("git", "fetch", remote, refspec)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to fetch %s from %s: %w\nOutput: %s", ref, remote, err, string(output))
	}
	return nil
}

// MergeBase returns the most recent common ancestor of two refs
func (c *Client) MergeBase(a, b string) (string, error) {
	cmd := exec.Command("git", "merge-base", a, b)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to compute merge-base of %s and %s: %w", a, b, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CommitsBetween returns the commits on head that are not reachable from the
// merge-base of base and head, oldest first.
func (c *Client) CommitsBetween(base, head string) ([]Commit, error) {
	mergeBase, err := c.MergeBase(base, head)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command("git", "rev-list", "--reverse", fmt.Sprintf("%s..%s", mergeBase, head))
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to list commits %s..%s: %w", mergeBase, head, err)
	}

	hashes := strings.Split(strings.TrimSpace(string(output)), "\n")
	if len(hashes) == 1 && hashes[0] == "" {
		return []Commit{}, nil
	}

	commits := make([]Commit, 0, len(hashes))
	for _, hash := range hashes {
		commit, err := c.GetCommit(hash)
		if err != nil {
			return nil, err
		}
		commits = append(commits, commit)
	}

	return commits, nil
}

// GetCommit returns a commit by hash
func (c *Client) GetCommit(hash string) (Commit, error) {
	cmd := exec.Command("git", "log", "--format=%B", "-n", "1", hash)
	output, err := cmd.Output()
	if err != nil {
		return Commit{}, fmt.Errorf("failed to get commit %s: %w", hash, err)
	}
	return NewCommit(hash, string(output)), nil
}

// getGitRoot is a private helper to get the git root directory
func getGitRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}
