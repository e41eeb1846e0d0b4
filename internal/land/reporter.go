package land

import (
	"context"

	"landcheck/internal/ui"
)

// Reporter posts progress and failure messages to the PR's discussion
// thread, mirroring them on the terminal. One reporter is bound to the PR
// the check was invoked on.
type Reporter struct {
	gh    GithubClient
	owner string
	repo  string
	pr    int
}

// NewReporter creates a reporter for the given PR
func NewReporter(ghClient GithubClient, owner, repo string, prNumber int) *Reporter {
	return &Reporter{gh: ghClient, owner: owner, repo: repo, pr: prNumber}
}

// Note prints an informational message and posts it as a PR comment
func (r *Reporter) Note(ctx context.Context, msg string) error {
	ui.Info(msg)
	return r.gh.CreateComment(ctx, r.owner, r.repo, r.pr, msg)
}

// Fatal posts a failure message as a PR comment. Posting is best-effort:
// the check already failed, so a comment failure only warns.
func (r *Reporter) Fatal(ctx context.Context, msg string) {
	if err := r.gh.CreateComment(ctx, r.owner, r.repo, r.pr, msg); err != nil {
		ui.Warningf("failed to post failure comment: %v", err)
	}
}
