package land

import (
	"context"
	"time"

	"landcheck/internal/gh"
	"landcheck/internal/git"
)

// GitClient defines the git operations needed by the land Client
type GitClient interface {
	FetchRef(remote, ref string) error
	CommitsBetween(base, head string) ([]git.Commit, error)
}

// GithubClient defines the GitHub operations needed by the land Client
type GithubClient interface {
	GetPR(ctx context.Context, owner, repo string, number int) (*gh.PR, error)
	ListReviews(ctx context.Context, owner, repo string, number int) ([]gh.Review, error)
	CombinedStatus(ctx context.Context, owner, repo, ref string) ([]gh.StatusRecord, error)
	CreateComment(ctx context.Context, owner, repo string, number int, body string) error
}

// Noter posts informational progress notes on the PR being checked
type Noter interface {
	Note(ctx context.Context, msg string) error
}

// Options configures a land Client
type Options struct {
	Owner    string
	Repo     string
	Remote   string        // defaults to "origin"
	Trunk    string        // defaults to "main"
	Blocking BlockingSet   // land-blocking status contexts
	MaxWait  time.Duration // defaults to 30 minutes
	Interval time.Duration // defaults to 15 seconds
	Clock    Clock         // defaults to the system clock
}

// Client drives the merge-readiness check for one stacked PR
type Client struct {
	git   GitClient
	gh    GithubClient
	noter Noter
	opts  Options
}

// NewClient creates a new land client
func NewClient(gitClient GitClient, ghClient GithubClient, noter Noter, opts Options) *Client {
	if opts.Remote == "" {
		opts.Remote = "origin"
	}
	if opts.Trunk == "" {
		opts.Trunk = "main"
	}
	if opts.MaxWait == 0 {
		opts.MaxWait = 30 * time.Minute
	}
	if opts.Interval == 0 {
		opts.Interval = defaultPollInterval
	}
	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}
	return &Client{
		git:   gitClient,
		gh:    ghClient,
		noter: noter,
		opts:  opts,
	}
}

// Run performs the full merge-readiness check: resolve the stack from commit
// history, require approval on every PR in it, then wait for the head PR's
// merge state to settle. Returns nil when the stack is ready to be landed.
func (c *Client) Run(ctx context.Context, prNumber int, headRef string) error {
	ref, err := ParseHeadRef(headRef)
	if err != nil {
		return err
	}

	stack, err := c.ResolveStack(prNumber, ref)
	if err != nil {
		return err
	}

	if err := c.CheckApprovals(ctx, stack); err != nil {
		return err
	}

	return c.PollMergeState(ctx, prNumber)
}
