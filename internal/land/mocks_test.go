package land

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"

	"landcheck/internal/gh"
	"landcheck/internal/git"
)

type MockGithubClient struct {
	mock.Mock
}

// GetPR implements GithubClient.
func (m *MockGithubClient) GetPR(ctx context.Context, owner, repo string, number int) (*gh.PR, error) {
	args := m.Called(ctx, owner, repo, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gh.PR), args.Error(1)
}

// ListReviews implements GithubClient.
func (m *MockGithubClient) ListReviews(ctx context.Context, owner, repo string, number int) ([]gh.Review, error) {
	args := m.Called(ctx, owner, repo, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gh.Review), args.Error(1)
}

// CombinedStatus implements GithubClient.
func (m *MockGithubClient) CombinedStatus(ctx context.Context, owner, repo, ref string) ([]gh.StatusRecord, error) {
	args := m.Called(ctx, owner, repo, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gh.StatusRecord), args.Error(1)
}

// CreateComment implements GithubClient.
func (m *MockGithubClient) CreateComment(ctx context.Context, owner, repo string, number int, body string) error {
	args := m.Called(ctx, owner, repo, number, body)
	return args.Error(0)
}

type MockGitClient struct {
	mock.Mock
}

// FetchRef implements GitClient.
func (m *MockGitClient) FetchRef(remote, ref string) error {
	args := m.Called(remote, ref)
	return args.Error(0)
}

// CommitsBetween implements GitClient.
func (m *MockGitClient) CommitsBetween(base, head string) ([]git.Commit, error) {
	args := m.Called(base, head)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]git.Commit), args.Error(1)
}

// fakeClock advances its notion of now by the slept duration, so poll loops
// simulate elapsed time without real waiting.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

// fakeNoter records notes instead of posting comments
type fakeNoter struct {
	notes []string
}

func (n *fakeNoter) Note(ctx context.Context, msg string) error {
	n.notes = append(n.notes, msg)
	return nil
}

func newTestClient(gitClient GitClient, ghClient GithubClient, noter Noter, opts Options) *Client {
	if opts.Owner == "" {
		opts.Owner = "octo"
	}
	if opts.Repo == "" {
		opts.Repo = "widgets"
	}
	if opts.Clock == nil {
		opts.Clock = newFakeClock()
	}
	return NewClient(gitClient, ghClient, noter, opts)
}

func resolvedCommit(hash, title string, prNumber int) git.Commit {
	message := fmt.Sprintf("%s\n\nSome details.\n\nPull Request resolved: https://github.com/octo/widgets/pull/%d\n",
		title, prNumber)
	return git.NewCommit(hash, message)
}
