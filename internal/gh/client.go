package gh

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v72/github"
)

// Client provides GitHub operations via the REST API
type Client struct {
	api *github.Client
}

// NewClient creates a new GitHub client authenticated with the given token
func NewClient(httpClient *http.Client, token string) *Client {
	return &Client{
		api: github.NewClient(httpClient).WithAuthToken(token),
	}
}

// GetPR fetches pull request details by number
func (c *Client) GetPR(ctx context.Context, owner, repo string, number int) (*PR, error) {
	pr, _, err := c.api.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch PR #%d: %w", number, err)
	}

	return &PR{
		Number:         pr.GetNumber(),
		Title:          pr.GetTitle(),
		URL:            pr.GetHTMLURL(),
		State:          strings.ToLower(pr.GetState()),
		HeadRef:        pr.GetHead().GetRef(),
		HeadSHA:        pr.GetHead().GetSHA(),
		MergeableState: strings.ToLower(pr.GetMergeableState()),
	}, nil
}

// ListReviews fetches all reviews for a pull request
func (c *Client) ListReviews(ctx context.Context, owner, repo string, number int) ([]Review, error) {
	var reviews []Review

	opts := &github.ListOptions{PerPage: 100}
	for {
		page, resp, err := c.api.PullRequests.ListReviews(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch reviews for PR #%d: %w", number, err)
		}

		for _, r := range page {
			reviews = append(reviews, Review{
				Author: r.GetUser().GetLogin(),
				State:  strings.ToLower(r.GetState()),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return reviews, nil
}

// CombinedStatus fetches the combined commit status for a ref (usually a SHA)
func (c *Client) CombinedStatus(ctx context.Context, owner, repo, ref string) ([]StatusRecord, error) {
	var records []StatusRecord

	opts := &github.ListOptions{PerPage: 100}
	for {
		combined, resp, err := c.api.Repositories.GetCombinedStatus(ctx, owner, repo, ref, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch combined status for %s: %w", ref, err)
		}

		for _, s := range combined.Statuses {
			records = append(records, StatusRecord{
				Context: s.GetContext(),
				State:   strings.ToLower(s.GetState()),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return records, nil
}

// CreateComment posts a comment on the PR's discussion thread
func (c *Client) CreateComment(ctx context.Context, owner, repo string, number int, body string) error {
	comment := &github.IssueComment{Body: github.Ptr(body)}
	if _, _, err := c.api.Issues.CreateComment(ctx, owner, repo, number, comment); err != nil {
		return fmt.Errorf("failed to comment on PR #%d: %w", number, err)
	}
	return nil
}
