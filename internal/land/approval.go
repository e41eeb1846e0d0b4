package land

import "context"

// CheckApprovals verifies that every PR in the stack has at least one
// approving review. It fails on the first PR without approval and does not
// look at the rest of the stack.
func (c *Client) CheckApprovals(ctx context.Context, stack []int) error {
	for _, prNumber := range stack {
		reviews, err := c.gh.ListReviews(ctx, c.opts.Owner, c.opts.Repo, prNumber)
		if err != nil {
			return &ReviewFetchError{PR: prNumber, Err: err}
		}

		approved := false
		for _, review := range reviews {
			if review.Approved() {
				approved = true
				break
			}
		}

		if !approved {
			return &NotApprovedError{PR: prNumber}
		}
	}

	return nil
}
