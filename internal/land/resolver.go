package land

import "fmt"

// ResolveStack derives the ordered stack of PR numbers the given PR depends
// on. It fetches the trunk branch and the stacked branch's orig ref, then
// scans the commit range between the orig ref and its merge-base with trunk
// for resolved-PR marker lines, oldest commit first.
//
// The first resolved number must equal prNumber; anything else means the
// command was invoked on the wrong commit and the stack is considered
// corrupt.
func (c *Client) ResolveStack(prNumber int, ref HeadRef) ([]int, error) {
	if err := c.git.FetchRef(c.opts.Remote, c.opts.Trunk); err != nil {
		return nil, &FetchError{Ref: c.opts.Trunk, Err: err}
	}

	orig := ref.OrigRef()
	if err := c.git.FetchRef(c.opts.Remote, orig); err != nil {
		return nil, &FetchError{Ref: orig, Err: err}
	}

	trunkRef := fmt.Sprintf("%s/%s", c.opts.Remote, c.opts.Trunk)
	origRef := fmt.Sprintf("%s/%s", c.opts.Remote, orig)

	commits, err := c.git.CommitsBetween(trunkRef, origRef)
	if err != nil {
		return nil, &LogError{Base: trunkRef, Head: origRef, Err: err}
	}

	var stack []int
	for _, commit := range commits {
		if number, ok := commit.ResolvedPullRequest(); ok {
			stack = append(stack, number)
		}
	}

	if len(stack) == 0 || stack[0] != prNumber {
		return nil, &StackMismatchError{Want: prNumber, Resolved: stack}
	}

	return stack, nil
}
