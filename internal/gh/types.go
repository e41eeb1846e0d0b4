package gh

// PR contains the pull request fields landcheck consumes
type PR struct {
	Number         int    // PR number
	Title          string // PR title
	URL            string // PR URL
	State          string // "open", "closed"
	HeadRef        string // head branch name
	HeadSHA        string // SHA of the head commit
	MergeableState string // "unknown", "unstable", "blocked", "dirty", "clean", ...
}

// Review is a single pull request review
type Review struct {
	Author string
	State  string // "approved", "changes_requested", "commented", ...
}

// Approved reports whether the review approves the PR
func (r Review) Approved() bool {
	return r.State == "approved"
}

// StatusRecord is one entry of a commit's combined status
type StatusRecord struct {
	Context string // check name, e.g. "ci/build"
	State   string // "success", "pending", "failure", "error"
}
