package app

import "time"

// RepoSpec identifies github repository polled for updates.
type RepoSpec struct {
	Label string
	Owner string
	Repo  string
}

// DefaultRepos is the list of repositories polled when nothing else is configured.
var DefaultRepos = []RepoSpec{
	{Label: "docs.tncrr.us.kg", Owner: "nczxe", Repo: "astro-kb-lu"},
	{Label: "tncrr.us.kg", Owner: "nczxe", Repo: "astro-blog-lu"},
}

// Commit entity
type Commit struct {
	Repo    string
	Label   string
	SHA     string
	Message string
	URL     string
	// Author is nil when neither commit author name nor github login is known.
	Author *string
	// Date is commit's authored timestamp as returned by github, nil if missing.
	Date *string
}

// RepoResult is the outcome of polling a single repository.
// Either Commits or Error is set, never both.
type RepoResult struct {
	Repo    string
	Label   string
	Commits []Commit
	Error   string
}

// Failed tells if repository couldn't be polled.
func (r RepoResult) Failed() bool {
	return r.Error != ""
}

// Updates entity
type Updates struct {
	Updated time.Time
	Results []RepoResult
}
