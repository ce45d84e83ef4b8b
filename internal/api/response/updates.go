// Package response defines json representation of app.Updates shared by http and grpc apis.
package response

import (
	"time"

	"github.com/m-zajac/siteupdates/internal/app"
)

// TimeFormat is ISO-8601 with millisecond precision, as produced by javascript's Date.toISOString.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Commit is a single commit in updates response.
type Commit struct {
	Repo    string  `json:"repo"`
	Label   string  `json:"label"`
	SHA     string  `json:"sha"`
	Message string  `json:"message"`
	URL     string  `json:"url"`
	Author  *string `json:"author"`
	Date    *string `json:"date"`
}

// RepoResult holds commits or error of a single repository.
// Exactly one of Commits and Error is present in json.
type RepoResult struct {
	Repo    string    `json:"repo"`
	Label   string    `json:"label"`
	Commits *[]Commit `json:"commits,omitempty"`
	Error   *string   `json:"error,omitempty"`
}

// Updates is the response document.
type Updates struct {
	Updated string       `json:"updated"`
	Results []RepoResult `json:"results"`
}

// NewUpdates converts app.Updates to its json representation.
func NewUpdates(u app.Updates) Updates {
	results := make([]RepoResult, 0, len(u.Results))
	for _, r := range u.Results {
		results = append(results, newRepoResult(r))
	}

	return Updates{
		Updated: u.Updated.UTC().Format(TimeFormat),
		Results: results,
	}
}

func newRepoResult(r app.RepoResult) RepoResult {
	result := RepoResult{
		Repo:  r.Repo,
		Label: r.Label,
	}
	if r.Failed() {
		msg := r.Error
		result.Error = &msg
		return result
	}

	commits := make([]Commit, 0, len(r.Commits))
	for _, c := range r.Commits {
		commits = append(commits, Commit{
			Repo:    c.Repo,
			Label:   c.Label,
			SHA:     c.SHA,
			Message: c.Message,
			URL:     c.URL,
			Author:  c.Author,
			Date:    c.Date,
		})
	}
	result.Commits = &commits

	return result
}

// ParseTime parses Updated field value.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(TimeFormat, s)
}
