package github

import (
	"github.com/m-zajac/siteupdates/internal/app"
)

type commitsResponse []commitsResponseItem

type commitsResponseItem struct {
	SHA     string                  `json:"sha"`
	HTMLURL string                  `json:"html_url"`
	Commit  *commitsResponseCommit  `json:"commit"`
	Author  *commitsResponseAccount `json:"author"`
}

type commitsResponseCommit struct {
	Message *string                      `json:"message"`
	Author  *commitsResponseCommitAuthor `json:"author"`
}

type commitsResponseCommitAuthor struct {
	Name *string `json:"name"`
	Date *string `json:"date"`
}

type commitsResponseAccount struct {
	Login *string `json:"login"`
}

func (r commitsResponse) ToCommits() []app.Commit {
	cs := make([]app.Commit, 0, len(r))
	for _, i := range r {
		cs = append(cs, i.toCommit())
	}

	return cs
}

func (i commitsResponseItem) toCommit() app.Commit {
	c := app.Commit{
		SHA: i.SHA,
		URL: i.HTMLURL,
	}

	// Author falls back from commit author name to github account login.
	if i.Commit != nil {
		if i.Commit.Message != nil {
			c.Message = *i.Commit.Message
		}
		if i.Commit.Author != nil {
			c.Author = i.Commit.Author.Name
			c.Date = i.Commit.Author.Date
		}
	}
	if c.Author == nil && i.Author != nil {
		c.Author = i.Author.Login
	}

	return c
}
