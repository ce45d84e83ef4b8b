package github

import (
	"testing"

	"github.com/m-zajac/siteupdates/internal/app"
	"github.com/stretchr/testify/assert"
)

func Test_commitsResponse_ToCommits(t *testing.T) {
	tests := []struct {
		name     string
		response commitsResponse
		want     []app.Commit
	}{
		{
			name:     "empty",
			response: commitsResponse{},
			want:     []app.Commit{},
		},
		{
			name:     "null",
			response: nil,
			want:     []app.Commit{},
		},
		{
			name: "author name preferred over login",
			response: commitsResponse{
				{
					SHA:     "a",
					HTMLURL: "https://x/a",
					Commit: &commitsResponseCommit{
						Message: strPtr("msg"),
						Author: &commitsResponseCommitAuthor{
							Name: strPtr("Jane"),
							Date: strPtr("2024-01-02T03:04:05Z"),
						},
					},
					Author: &commitsResponseAccount{Login: strPtr("jane")},
				},
			},
			want: []app.Commit{
				{
					SHA:     "a",
					URL:     "https://x/a",
					Message: "msg",
					Author:  strPtr("Jane"),
					Date:    strPtr("2024-01-02T03:04:05Z"),
				},
			},
		},
		{
			name: "login used when author name is missing",
			response: commitsResponse{
				{
					SHA:     "b",
					HTMLURL: "https://x/b",
					Commit: &commitsResponseCommit{
						Author: &commitsResponseCommitAuthor{},
					},
					Author: &commitsResponseAccount{Login: strPtr("jane")},
				},
			},
			want: []app.Commit{
				{
					SHA:    "b",
					URL:    "https://x/b",
					Author: strPtr("jane"),
				},
			},
		},
		{
			name: "empty author name is kept",
			response: commitsResponse{
				{
					SHA: "c",
					Commit: &commitsResponseCommit{
						Author: &commitsResponseCommitAuthor{Name: strPtr("")},
					},
					Author: &commitsResponseAccount{Login: strPtr("jane")},
				},
			},
			want: []app.Commit{
				{
					SHA:    "c",
					Author: strPtr(""),
				},
			},
		},
		{
			name: "nothing known about author",
			response: commitsResponse{
				{
					SHA: "d",
				},
			},
			want: []app.Commit{
				{
					SHA: "d",
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.response.ToCommits()
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_commitsResponse_Unmarshal(t *testing.T) {
	data := []byte(`[{"sha":"e","html_url":"https://x/e","commit":{"message":null,"author":null},"author":null}]`)

	var resp commitsResponse
	assert.NoError(t, json.Unmarshal(data, &resp))
	assert.Equal(t, []app.Commit{{SHA: "e", URL: "https://x/e"}}, resp.ToCommits())
}
