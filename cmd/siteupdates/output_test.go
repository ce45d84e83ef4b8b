package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/m-zajac/siteupdates/internal/api/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPrint(t *testing.T) {
	msg := "init"
	updates := response.Updates{
		Updated: "2024-05-01T12:00:00.000Z",
		Results: []response.RepoResult{
			{
				Repo:  "astro-kb-lu",
				Label: "docs.example.com",
				Commits: &[]response.Commit{
					{Repo: "astro-kb-lu", Label: "docs.example.com", SHA: "a1", Message: msg, URL: "https://github.com/o/r/commit/a1"},
				},
			},
		},
	}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output{format: formatJSON}.print(&buf, updates))
		assert.JSONEq(t, `{
			"updated": "2024-05-01T12:00:00.000Z",
			"results": [{
				"repo": "astro-kb-lu",
				"label": "docs.example.com",
				"commits": [{
					"repo": "astro-kb-lu",
					"label": "docs.example.com",
					"sha": "a1",
					"message": "init",
					"url": "https://github.com/o/r/commit/a1",
					"author": null,
					"date": null
				}]
			}]
		}`, buf.String())
		assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	})

	t.Run("pretty json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output{format: formatJSON, pretty: true}.print(&buf, updates))
		assert.Contains(t, buf.String(), "\n  \"results\": [")
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output{format: formatYAML}.print(&buf, updates))
		assert.Contains(t, buf.String(), "2024-05-01T12:00:00.000Z")
		assert.Contains(t, buf.String(), "sha: a1")
		assert.Contains(t, buf.String(), "author: null")
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, output{format: "xml"}.print(&buf, updates))
	})
}
