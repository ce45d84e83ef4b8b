package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/siteupdates/internal/api/http/mock"
	"github.com/m-zajac/siteupdates/internal/app"
	appMock "github.com/m-zajac/siteupdates/internal/app/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMux(t *testing.T) {
	t.Parallel()

	serviceDelay := time.Millisecond

	tests := []struct {
		name           string
		method         string
		path           string
		muxTimeout     time.Duration
		wantStatusCode int
	}{
		{
			name:           "valid updates request",
			method:         http.MethodGet,
			path:           UpdatesPath,
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid method",
			method:         http.MethodPost,
			path:           UpdatesPath,
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusMethodNotAllowed,
		},
		{
			name:           "invalid path",
			method:         http.MethodGet,
			path:           "/invalid_path",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mock.NewMockService(ctrl)
			service.EXPECT().
				Updates(gomock.Any()).
				DoAndReturn(func(ctx context.Context) *app.Updates {
					time.Sleep(serviceDelay)
					return &app.Updates{Updated: time.Now()}
				}).
				MaxTimes(1)

			mux := NewMux(service, tt.muxTimeout, newTestLogger())

			server := httptest.NewServer(mux)
			defer server.Close()

			req, err := http.NewRequest(tt.method, server.URL+tt.path, nil)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
		})
	}
}

func TestMuxTimeoutBetweenRepositories(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	githubCli := appMock.NewMockGithubClient(ctrl)
	githubCli.EXPECT().
		RecentCommits(gomock.Any(), "o1", "r1", gomock.Any()).
		Return([]app.Commit{{SHA: "a1"}}, nil)

	service := app.NewService(githubCli, app.Options{
		Repos: []app.RepoSpec{
			{Label: "A", Owner: "o1", Repo: "r1"},
			{Label: "B", Owner: "o2", Repo: "r2"},
		},
		Delay: app.DelayPolicy{Delay: 100 * time.Millisecond},
	}, newTestLogger())

	server := httptest.NewServer(NewMux(service, 20*time.Millisecond, newTestLogger()))
	defer server.Close()

	resp, err := http.Get(server.URL + UpdatesPath)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))

	var got struct {
		Results []struct {
			Repo    string        `json:"repo"`
			Commits []interface{} `json:"commits"`
			Error   *string       `json:"error"`
		} `json:"results"`
	}
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Results, 2)

	assert.Equal(t, "r1", got.Results[0].Repo)
	assert.Len(t, got.Results[0].Commits, 1)
	assert.Nil(t, got.Results[0].Error)

	assert.Equal(t, "r2", got.Results[1].Repo)
	assert.Nil(t, got.Results[1].Commits)
	require.NotNil(t, got.Results[1].Error)
	assert.Equal(t, context.DeadlineExceeded.Error(), *got.Results[1].Error)
}
