package http

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/siteupdates/internal/api/http/mock"
	"github.com/m-zajac/siteupdates/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = ioutil.Discard
	return l
}

func TestNewUpdatesHandler(t *testing.T) {
	t.Parallel()

	updated := time.Date(2024, 1, 2, 3, 4, 5, 6000000, time.UTC)

	tests := []struct {
		name            string
		setupMock       func(*mock.MockService)
		wantStatus      int
		wantBody        string
		wantContentType string
	}{
		{
			name: "no repositories",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Updates(gomock.Any()).
					Return(&app.Updates{Updated: updated})
			},
			wantStatus:      http.StatusOK,
			wantBody:        `{"updated":"2024-01-02T03:04:05.006Z","results":[]}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "service without updates",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Updates(gomock.Any()).
					Return(nil)
			},
			wantStatus:      http.StatusInternalServerError,
			wantContentType: "text/plain; charset=utf-8",
		},
		{
			name: "commits and repository errors",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Updates(gomock.Any()).
					Return(
						&app.Updates{
							Updated: updated,
							Results: []app.RepoResult{
								{
									Repo:  "r1",
									Label: "A",
									Commits: []app.Commit{
										{Repo: "r1", Label: "A", SHA: "abc", Message: "init", URL: "https://u", Author: strPtr("Ann"), Date: strPtr("2024-01-01T00:00:00Z")},
									},
								},
								{
									Repo:  "r2",
									Label: "B",
									Error: "GitHub API 404",
								},
							},
						},
					)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"updated":"2024-01-02T03:04:05.006Z","results":[` +
				`{"repo":"r1","label":"A","commits":[{"repo":"r1","label":"A","sha":"abc","message":"init","url":"https://u","author":"Ann","date":"2024-01-01T00:00:00Z"}]},` +
				`{"repo":"r2","label":"B","error":"GitHub API 404"}]}`,
			wantContentType: "application/json; charset=utf-8",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(s)
			}

			handler := NewUpdatesHandler(s, newTestLogger())
			req, _ := http.NewRequest(http.MethodGet, "testurl", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantContentType, w.Header().Get("Content-type"))

			body := w.Body.String()
			body = strings.Trim(body, "\n")
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
