package github

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/siteupdates/internal/app"
)

// DefaultUserAgent is sent with every github api request unless configured otherwise.
const DefaultUserAgent = "site-updates-fetcher"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns recent commits of github repositories.
// This struct is an adapter for app.GithubClient.
type Client struct {
	doer      HTTPDoer
	address   string
	authToken string
	userAgent string

	commitsResponseMaxSize int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// authToken is optional, empty userAgent means DefaultUserAgent.
func NewClient(doer HTTPDoer, address string, authToken string, userAgent string) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		doer:      doer,
		address:   address,
		authToken: authToken,
		userAgent: userAgent,

		commitsResponseMaxSize: 1024 * 1024 * 10,
	}
}

// RecentCommits returns up to count most recent commits from default branch of owner/repo.
//
// Non 2xx github response is returned as *app.UpstreamStatusError.
func (c *Client) RecentCommits(ctx context.Context, owner string, repo string, count int) ([]app.Commit, error) {
	if owner == "" {
		return nil, app.InvalidRequestError("repository owner cannot be empty")
	}
	if repo == "" {
		return nil, app.InvalidRequestError("repository name cannot be empty")
	}
	if count < 1 || count > 100 {
		return nil, app.InvalidRequestError("count must be in range <1..100>")
	}

	u, err := url.Parse(c.address + fmt.Sprintf("/repos/%s/%s/commits", url.PathEscape(owner), url.PathEscape(repo)))
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	v := make(url.Values)
	v.Set("per_page", strconv.Itoa(count))
	u.RawQuery = v.Encode()

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	body, err := c.makeRequest(ctx, httpReq, c.commitsResponseMaxSize)
	if err != nil {
		return nil, err
	}

	var resp commitsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshalling response: %w", err)
	}

	return resp.ToCommits(), nil
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request, maxBytes int) ([]byte, error) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "token "+c.authToken)
	}

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		_, _ = io.CopyN(ioutil.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &app.UpstreamStatusError{
			StatusCode:  resp.StatusCode,
			RateLimited: c.checkRateLimitExceeded(&resp.Header),
		}
	}

	b, err := ioutil.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)))
	if err != nil {
		return nil, fmt.Errorf("reading http response body: %w", err)
	}

	return b, nil
}

func (c *Client) checkRateLimitExceeded(h *http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}
	return false
}
