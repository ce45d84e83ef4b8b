package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/m-zajac/siteupdates/internal/app"
)

// CachedClient wraps github client with caching layer.
// Only successful responses are cached.
type CachedClient struct {
	client       app.GithubClient
	commitsCache *lru.Cache
	ttl          time.Duration
}

var _ app.GithubClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.GithubClient, size int, ttl time.Duration) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	if ttl <= 0 {
		return nil, errors.New("cache ttl must be greater than 0")
	}
	commitsCache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for commits: %w", err)
	}

	return &CachedClient{
		client:       client,
		commitsCache: commitsCache,
		ttl:          ttl,
	}, nil
}

// RecentCommits returns recent commits of given repository.
func (c *CachedClient) RecentCommits(ctx context.Context, owner string, repo string, count int) ([]app.Commit, error) {
	key := c.commitsCacheKey(owner, repo)
	val, ok := c.commitsCache.Get(key)
	if ok {
		entry := val.(commitsCacheEntry)
		if entry.count >= count && entry.created.Add(c.ttl).After(time.Now()) {
			commits := entry.data
			if len(commits) > count {
				commits = commits[:count]
			}
			return append([]app.Commit(nil), commits...), nil
		}
	}

	commits, err := c.client.RecentCommits(ctx, owner, repo, count)
	if err != nil {
		return commits, err
	}

	entry := commitsCacheEntry{
		created: time.Now(),
		count:   count,
		data:    append([]app.Commit(nil), commits...),
	}
	c.commitsCache.Add(key, entry)

	return commits, nil
}

func (c *CachedClient) commitsCacheKey(owner string, repo string) string {
	return owner + "/" + repo
}

type commitsCacheEntry struct {
	created time.Time
	count   int
	data    []app.Commit
}
