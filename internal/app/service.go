package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultCommitsPerRepo is the number of most recent commits fetched for every repository.
const DefaultCommitsPerRepo = 6

// GithubClient returns recent commits of github repositories.
//
//go:generate mockgen -destination mock/githubcli.go -package mock github.com/m-zajac/siteupdates/internal/app GithubClient
type GithubClient interface {
	RecentCommits(ctx context.Context, owner string, repo string, count int) ([]Commit, error)
}

// DelayMode decides after which repositories the service pauses.
type DelayMode int

const (
	// DelayAlways pauses after every repository.
	DelayAlways DelayMode = iota
	// DelayOnError pauses only after repository that failed.
	DelayOnError
)

// ParseDelayMode parses DelayMode from its string name.
func ParseDelayMode(s string) (DelayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "always":
		return DelayAlways, nil
	case "on-error", "onerror":
		return DelayOnError, nil
	default:
		return DelayAlways, fmt.Errorf("unknown delay mode %q", s)
	}
}

func (m DelayMode) String() string {
	if m == DelayOnError {
		return "on-error"
	}
	return "always"
}

// DelayPolicy describes pause between consecutive github calls.
type DelayPolicy struct {
	Delay time.Duration
	Mode  DelayMode
}

func (p DelayPolicy) after(failed bool) time.Duration {
	if p.Mode == DelayOnError && !failed {
		return 0
	}
	return p.Delay
}

// Options configures Service.
type Options struct {
	// Repos - polled repositories, results are returned in the same order.
	Repos []RepoSpec
	// CommitsPerRepo - number of commits requested for every repository.
	CommitsPerRepo int
	// FetchTimeout - limit for a single repository call. Zero means no limit.
	FetchTimeout time.Duration
	// Delay - pause between repositories.
	Delay DelayPolicy
}

// DefaultOptions returns options matching the deployed widget configuration.
func DefaultOptions() Options {
	repos := make([]RepoSpec, len(DefaultRepos))
	copy(repos, DefaultRepos)

	return Options{
		Repos:          repos,
		CommitsPerRepo: DefaultCommitsPerRepo,
		FetchTimeout:   10 * time.Second,
		Delay: DelayPolicy{
			Delay: 500 * time.Millisecond,
			Mode:  DelayAlways,
		},
	}
}

// Service is main apps entry point. Provides all app functionality.
type Service struct {
	githubClient GithubClient
	opts         Options
	l            logrus.FieldLogger

	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

// NewService creates new Service instance.
func NewService(githubClient GithubClient, opts Options, l logrus.FieldLogger) *Service {
	if opts.CommitsPerRepo <= 0 {
		opts.CommitsPerRepo = DefaultCommitsPerRepo
	}

	return &Service{
		githubClient: githubClient,
		opts:         opts,
		l:            l,
		now:          time.Now,
		sleep:        sleep,
	}
}

// Updates polls configured repositories one by one and returns their recent commits.
//
// Failure of a single repository is reported in its RepoResult and doesn't stop the loop.
// When ctx is done, remaining repositories are not called and get ctx error as their result.
func (s *Service) Updates(ctx context.Context) *Updates {
	results := make([]RepoResult, 0, len(s.opts.Repos))
	for i, repo := range s.opts.Repos {
		result := s.poll(ctx, repo)
		results = append(results, result)

		if i == len(s.opts.Repos)-1 {
			break
		}
		if d := s.opts.Delay.after(result.Failed()); d > 0 {
			if err := s.sleep(ctx, d); err != nil {
				s.l.Warnf("waiting before next repository: %v", err)
			}
		}
	}

	return &Updates{
		Updated: s.now().UTC(),
		Results: results,
	}
}

func (s *Service) poll(ctx context.Context, repo RepoSpec) RepoResult {
	result := RepoResult{
		Repo:  repo.Repo,
		Label: repo.Label,
	}

	if err := ctx.Err(); err != nil {
		s.l.Warnf("skipping %s: %v", repo.Repo, err)
		result.Error = err.Error()
		return result
	}

	commits, err := Bounded(ctx, s.opts.FetchTimeout, func(ctx context.Context) ([]Commit, error) {
		return s.githubClient.RecentCommits(ctx, repo.Owner, repo.Repo, s.opts.CommitsPerRepo)
	})
	if err != nil {
		var statusErr *UpstreamStatusError
		switch {
		case errors.As(err, &statusErr):
			s.l.Warnf("github api error for %s: %d", repo.Repo, statusErr.StatusCode)
			if statusErr.RateLimited {
				s.l.Warnf("github api rate limit exceeded while fetching %s/%s", repo.Owner, repo.Repo)
			}
			result.Error = statusErr.Error()
			return result
		case IsInvalidRequestError(err):
			s.l.WithField("owner", repo.Owner).Errorf("invalid repository configuration for %s: %v", repo.Repo, err)
		default:
			s.l.Errorf("fetching commits for %s: %v", repo.Repo, err)
		}

		result.Error = err.Error()
		if result.Error == "" {
			result.Error = "unknown error"
		}
		return result
	}

	result.Commits = make([]Commit, 0, len(commits))
	for _, c := range commits {
		c.Repo = repo.Repo
		c.Label = repo.Label
		result.Commits = append(result.Commits, c)
	}

	return result
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
