package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/siteupdates/internal/app"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Config is the container for app configuration
type Config struct {
	// LogLevel - minimal level of logged messages
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat - text, json or auto. Auto picks text for terminals and json otherwise
	LogFormat string `envconfig:"LOG_FORMAT" default:"auto"`

	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `envconfig:"HTTP_SERVER_ADDRESS" default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `envconfig:"HTTP_PROFILE_SERVER_ADDRESS" default:""`

	// GRPCServerAddress - listen address for grpc server. If empty, grpc server is disabled
	GRPCServerAddress string `envconfig:"GRPC_SERVER_ADDRESS" default:"0.0.0.0:9090"`

	// ServiceResponseTimeout - timeout for service execution
	ServiceResponseTimeout time.Duration `envconfig:"SERVICE_RESPONSE_TIMEOUT" default:"60s"`

	// GithubToken - auth token for rest github api (optional, rate limit is lower without this token)
	GithubToken string `envconfig:"GITHUB_TOKEN" default:""`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `envconfig:"GITHUB_API_ADDRESS" default:"https://api.github.com"`

	// GithubUserAgent - User-Agent header sent to github api
	GithubUserAgent string `envconfig:"GITHUB_USER_AGENT" default:"site-updates-fetcher"`

	// GithubClientTimeout - transport timeout of a single github api request. 0 means no timeout
	GithubClientTimeout time.Duration `envconfig:"GITHUB_CLIENT_TIMEOUT" default:"30s"`

	// GithubAPIRateLimit - max frequency for github rest api calls. 0 disables the limit
	GithubAPIRateLimit float64 `envconfig:"GITHUB_API_RATE_LIMIT" default:"5"`

	// GithubClientCacheSize - maximum number of repositories in github client cache
	GithubClientCacheSize int `envconfig:"GITHUB_CLIENT_CACHE_SIZE" default:"100"`

	// GithubClientCacheTTL - maximum lifetime for github client cache entries. 0 disables the cache
	GithubClientCacheTTL time.Duration `envconfig:"GITHUB_CLIENT_CACHE_TTL" default:"0"`

	// Repos - polled repositories in form of label=owner/repo, separated by commas. Empty means built-in list
	Repos RepoList `envconfig:"UPDATES_REPOS"`

	// CommitsPerRepo - number of recent commits fetched for every repository
	CommitsPerRepo int `envconfig:"UPDATES_COMMITS_PER_REPO" default:"6"`

	// FetchTimeout - timeout for a single repository fetch. 0 means no timeout,
	// requests are then bounded only by GithubClientTimeout
	FetchTimeout time.Duration `envconfig:"UPDATES_FETCH_TIMEOUT" default:"10s"`

	// Delay - pause between repositories, protects from github rate limiting
	Delay time.Duration `envconfig:"UPDATES_DELAY" default:"500ms"`

	// DelayMode - when the pause is applied: always or on-error
	DelayMode string `envconfig:"UPDATES_DELAY_MODE" default:"always"`
}

// LoadConfig reads configuration from environment. Variables from .env file are loaded first, if the file exists.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		return Config{}, err
	}

	return conf, nil
}

// AppOptions returns app.Service options.
func (c Config) AppOptions() (app.Options, error) {
	mode, err := app.ParseDelayMode(c.DelayMode)
	if err != nil {
		return app.Options{}, fmt.Errorf("parsing delay mode: %w", err)
	}
	if c.CommitsPerRepo < 1 || c.CommitsPerRepo > 100 {
		return app.Options{}, fmt.Errorf("commits per repo must be in range <1..100>, got %d", c.CommitsPerRepo)
	}

	opts := app.DefaultOptions()
	if len(c.Repos) > 0 {
		opts.Repos = []app.RepoSpec(c.Repos)
	}
	opts.CommitsPerRepo = c.CommitsPerRepo
	opts.FetchTimeout = c.FetchTimeout
	opts.Delay = app.DelayPolicy{
		Delay: c.Delay,
		Mode:  mode,
	}

	return opts, nil
}

// HTTPClient returns client used for github api calls.
func (c Config) HTTPClient() *http.Client {
	return &http.Client{
		Timeout: c.GithubClientTimeout,
	}
}

// Logger creates logger configured with LogLevel.
func (c Config) Logger() (*logrus.Logger, error) {
	l := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	l.Level = level

	switch c.LogFormat {
	case "", "auto":
		if !isatty.IsTerminal(os.Stderr.Fd()) {
			l.Formatter = &logrus.JSONFormatter{}
		}
	case "text":
		l.Formatter = &logrus.TextFormatter{}
	case "json":
		l.Formatter = &logrus.JSONFormatter{}
	default:
		return nil, fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	return l, nil
}

// RepoList is a list of repositories decoded from env variable.
type RepoList []app.RepoSpec

// Decode implements envconfig.Decoder.
// Expected format: label=owner/repo[,label=owner/repo...]. Label is optional, owner/repo is used when omitted.
func (l *RepoList) Decode(value string) error {
	var repos RepoList
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		label, path := "", item
		if i := strings.LastIndex(item, "="); i >= 0 {
			label, path = strings.TrimSpace(item[:i]), strings.TrimSpace(item[i+1:])
		}

		parts := strings.Split(path, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf("invalid repository %q, want label=owner/repo", item)
		}
		if label == "" {
			label = path
		}

		repos = append(repos, app.RepoSpec{
			Label: label,
			Owner: parts[0],
			Repo:  parts[1],
		})
	}

	*l = repos
	return nil
}
