package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-zajac/siteupdates/internal/adapter/github"
	"github.com/m-zajac/siteupdates/internal/api/grpc"
	"github.com/m-zajac/siteupdates/internal/api/http"
	"github.com/m-zajac/siteupdates/internal/api/http/limiter"
	"github.com/m-zajac/siteupdates/internal/api/response"
	"github.com/m-zajac/siteupdates/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	grpcLib "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	root := &cobra.Command{
		Use:          "siteupdates",
		Short:        "Recent commits of site repositories as a json document",
		SilenceUsage: true,
	}

	root.AddCommand(serveCmd(), fetchCmd(), queryCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run http and grpc servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, l, err := setup()
			if err != nil {
				return err
			}

			service, err := newService(conf, l)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)

			mux := http.NewMux(service, conf.ServiceResponseTimeout, l.WithField("component", "mux"))
			server := http.NewServer(
				conf.HTTPServerAddress,
				conf.HTTPProfileServerAddress,
				mux,
				l.WithField("component", "httpServer"),
			)
			g.Go(func() error {
				return server.Run(ctx)
			})

			if conf.GRPCServerAddress != "" {
				grpcServer := grpc.NewServer(
					grpc.NewService(service),
					conf.GRPCServerAddress,
					l.WithField("component", "grpcServer"),
				)
				g.Go(func() error {
					return grpcServer.Run(ctx)
				})
			}

			if err := g.Wait(); err != nil {
				l.Errorf("server failed: %v", err)
				return err
			}
			return nil
		},
	}
}

func fetchCmd() *cobra.Command {
	var out output

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Collect updates once and print them to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, l, err := setup()
			if err != nil {
				return err
			}

			service, err := newService(conf, l)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), conf.ServiceResponseTimeout)
			defer cancel()

			updates := service.Updates(ctx)
			return out.print(cmd.OutOrStdout(), response.NewUpdates(*updates))
		},
	}
	out.bindFlags(cmd)
	return cmd
}

func queryCmd() *cobra.Command {
	var (
		addr    string
		timeout time.Duration
		out     output
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Ask running grpc server for updates",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := grpcLib.Dial(addr, grpcLib.WithTransportCredentials(insecure.NewCredentials()))
			if err != nil {
				return fmt.Errorf("dialing %s: %w", addr, err)
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			reply, err := grpc.NewUpdatesClient(conn).Latest(ctx)
			if err != nil {
				return fmt.Errorf("server response error: %w", err)
			}

			updates, err := grpc.DecodeUpdates(reply)
			if err != nil {
				return err
			}

			return out.print(cmd.OutOrStdout(), updates)
		},
	}
	cmd.Flags().StringVarP(&addr, "server", "s", "localhost:9090", "The server address in the format of host:port")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "Request timeout")
	out.bindFlags(cmd)
	return cmd
}

func setup() (Config, *logrus.Logger, error) {
	conf, err := LoadConfig()
	if err != nil {
		return Config{}, nil, fmt.Errorf("couldn't parse config: %w", err)
	}

	l, err := conf.Logger()
	if err != nil {
		return Config{}, nil, err
	}

	return conf, l, nil
}

func newService(conf Config, l *logrus.Logger) (*app.Service, error) {
	opts, err := conf.AppOptions()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	limitedHTTPClient := limiter.NewHTTPDoer(
		conf.HTTPClient(),
		conf.GithubAPIRateLimit,
	)

	var githubClient app.GithubClient = github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
		conf.GithubToken,
		conf.GithubUserAgent,
	)
	if conf.GithubClientCacheTTL > 0 {
		githubClient, err = github.NewCachedClient(
			githubClient,
			conf.GithubClientCacheSize,
			conf.GithubClientCacheTTL,
		)
		if err != nil {
			return nil, fmt.Errorf("couldn't create github client cache: %w", err)
		}
	}

	return app.NewService(
		githubClient,
		opts,
		l.WithField("component", "service"),
	), nil
}
