package grpc

import (
	"context"
	"fmt"
	"net"

	"github.com/sirupsen/logrus"
	grpc "google.golang.org/grpc"
)

// Server can start grpc server handling updates requests.
type Server struct {
	service UpdatesServer
	address string
	l       logrus.FieldLogger
}

// NewServer creates new Server instance.
func NewServer(service UpdatesServer, address string, l logrus.FieldLogger) *Server {
	return &Server{
		service: service,
		address: address,
		l:       l,
	}
}

// Run runs the grpc server until ctx is done.
// Returns error when failing to open tcp connection.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("starting tcp listener: %w", err)
	}

	return s.Serve(ctx, lis)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer()
	RegisterUpdatesServer(srv, s.service)

	serveErr := make(chan error, 1)
	go func() {
		s.l.Infof("starting grpc server, listening on %s", lis.Addr())
		if err := srv.Serve(lis); err != nil && err != grpc.ErrServerStopped {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("running grpc server: %w", err)
	case <-ctx.Done():
	}

	srv.GracefulStop()
	s.l.Info("grpc server shut down")

	return nil
}
