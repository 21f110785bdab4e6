// Package daemon exposes the artifact states of a running dev session over a unix socket.
// It serves the standard gRPC health service with one service name per artifact.
package daemon

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"

	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServicePrefix prefixes the health service name of every artifact.
const ServicePrefix = "ponder.artifact."

// ServiceName returns the health service name of an artifact.
func ServiceName(kind domain.ArtifactKind) string {
	return ServicePrefix + kind.String()
}

// Server implements the status side of the dev session.
type Server struct {
	socketPath string
	health     *health.Server
	grpcServer *grpc.Server
}

// NewServer creates a Server for socketPath. Every artifact starts NOT_SERVING.
func NewServer(socketPath string) *Server {
	s := &Server{
		socketPath: socketPath,
		health:     health.NewServer(),
		grpcServer: grpc.NewServer(),
	}
	for _, kind := range domain.ArtifactKinds() {
		s.health.SetServingStatus(ServiceName(kind), healthpb.HealthCheckResponse_NOT_SERVING)
	}
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(s.grpcServer, s.health)
	return s
}

// Observe records one artifact state. The empty service name follows HandlerContext.
func (s *Server) Observe(state domain.ArtifactState) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if state.Status == domain.StatusPresent {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(ServiceName(state.Kind), status)
	if state.Kind == domain.HandlerContext {
		s.health.SetServingStatus("", status)
	}
}

// Serve listens on the socket until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.socketPath), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create socket directory")
	}
	if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
		return zerr.Wrap(err, "failed to remove stale socket")
	}

	var lc net.ListenConfig
	lis, err := lc.Listen(ctx, "unix", s.socketPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to listen on status socket"), "socket", s.socketPath)
	}
	if err := os.Chmod(s.socketPath, domain.SocketPerm); err != nil {
		_ = lis.Close()
		return zerr.Wrap(err, "failed to set socket permissions")
	}
	defer func() { _ = os.Remove(s.socketPath) }()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	}
}
