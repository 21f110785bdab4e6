package daemon

import (
	"context"
	"path/filepath"

	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Client implements ports.StatusClient.
type Client struct {
	socketPath string
	conn       *grpc.ClientConn
	health     healthpb.HealthClient
}

var _ ports.StatusClient = (*Client)(nil)

// Dial prepares a client for the status socket.
// grpc.NewClient connects lazily on the first call.
func Dial(socketPath string) (*Client, error) {
	abs, err := filepath.Abs(socketPath)
	if err != nil {
		return nil, zerr.Wrap(err, "status client creation failed")
	}
	conn, err := grpc.NewClient("unix://"+abs,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, zerr.Wrap(err, "status client creation failed")
	}
	return &Client{socketPath: socketPath, conn: conn, health: healthpb.NewHealthClient(conn)}, nil
}

// Artifacts implements ports.StatusClient.
func (c *Client) Artifacts(ctx context.Context) ([]ports.ArtifactStatus, error) {
	kinds := domain.ArtifactKinds()
	out := make([]ports.ArtifactStatus, 0, len(kinds))
	for _, kind := range kinds {
		resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName(kind)})
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStatusUnavailable.Error()), "socket", c.socketPath)
		}
		out = append(out, ports.ArtifactStatus{
			Artifact: kind.String(),
			Serving:  resp.GetStatus() == healthpb.HealthCheckResponse_SERVING,
		})
	}
	return out, nil
}

// Close implements ports.StatusClient.
func (c *Client) Close() error {
	return c.conn.Close()
}
