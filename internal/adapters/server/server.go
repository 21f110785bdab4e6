// Package server serves the current API schema over HTTP/1 and h2c.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Server implements ports.SchemaServer.
// Event subscribers stay connected across restarts.
type Server struct {
	addr   string
	logger ports.Logger
	hub    *hub

	mu      sync.Mutex
	srv     *http.Server
	ln      net.Listener
	done    chan struct{}
	version uint64
}

var _ ports.SchemaServer = (*Server)(nil)

// New creates a Server listening on addr once a schema is served.
func New(addr string, logger ports.Logger) *Server {
	return &Server{addr: addr, logger: logger, hub: newHub()}
}

// Restart stops the running server, if any, and serves schema.
func (s *Server) Restart(ctx context.Context, schema *domain.GqlSchemaDef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.shutdown(ctx); err != nil {
		return err
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServerStartFailed.Error()), "addr", s.addr)
	}

	s.version++
	srv := &http.Server{
		Handler:           h2c.NewHandler(s.routes(schema), &http2.Server{}),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) && s.logger != nil {
			s.logger.Error(zerr.Wrap(err, domain.ErrServerStartFailed.Error()))
		}
	}()

	s.srv, s.ln, s.done = srv, ln, done

	s.hub.broadcast(event{
		Type:    eventSchemaReloaded,
		Version: s.version,
		Types:   len(schema.Types),
		Queries: len(schema.Queries),
	})
	if s.logger != nil {
		s.logger.Info("serving graphql schema on http://" + ln.Addr().String() + "/graphql")
	}
	return nil
}

// Addr returns the bound address, or the configured one before the first restart.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return s.addr
	}
	return s.ln.Addr().String()
}

// Close stops the server and disconnects event subscribers.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := s.shutdown(ctx)
	s.hub.close()
	return err
}

func (s *Server) shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	err := s.srv.Shutdown(ctx)
	<-s.done
	s.srv, s.ln, s.done = nil, nil, nil
	if err != nil {
		return zerr.Wrap(err, "failed to stop schema server")
	}
	return nil
}
