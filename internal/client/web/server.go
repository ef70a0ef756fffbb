package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/voteportal/internal/logging"
)

const (
	ShutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Server hosts the portal HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     logging.Logger
}

func NewServer(addr string, h http.Handler, logger logging.Logger) *Server {
	return &Server{
		httpAddr: addr,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// ListenAndServe runs the HTTP server until ctx ends, then shuts it down
// gracefully within ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	serveErr := make(chan error, 1)
	s.logger.Info(ctx, "portal listening", "addr", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		s.logger.Info(ctx, "portal stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
