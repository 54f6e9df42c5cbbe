package resthttp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// shutdownTimeout bounds the drain of in-flight requests once the serve
// context is cancelled.
const shutdownTimeout = 5 * time.Second

// Serve runs handler on addr until ctx is cancelled, then drains in-flight
// requests before returning. A clean shutdown returns nil.
func Serve(ctx context.Context, addr string, handler http.Handler, opts ...Option) error {
	cfg := newConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	srv := &http.Server{Handler: handler}

	errCh := make(chan error, 1)
	go func() {
		log.Info(fmt.Sprintf("MCP server listening on %s", ln.Addr()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	log.Info("MCP server shutting down gracefully")
	return nil
}
