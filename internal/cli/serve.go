package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/textops/pkg/adapters/http"
)

// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
const ShutdownTimeout = 5 * time.Second

// Serve runs the HTTP adapter on ln until ctx is cancelled.
func Serve(ctx context.Context, rt *Runtime, ln net.Listener) error {
	opts := []httpAdapter.Option{
		httpAdapter.WithMaxBodySize(rt.Config.MaxInputSize),
		httpAdapter.WithLogger(rt.Logger),
	}
	if rt.Config.HTTP.Metrics {
		opts = append(opts, httpAdapter.WithGatherer(rt.Registry))
	}

	handler, err := httpAdapter.NewHandler(rt.Plugin, opts...)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		rt.Logger.Info("HTTP server listening", "address", ln.Addr().String())
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		rt.Logger.Info("HTTP server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			if closeErr := srv.Close(); closeErr != nil {
				rt.Logger.Error("could not kill server", "err", closeErr)
			}
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", ShutdownTimeout, err)
		}
		if err := <-serverErrors; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		rt.Logger.Info("HTTP server stopped gracefully")
		return nil
	}
}
