package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridsynth/internal/api"
)

// shutdownGrace is how long in-flight requests get to finish on shutdown.
const shutdownGrace = 10 * time.Second

// serveCommand creates the "serve" command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the gridsynth HTTP API. The service accepts archive documents
and responds with synthesized archives or rendered artifacts.

Endpoints:
  GET  /healthz          liveness probe
  POST /v1/synthesize    archive in, synthesized archive out
  POST /v1/render        archive in, rendered artifact out

The server shuts down gracefully on interrupt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Serve.Addr
			}
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, usually :8080)")

	return cmd
}

// runServe starts the HTTP server and blocks until ctx is cancelled or the
// listener fails.
func (c *CLI) runServe(ctx context.Context, addr string) error {
	artifactCache, err := c.newCache(ctx, false)
	if err != nil {
		c.Logger.Warn("artifact cache unavailable, serving uncached", "err", err)
		artifactCache = nil
	}
	if artifactCache != nil {
		defer artifactCache.Close()
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           api.NewServer(c.Logger, artifactCache).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	printInfo("Serving on %s", addr)

	select {
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
