package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/splitpack/splitpack/internal/api"
	"github.com/splitpack/splitpack/pkg/cache"
	"github.com/splitpack/splitpack/pkg/pipeline"
	"github.com/splitpack/splitpack/pkg/store"
)

// serveCommand creates the serve command, which runs the layout HTTP
// API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		mongoURI  string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the layout HTTP API server",
		Long: `Run the layout HTTP API server.

Endpoints:
  POST /layout          compute a layout for a submitted graph
  GET  /layouts/{hash}  fetch a previously computed layout
  GET  /healthz         liveness check

With --redis the cache is shared across instances; with --mongo
finished layouts are persisted and served by hash.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			if redisAddr == "" {
				redisAddr = c.Config.Cache.RedisAddr
			}
			if mongoURI == "" {
				mongoURI = c.Config.Store.URI
			}
			return c.runServe(cmd.Context(), addr, redisAddr, mongoURI, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for a shared cache (host:port)")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "MongoDB URI for the layout store")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, redisAddr, mongoURI string, noCache bool) error {
	var (
		cch cache.Cache
		err error
	)
	switch {
	case noCache:
		cch = cache.NewNullCache()
	case redisAddr != "":
		cch, err = cache.NewRedisCache(ctx, redisAddr)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		c.Logger.Info("using redis cache", "addr", redisAddr)
	default:
		cch, err = c.newCache(false)
		if err != nil {
			return fmt.Errorf("initialize cache: %w", err)
		}
	}
	defer cch.Close()

	var layoutStore *store.LayoutStore
	if mongoURI != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		layoutStore, err = store.NewLayoutStore(connectCtx, mongoURI, c.Config.Store.Database)
		cancel()
		if err != nil {
			return fmt.Errorf("connect mongodb: %w", err)
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = layoutStore.Close(closeCtx)
		}()
		c.Logger.Info("using layout store", "database", c.Config.Store.Database)
	}

	runner := pipeline.NewRunner(cch, c.Logger)
	server := &http.Server{
		Addr:              addr,
		Handler:           api.NewServer(runner, layoutStore, c.Logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		c.Logger.Info("server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
