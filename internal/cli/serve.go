package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/ben-mad-jlp/wireform/internal/server"
	"github.com/ben-mad-jlp/wireform/pkg/cache"
	"github.com/ben-mad-jlp/wireform/pkg/config"
	"github.com/ben-mad-jlp/wireform/pkg/pipeline"
)

// serveCommand creates the serve command for running the HTTP layout service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the wireform layout service",
		Long: `Run the wireform layout service.

The service exposes the layout pipeline over HTTP: POST /v1/layout lays out
a document, GET /v1/canvas sizes a canvas, GET /healthz reports liveness.
Configuration is read from ~/.config/wireform/config.toml when present;
flags override the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, configPath)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, 127.0.0.1:8372)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}

	store, err := serveCache(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	runner := pipeline.NewRunner(store, nil, c.Logger)
	defer runner.Close()

	defaults := server.Defaults{
		TTL:         cfg.Cache.TTL.Duration,
		Viewport:    cfg.Defaults.Viewport,
		Arrangement: cfg.Defaults.Arrangement,
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      server.New(runner, defaults, c.Logger).Router(),
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr, "cache", cfg.Cache.Backend)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
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

// serveCache builds the cache backend named by the config.
func serveCache(ctx context.Context, cfg config.CacheCfg) (cache.Cache, error) {
	switch cfg.Backend {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.RedisPrefix,
		})
	case "file", "":
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	default:
		return nil, fmt.Errorf("unknown cache backend %q (must be one of: file, redis, none)", cfg.Backend)
	}
}
