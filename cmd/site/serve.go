package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"community_site/internal/config"
	"community_site/internal/content"
	"community_site/internal/db"
	httpserver "community_site/internal/http"
	"community_site/internal/ratelimit"
)

func newServeCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "run migrations before serving")
	return cmd
}

func serve(parent context.Context, migrate bool) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	gdb, err := db.Connect(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	if migrate {
		if err := db.AutoMigrate(gdb); err != nil {
			return err
		}
	}

	store, closeStore, err := limitStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	pages, err := content.Load(cfg.ContentPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		slog.Warn("content file missing, /api/pages disabled", slog.String("path", cfg.ContentPath))
	}

	r, err := httpserver.NewRouter(httpserver.Deps{
		DB:     gdb,
		Config: cfg,
		Limits: store,
		Pages:  pages,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", slog.String("addr", srv.Addr), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// limitStore builds the rate-limit backend named in the config.
func limitStore(ctx context.Context, cfg config.Config) (ratelimit.Store, func(), error) {
	switch cfg.RateLimit.Backend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		slog.Info("rate limit store", slog.String("backend", "redis"), slog.String("addr", cfg.Redis.Addr))
		return ratelimit.NewRedisStore(rdb, ratelimit.WithPrefix(cfg.Redis.Prefix)), func() { _ = rdb.Close() }, nil
	default:
		store := ratelimit.NewMemoryStore()
		store.StartJanitor(ctx, cfg.RateLimit.Window, cfg.RateLimit.Window)
		slog.Info("rate limit store", slog.String("backend", "memory"))
		return store, func() {}, nil
	}
}
