package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/byiringiro-albert/portfolio/internal/audit"
	"github.com/byiringiro-albert/portfolio/internal/catalog"
	"github.com/byiringiro-albert/portfolio/internal/config"
	"github.com/byiringiro-albert/portfolio/internal/documents"
	"github.com/byiringiro-albert/portfolio/internal/handlers"
	"github.com/byiringiro-albert/portfolio/internal/preview"
	"github.com/byiringiro-albert/portfolio/internal/requests"
	"github.com/byiringiro-albert/portfolio/internal/storage"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the portfolio web server",
		Long: `Starts the portfolio site on the specified port.

The catalog is loaded once at startup. Handoff slots live in memory unless
REDIS_ADDR is set, preview documents come from PREVIEW_DIR unless
MINIO_ENDPOINT is set, and download requests are also written to SQLite when
AUDIT_DB_PATH is set.`,
		Example: `  # Start server on default port 8888
  portfolio serve

  # Start server on custom port
  portfolio serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			ctx := cmd.Context()
			loader := catalog.NewLoader(cfg.CatalogSource)
			cat := catalog.Open(ctx, loader)

			handoff, closeHandoff, err := newHandoffStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeHandoff()

			docs, err := newDocumentStore(ctx, cfg)
			if err != nil {
				return err
			}

			sink, closeSink, err := newAuditSink(cfg)
			if err != nil {
				return err
			}
			defer closeSink()

			handler := handlers.New(handlers.Deps{
				Catalog:   cat,
				Loader:    loader,
				Handoff:   handoff,
				Sessions:  preview.NewSessionStore(cfg.PreviewPages, cfg.SessionTTL),
				Documents: docs,
				Requests: requests.New(sink,
					requests.WithAdmin(cfg.AdminEmail, cfg.AdminDashboardURL),
					requests.WithDevelopment(cfg.IsDevelopment()),
					requests.WithRateLimit(cfg.RequestRateLimit),
				),
				ContactURL: cfg.ContactURL,
			})

			addr := ":" + cfg.Port
			server := &http.Server{
				Addr:              addr,
				Handler:           handlers.NewRouter(handler),
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Portfolio available", "addr", addr, "url", "http://localhost"+addr, "publications", cat.Len())
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-ctx.Done():
				slog.Info("Shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on (overrides PORT)")

	return cmd
}

func newHandoffStore(ctx context.Context, cfg *config.Config) (storage.Store, func(), error) {
	if cfg.RedisAddr == "" {
		return storage.New(cfg.SessionTTL), func() {}, nil
	}

	rdb, err := storage.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("Handoff slots stored in Redis", "addr", cfg.RedisAddr)
	return storage.NewRedisStore(rdb, cfg.SessionTTL), func() {
		if err := rdb.Close(); err != nil {
			slog.Warn("Unable to close Redis client", "err", err)
		}
	}, nil
}

func newDocumentStore(ctx context.Context, cfg *config.Config) (documents.Store, error) {
	if cfg.MinioEndpoint == "" {
		return documents.NewFSStore(cfg.PreviewDir), nil
	}

	store, err := documents.NewMinioStore(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	if err != nil {
		return nil, fmt.Errorf("minio connect: %w", err)
	}
	slog.Info("Preview documents served from MinIO", "endpoint", cfg.MinioEndpoint, "bucket", cfg.MinioBucket)
	return store, nil
}

func newAuditSink(cfg *config.Config) (audit.Sink, func(), error) {
	sinks := audit.Multi{audit.NewLogSink(nil)}
	if cfg.AuditDBPath == "" {
		return sinks, func() {}, nil
	}

	db, err := audit.NewSQLite(cfg.AuditDBPath)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("Download requests recorded in SQLite", "path", cfg.AuditDBPath)
	return append(sinks, db), func() {
		if err := db.Close(); err != nil {
			slog.Warn("Unable to close audit database", "err", err)
		}
	}, nil
}
