package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.etcd.io/bbolt"

	"github.com/alorle/iptv-catalog/cache"
	"github.com/alorle/iptv-catalog/catalog"
	"github.com/alorle/iptv-catalog/config"
	"github.com/alorle/iptv-catalog/fetcher"
	"github.com/alorle/iptv-catalog/handlers"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// openStorage builds the cache backend selected by the configuration. The
// returned closer is a no-op for the file backend.
func openStorage(cfg *config.Config) (cache.Storage, func(), error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendFile:
		storage, err := cache.NewFileStorage(cfg.Cache.Path)
		if err != nil {
			return nil, nil, err
		}
		return storage, func() {}, nil

	default:
		db, err := bbolt.Open(cfg.Cache.Path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
		if err != nil {
			return nil, nil, err
		}
		storage, err := cache.NewBoltStorage(db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		closer := func() {
			if err := db.Close(); err != nil {
				log.Printf("error closing cache database: %v", err)
			}
		}
		return storage, closer, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	logger.Info("starting iptv-catalog",
		"http_address", cfg.HTTP.Address,
		"http_port", cfg.HTTP.Port,
		"remote_config_url", cfg.Remote.ConfigURL,
		"remote_timeout", cfg.Remote.Timeout,
		"cache_backend", cfg.Cache.Backend,
		"cache_path", cfg.Cache.Path,
		"refresh_interval", cfg.Refresh.Interval,
	)

	storage, closeStorage, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("failed to open cache storage: %v", err)
	}
	defer closeStorage()

	source := fetcher.New(cfg.Remote.ConfigURL, cfg.Remote.Timeout)
	service := catalog.NewService(source, storage, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initial load. A terminal failure is not fatal: the catalog stays
	// empty and the UI renders a retry prompt until a reload succeeds.
	if _, err := service.Reload(ctx); err != nil {
		logger.Warn("initial catalog load failed", "error", err)
	}

	// Automatic refresh belongs to this calling layer, not the core.
	if cfg.Refresh.Interval > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Refresh.Interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if _, err := service.Reload(ctx); err != nil {
						logger.Warn("scheduled reload failed", "error", err)
					}
				}
			}
		}()
	}

	server := &http.Server{
		Addr:    net.JoinHostPort(cfg.HTTP.Address, cfg.HTTP.Port),
		Handler: handlers.SetupRoutes(handlers.Dependencies{Catalog: service, Logger: logger}),
	}

	go func() {
		logger.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
}
