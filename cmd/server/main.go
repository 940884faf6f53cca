package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/nfournier/cinelog/internal/api"
	"github.com/nfournier/cinelog/internal/catalog"
	"github.com/nfournier/cinelog/internal/config"
	"github.com/nfournier/cinelog/internal/favorites"
	"github.com/nfournier/cinelog/internal/session"
	"github.com/nfournier/cinelog/internal/storage/sqlite"
	"github.com/nfournier/cinelog/pkg/logging"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Failure to open the local database is the one unrecoverable error:
	// abort startup.
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("storage initialized", "database", cfg.DBPath)

	logger := slog.Default()
	sessions := session.NewManager(store, logger, cfg.SessionTTL)
	sessions.StartExpiryWatch(ctx, cfg.SweepInterval)

	favs := favorites.NewService(store, logger)
	cat := catalog.New(cfg.TMDBAPIKey, logger,
		catalog.WithBaseURL(cfg.TMDBBaseURL),
		catalog.WithLanguage(cfg.Language),
	)

	handler := api.NewServer(sessions, favs, cat, logger).Handler()

	// h2c enables HTTP/2 without TLS for local clients.
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("server starting", "address", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
