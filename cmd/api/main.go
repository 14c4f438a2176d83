package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/securevault/securevault-go/internal/config"
	"github.com/securevault/securevault-go/internal/crypto"
	"github.com/securevault/securevault-go/internal/handler"
	"github.com/securevault/securevault-go/internal/middleware"
	"github.com/securevault/securevault-go/internal/repository"
	"github.com/securevault/securevault-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore := openHistoryStore(ctx, cfg)
	defer closeStore()

	history := service.NewHistoryService(store, cfg.HistoryLimit)

	apiLimiter := middleware.NewLimiter(5, 20)
	sessionLimiter := middleware.NewLimiter(0.2, 5)
	go apiLimiter.Run(ctx)
	go sessionLimiter.Run(ctx)

	router := handler.NewRouter(handler.RouterConfig{
		Generator:     service.NewGeneratorService(crypto.CryptoSource(), cfg.Repair, history),
		Cipher:        service.NewCipherService(history),
		History:       history,
		SessionSecret: cfg.SessionSecret,
		SessionExpiry: cfg.SessionExpiry,
		APILimiter:    apiLimiter,
		SessionLimit:  sessionLimiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "history", cfg.HistoryDriver, "repair", cfg.Repair)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func newLogger(cfg config.Config) *slog.Logger {
	if cfg.Production() {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// openHistoryStore picks the configured history backend. If a database
// cannot be opened the service keeps running on the in-memory store.
func openHistoryStore(ctx context.Context, cfg config.Config) (service.HistoryStore, func()) {
	noop := func() {}

	switch cfg.HistoryDriver {
	case config.DriverMySQL:
		db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
		if err != nil {
			slog.Warn("database connection failed, history kept in memory", "error", err)
			break
		}
		return repository.NewHistoryRepository(db), func() { db.Close() }

	case config.DriverSQLite:
		store, err := repository.OpenSQLiteHistory(cfg.DatabaseDSN)
		if err != nil {
			slog.Warn("sqlite open failed, history kept in memory", "path", cfg.DatabaseDSN, "error", err)
			break
		}
		return store, func() {
			if err := store.Close(); err != nil {
				slog.Warn("closing sqlite history", "error", err)
			}
		}
	}

	return repository.NewMemoryHistory(), noop
}
