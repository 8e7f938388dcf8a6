package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mverbist/hourbook/internal/config"
	"github.com/mverbist/hourbook/internal/domain/catalog"
	"github.com/mverbist/hourbook/internal/domain/entry"
	"github.com/mverbist/hourbook/internal/domain/report"
	"github.com/mverbist/hourbook/internal/domain/schedule"
	"github.com/mverbist/hourbook/internal/domain/timesheet"
	"github.com/mverbist/hourbook/internal/sqlite"
	"github.com/mverbist/hourbook/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	loc, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		logger.Error("invalid timezone", "timezone", cfg.Schedule.Timezone, "error", err)
		os.Exit(1)
	}

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	entryRepo := sqlite.NewEntryRepository(db)
	eventRepo := sqlite.NewEventRepository(db)
	closureRepo := sqlite.NewClosureRepository(db)

	ledgerSvc := entry.NewService(entryRepo, loc, logger)
	catalogSvc := catalog.NewService(entryRepo, logger)
	scheduleSvc := schedule.NewService(eventRepo, closureRepo, cfg.Schedule.MaxOccurrences, logger)
	reportSvc := report.NewService(entryRepo, logger)
	timesheetSvc := timesheet.NewService(ledgerSvc, catalogSvc, scheduleSvc, reportSvc, loc, logger)

	var authMiddleware func(http.Handler) http.Handler
	if cfg.Auth.Enabled {
		authMiddleware = transport.AuthMiddleware(&apiKeyResolver{db: db})
	}

	router := transport.NewServer(timesheetSvc, authMiddleware, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr, "timezone", cfg.Schedule.Timezone)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type apiKeyResolver struct {
	db *sqlite.DB
}

func (r *apiKeyResolver) ResolveMember(ctx context.Context, token string) (string, error) {
	hash := hashToken(token)
	var memberID string
	err := r.db.QueryRowContext(ctx, `SELECT member_id FROM api_keys WHERE key_hash = ?`, hash).Scan(&memberID)
	if err != nil || memberID == "" {
		return "", fmt.Errorf("unauthorized: invalid token")
	}
	return memberID, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
