package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kaushal-04/Legal-Email-Assistant/internal/analyzer"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/api"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/bus"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/clauses"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/config"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/drafter"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/llm"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/processor"
	"github.com/Kaushal-04/Legal-Email-Assistant/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	// Mode is decided exactly once, here. No component reads the environment.
	mode := llm.ModeFor(cfg.OpenAIAPIKey)
	if mode == llm.ModeMock {
		slog.Warn("no OPENAI_API_KEY set — running in mock mode with fixture output")
	}
	slog.Info("assistant starting", "port", cfg.Port, "mode", string(mode), "model", cfg.Model)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := llm.NewClient(cfg.OpenAIAPIKey, cfg.Model)

	// Clause library
	clauseSet := clauses.Default()
	if cfg.ClausesPath != "" {
		loaded, err := clauses.Load(cfg.ClausesPath)
		if err != nil {
			slog.Error("failed to load clause file", "path", cfg.ClausesPath, "error", err)
			os.Exit(1)
		}
		clauseSet = loaded
		slog.Info("clause library loaded", "path", cfg.ClausesPath, "clauses", clauseSet.Len())
	}

	an := analyzer.New(client, mode, analyzer.DefaultPrompts(), slog.Default())
	dr := drafter.New(client, mode, drafter.DefaultPrompts(), slog.Default())

	// Database (optional — without it the service answers synchronous API
	// calls but keeps no history and runs no event pipeline)
	var db *store.Store
	if cfg.DatabaseURL != "" {
		var err error
		db, err = store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		slog.Info("database connected")
	} else {
		slog.Warn("DATABASE_URL not set — running without persistence")
	}

	// Event pipeline needs both the bus and the store
	if db != nil && cfg.NatsURL != "" {
		busClient, err := bus.NewClient(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer busClient.Close()
		slog.Info("NATS connected", "url", cfg.NatsURL)

		proc := processor.New(db, an, dr, busClient, clauseSet, mode, slog.Default())
		if err := busClient.Subscribe(bus.SubjectEmailReceived, proc.HandleEmailReceived); err != nil {
			slog.Error("failed to subscribe to email events", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("event pipeline disabled — serving synchronous API only")
	}

	srv := api.NewServer(cfg.Port, cfg.APIToken, mode, cfg.Model, an, dr, clauseSet, db)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("assistant ready", "port", cfg.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("assistant stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
