package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"smart-neighborhood-backend/internal/api"
	"smart-neighborhood-backend/internal/auth"
	"smart-neighborhood-backend/internal/config"
	"smart-neighborhood-backend/internal/db"
	"smart-neighborhood-backend/internal/notify"
	"smart-neighborhood-backend/internal/reminder"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	slog.InfoContext(ctx, "Starting service...")

	cfg, err := config.Load(os.Getenv("NEIGHBORHOOD_CONFIG"))
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load configuration", "error", err)
		os.Exit(1)
	}

	database, err := db.Init(ctx, db.Config{
		Path:           cfg.DB.Path,
		MigrationsPath: cfg.DB.MigrationsPath,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to open database", "path", cfg.DB.Path, "error", err)
		os.Exit(1)
	}
	defer database.Close()

	authenticator := auth.New(auth.Config{
		Secret:   cfg.Auth.Secret,
		TokenTTL: cfg.Auth.TokenTTL,
	})

	publisher := notify.New(notify.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer publisher.Close()

	reminderWorker := reminder.New(reminder.Config{
		Interval:  cfg.Reminder.Interval,
		Store:     database,
		Publisher: publisher,
	})

	wg := sync.WaitGroup{}
	wg.Go(func() {
		reminderWorker.Run(ctx)
	})

	service := api.New(api.Config{Repo: database, Auth: authenticator})
	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: service.Router(),
	}

	go func() {
		<-sigs
		cancel()
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	slog.InfoContext(ctx, "HTTP server listening", "addr", cfg.Addr())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.ErrorContext(ctx, "HTTP server error", "error", err)
		cancel()
		wg.Wait()
		os.Exit(1)
	}

	wg.Wait()
	slog.InfoContext(ctx, "Service stopped")
}
