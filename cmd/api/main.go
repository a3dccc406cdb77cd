// Package main is the entry point for the Meal Board API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/meal-board/internal/config"
	"github.com/pkordes/meal-board/internal/handler"
	"github.com/pkordes/meal-board/internal/middleware"
	"github.com/pkordes/meal-board/internal/notify"
	"github.com/pkordes/meal-board/internal/repo"
	"github.com/pkordes/meal-board/internal/service"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// The default logger writes to stderr until ours is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Notices ----------------------------------------------------------
	msgs, err := notify.NewMessages(cfg.NoticeLocale)
	if err != nil {
		slog.Error("notice catalog", "error", err)
		os.Exit(1)
	}
	hub := notify.NewHub(logger)
	history := notify.NewHistory(cfg.NoticeHistory)
	notices := notify.Fanout{notify.Logger{Log: logger}, history, hub}

	// --- Services ---------------------------------------------------------
	// The list lives only in this process; a restart starts empty.
	meals := repo.NewMealRepo()
	mealService := service.NewMealService(meals, msgs, notices, logger)
	exportService := service.NewExportService(meals)

	// --- Router -----------------------------------------------------------
	// Middleware runs in order: RequestID → RealIP → Logger → Recoverer →
	// CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	srv := handler.NewServer(mealService, exportService, history, hub, logger, cfg.CORSOrigins)
	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	// No WriteTimeout: it would cut long-lived notice websockets. The
	// websocket writer sets its own per-frame deadline.
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr, "locale", cfg.NoticeLocale)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
