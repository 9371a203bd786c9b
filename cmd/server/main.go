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

	"github.com/dgallion1/autodoc/internal/api"
	"github.com/dgallion1/autodoc/internal/config"
	"github.com/dgallion1/autodoc/internal/convert"
	"github.com/dgallion1/autodoc/internal/llm"
	"github.com/dgallion1/autodoc/internal/rasterize"
)

func main() {
	// Optional .env for local development.
	godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	stats := llm.NewStats(cfg.StatsWindow)
	converter := convert.NewService(log, cfg.ChunkThreshold, cfg.LLMTimeout, stats)

	rasterizer := rasterize.New(rasterize.Config{
		MaxConcurrent: cfg.RasterConcurrency,
		Timeout:       cfg.RasterTimeout,
		Logger:        log,
	})

	srv := api.NewServer(converter, rasterizer, stats, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		rasterizer.Close()
	}()

	log.Info("starting autodoc", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
