// Package main is the entry point for the interactive level viewer.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeonmap/internal/config"
	"github.com/samdwyer/dungeonmap/internal/logger"
	"github.com/samdwyer/dungeonmap/internal/telemetry"
	"github.com/samdwyer/dungeonmap/internal/ui"
	"github.com/samdwyer/dungeonmap/internal/viewer"
)

func main() {
	configPath := flag.String("config", "mapgen.yaml", "Path to YAML config file")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatalf("Failed to apply environment: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// The terminal belongs to tcell, so records only go to the log file.
	closer, err := logger.Initialize(cfg.Log, nil)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	rng := cfg.NewRNG()
	logger.Info("viewer starting", "algorithm", cfg.Algorithm, "seed", cfg.Seed, "depth", cfg.Depth)

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	v, err := viewer.New(screen, cfg.Algorithm, cfg.Depth, rng)
	if err != nil {
		screen.Close()
		log.Fatalf("Failed to initialize viewer: %v", err)
	}

	err = v.Run(ctx)
	screen.Close()
	if err != nil {
		logger.Error("viewer stopped", "error", err)
		log.Fatalf("Viewer error: %v", err)
	}
}
