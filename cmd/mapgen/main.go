// Package main generates a single level and prints it as ASCII or YAML.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonmap/internal/config"
	"github.com/samdwyer/dungeonmap/internal/logger"
	"github.com/samdwyer/dungeonmap/internal/mapio"
	"github.com/samdwyer/dungeonmap/internal/telemetry"
	"github.com/samdwyer/dungeonmap/internal/world"
)

type options struct {
	configPath string
	algorithm  string
	seed       int64
	depth      int
	format     string
	output     string
	check      bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "mapgen.yaml", "Path to YAML config file")
	flag.StringVar(&opts.algorithm, "algorithm", "", "Map algorithm (simple, all_open, rooms_and_corridors)")
	flag.Int64Var(&opts.seed, "seed", 0, "Random seed (0 uses config or a clock seed)")
	flag.IntVar(&opts.depth, "depth", -1, "Dungeon depth (-1 uses config)")
	flag.StringVar(&opts.format, "format", "ascii", "Output format: ascii or yaml")
	flag.StringVar(&opts.output, "output", "", "Output file (empty for stdout)")
	flag.BoolVar(&opts.check, "check", false, "Fail if the border is not solid wall")
	flag.Parse()

	_ = godotenv.Load()

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, stdout io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if opts.algorithm != "" {
		cfg.Algorithm = opts.algorithm
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if opts.depth >= 0 {
		cfg.Depth = opts.depth
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	closer, err := logger.Initialize(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed", "error", err)
	} else {
		defer shutdown(ctx)
	}

	tracer := telemetry.Tracer("mapgen")
	ctx, span := tracer.Start(ctx, "mapgen.run")
	defer span.End()

	rng := cfg.NewRNG()
	builder, err := world.NewBuilder(cfg.Algorithm, rng)
	if err != nil {
		return err
	}
	m := builder.Build(ctx, cfg.Depth)

	span.SetAttributes(
		attribute.String("map.algorithm", cfg.Algorithm),
		attribute.Int64("map.seed", cfg.Seed),
		attribute.Int("map.rooms", len(m.Rooms)),
	)
	logger.Info("map generated",
		"algorithm", cfg.Algorithm,
		"seed", cfg.Seed,
		"depth", cfg.Depth,
		"rooms", len(m.Rooms),
		"floor", m.FloorCount())

	if opts.check {
		if err := m.ValidateBorder(); err != nil {
			return err
		}
	}

	switch opts.format {
	case "yaml":
		doc := mapio.NewDocument(m, cfg.Algorithm, cfg.Seed)
		if opts.output != "" {
			return mapio.WriteFile(opts.output, doc)
		}
		return mapio.Write(stdout, doc)
	case "ascii":
		text := mapio.ASCII(m)
		if opts.output != "" {
			if err := os.WriteFile(opts.output, []byte(text), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", opts.output, err)
			}
			return nil
		}
		_, err := io.WriteString(stdout, text)
		return err
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
}
