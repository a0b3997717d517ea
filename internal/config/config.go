// Package config loads generator settings from embedded defaults, YAML files and the environment.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/dungeonmap/internal/logger"
	"github.com/samdwyer/dungeonmap/internal/world"
)

// Environment variables read by ApplyEnv.
const (
	EnvSeed      = "DUNGEON_SEED"
	EnvDepth     = "DUNGEON_DEPTH"
	EnvAlgorithm = "DUNGEON_ALGORITHM"
	EnvLogLevel  = "DUNGEON_LOG_LEVEL"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds generator configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible map generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	// Depth is the dungeon level passed to the builder.
	Depth int `yaml:"depth"`

	// Algorithm names the map builder, see world.Algorithms.
	Algorithm string `yaml:"algorithm"`

	Log logger.Config `yaml:"log"`
}

// Default returns the embedded default configuration.
// It panics if the embedded YAML is malformed.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Errorf("failed to parse embedded defaults: %w", err))
	}
	return cfg
}

// Load reads configuration from a YAML file layered over the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from DUNGEON_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvDepth); v != "" {
		depth, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvDepth, v, err)
		}
		c.Depth = depth
	}
	if v := os.Getenv(EnvAlgorithm); v != "" {
		c.Algorithm = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate checks that the configuration can drive a build.
func (c *Config) Validate() error {
	if c.Depth < 0 {
		return fmt.Errorf("%w: depth %d is negative", ErrInvalid, c.Depth)
	}
	if !slices.Contains(world.Algorithms(), c.Algorithm) {
		return fmt.Errorf("%w: algorithm %q not one of %v", ErrInvalid, c.Algorithm, world.Algorithms())
	}
	return nil
}

// NewRNG returns a random source for the configured seed.
// A zero seed is first replaced with a clock-based one so it can be reported.
func (c *Config) NewRNG() *world.RandomNumberGenerator {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return world.NewRandomNumberGeneratorWithSeed(c.Seed)
}
