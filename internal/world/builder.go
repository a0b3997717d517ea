package world

import (
	"context"
	"errors"
	"fmt"
)

// Algorithm names accepted by NewBuilder.
const (
	AlgorithmSimple            = "simple"
	AlgorithmAllOpen           = "all_open"
	AlgorithmRoomsAndCorridors = "rooms_and_corridors"
)

// ErrUnknownAlgorithm is returned by NewBuilder for unrecognized names.
var ErrUnknownAlgorithm = errors.New("unknown map algorithm")

// MapBuilder builds one dungeon level.
type MapBuilder interface {
	Build(ctx context.Context, depth int) *Map
}

// SimpleMapBuilder builds an all-wall map.
type SimpleMapBuilder struct{}

// Build implements MapBuilder.
func (SimpleMapBuilder) Build(_ context.Context, depth int) *Map {
	return NewMap(depth)
}

// AllOpenBuilder builds a single open room.
type AllOpenBuilder struct{}

// Build implements MapBuilder.
func (AllOpenBuilder) Build(_ context.Context, depth int) *Map {
	return NewMapAllOpen(depth)
}

// RoomsAndCorridorsBuilder builds random rooms joined by corridors.
// A nil RNG falls back to a clock-seeded source on each build.
type RoomsAndCorridorsBuilder struct {
	RNG *RandomNumberGenerator
}

// Build implements MapBuilder.
func (b RoomsAndCorridorsBuilder) Build(ctx context.Context, depth int) *Map {
	rng := b.RNG
	if rng == nil {
		rng = NewRandomNumberGenerator()
	}
	return GenerateRoomsAndCorridors(ctx, depth, rng)
}

// Algorithms lists the names accepted by NewBuilder.
func Algorithms() []string {
	return []string{AlgorithmSimple, AlgorithmAllOpen, AlgorithmRoomsAndCorridors}
}

// NewBuilder returns the builder registered under name.
// rng is only used by randomized algorithms and may be nil.
func NewBuilder(name string, rng *RandomNumberGenerator) (MapBuilder, error) {
	switch name {
	case AlgorithmSimple:
		return SimpleMapBuilder{}, nil
	case AlgorithmAllOpen:
		return AllOpenBuilder{}, nil
	case AlgorithmRoomsAndCorridors:
		return RoomsAndCorridorsBuilder{RNG: rng}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
}

// BuildMap builds the map for a new level.
func BuildMap(ctx context.Context, depth int) *Map {
	var builder MapBuilder = SimpleMapBuilder{}
	return builder.Build(ctx, depth)
}
