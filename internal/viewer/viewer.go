// Package viewer runs an interactive terminal browser over generated levels.
package viewer

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonmap/internal/logger"
	"github.com/samdwyer/dungeonmap/internal/telemetry"
	"github.com/samdwyer/dungeonmap/internal/ui"
	"github.com/samdwyer/dungeonmap/internal/world"
)

// Viewer holds the level currently on screen.
type Viewer struct {
	screen    *ui.Screen
	renderer  *ui.Renderer
	rng       *world.RandomNumberGenerator
	algorithm string
	depth     int
	level     *world.Map
	running   bool
}

// New creates a viewer drawing to screen. The algorithm must be one of world.Algorithms.
func New(screen *ui.Screen, algorithm string, depth int, rng *world.RandomNumberGenerator) (*Viewer, error) {
	if _, err := world.NewBuilder(algorithm, rng); err != nil {
		return nil, err
	}
	return &Viewer{
		screen:    screen,
		renderer:  ui.NewRenderer(screen),
		rng:       rng,
		algorithm: algorithm,
		depth:     depth,
		running:   true,
	}, nil
}

// Level returns the map on screen, or nil before the first build.
func (v *Viewer) Level() *world.Map {
	return v.level
}

// Depth returns the current dungeon depth.
func (v *Viewer) Depth() int {
	return v.depth
}

// Algorithm returns the active builder name.
func (v *Viewer) Algorithm() string {
	return v.algorithm
}

// Run builds the first level and processes input until the user quits
// or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	if err := v.rebuild(ctx); err != nil {
		return err
	}

	stop := context.AfterFunc(ctx, v.screen.PostQuit)
	defer stop()

	for v.running {
		v.renderer.Render(v.level, v.status())

		if err := v.handleInput(ctx); err != nil {
			return err
		}
		if ctx.Err() != nil {
			v.running = false
		}
	}
	return nil
}

// rebuild generates the level for the current depth and algorithm.
func (v *Viewer) rebuild(ctx context.Context) error {
	tracer := telemetry.Tracer("viewer")
	ctx, span := tracer.Start(ctx, "viewer.build_level")
	defer span.End()

	builder, err := world.NewBuilder(v.algorithm, v.rng)
	if err != nil {
		return err
	}

	v.level = builder.Build(ctx, v.depth)
	// Nothing computes field of view here, so the whole level is shown.
	v.level.RevealAll()

	span.SetAttributes(
		attribute.String("map.algorithm", v.algorithm),
		attribute.Int("map.depth", v.depth),
		attribute.Int("map.rooms", len(v.level.Rooms)),
	)
	logger.Debug("level built", "algorithm", v.algorithm, "depth", v.depth, "rooms", len(v.level.Rooms))
	return nil
}

func (v *Viewer) status() string {
	return fmt.Sprintf("depth %d | %s | rooms %d | [r]egen [>/<] depth [a]lgorithm [q]uit",
		v.depth, v.algorithm, len(v.level.Rooms))
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) error {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventInterrupt:
		v.running = false
	case nil:
		v.running = false
	}
	return nil
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false
		return nil
	case tcell.KeyRune:
	default:
		return nil
	}

	switch ev.Rune() {
	case 'q', 'Q':
		v.running = false
	case 'r', 'R':
		return v.rebuild(ctx)
	case '>':
		v.depth++
		return v.rebuild(ctx)
	case '<':
		if v.depth > 0 {
			v.depth--
			return v.rebuild(ctx)
		}
	case 'a', 'A':
		v.algorithm = nextAlgorithm(v.algorithm)
		return v.rebuild(ctx)
	}
	return nil
}

// nextAlgorithm cycles through world.Algorithms.
func nextAlgorithm(current string) string {
	algos := world.Algorithms()
	for i, name := range algos {
		if name == current {
			return algos[(i+1)%len(algos)]
		}
	}
	return algos[0]
}
