package world

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonmap/internal/telemetry"
)

const (
	// Rooms-and-corridors parameters
	maxRooms    = 30
	minRoomSize = 6
	maxRoomSize = 10
)

// NewMapAllOpen creates a map with a single room covering everything but the border.
func NewMapAllOpen(depth int) *Map {
	m := NewMap(depth)

	room := NewRect(0, 0, m.Width-2, m.Height-2)
	m.ApplyRoomToMap(room)
	m.Rooms = append(m.Rooms, room)

	return m
}

// NewMapRoomsAndCorridors creates a map of random rooms joined by corridors,
// drawing from a clock-seeded source.
func NewMapRoomsAndCorridors(depth int) *Map {
	return GenerateRoomsAndCorridors(context.Background(), depth, NewRandomNumberGenerator())
}

// GenerateRoomsAndCorridors places up to 30 random rooms, rejecting any
// candidate that Intersects an accepted room, and joins each accepted room
// to the one before it with an L-shaped corridor.
func GenerateRoomsAndCorridors(ctx context.Context, depth int, rng *RandomNumberGenerator) *Map {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.rooms_and_corridors")
	defer span.End()

	startTime := time.Now()

	m := NewMapWithDimensions(DefaultWidth, DefaultHeight, depth)

	rejected := 0
	for i := 0; i < maxRooms; i++ {
		w := rng.Range(minRoomSize, maxRoomSize)
		h := rng.Range(minRoomSize, maxRoomSize)
		x := rng.RollDice(1, m.Width-w-1) - 1
		y := rng.RollDice(1, m.Height-h-1) - 1
		room := NewRect(x, y, w, h)

		ok := true
		for _, other := range m.Rooms {
			if room.Intersect(other) {
				ok = false
				break
			}
		}
		if !ok {
			rejected++
			continue
		}

		m.ApplyRoomToMap(room)

		if len(m.Rooms) > 0 {
			prev := m.Rooms[len(m.Rooms)-1]
			m.connect(prev, room, rng.Range(0, 1) == 1)
		}

		m.Rooms = append(m.Rooms, room)
	}

	span.SetAttributes(
		attribute.Int("map.depth", depth),
		attribute.Int("map.width", m.Width),
		attribute.Int("map.height", m.Height),
		attribute.Int("map.room_count", len(m.Rooms)),
		attribute.Int("map.rejected_rooms", rejected),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return m
}

// connect joins the centers of two rooms, horizontal leg first when
// horizontalFirst is set.
func (m *Map) connect(from, to Room, horizontalFirst bool) {
	prevX, prevY := from.Center()
	newX, newY := to.Center()

	if horizontalFirst {
		m.ApplyHorizontalTunnel(prevX, newX, prevY)
		m.ApplyVerticalTunnel(prevY, newY, newX)
	} else {
		m.ApplyVerticalTunnel(prevY, newY, prevX)
		m.ApplyHorizontalTunnel(prevX, newX, newY)
	}
}
