package world

import (
	"errors"
	"fmt"
)

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 50
)

// ErrBorderNotWall is returned by ValidateBorder when an edge cell is open.
var ErrBorderNotWall = errors.New("border has non-wall tile")

// BaseMap is the contract offered to line-of-sight and pathfinding code.
type BaseMap interface {
	Dimensions() Point
	IsOpaque(idx int) bool
}

// Map is a single dungeon level stored in row-major order.
//
// RevealedTiles and VisibleTiles belong to the exploration system; generation
// never writes them.
type Map struct {
	Tiles         []TileType
	Rooms         []Rect
	Width         int
	Height        int
	RevealedTiles []bool
	VisibleTiles  []bool
	Depth         int
}

var _ BaseMap = (*Map)(nil)

// NewMap creates an 80x50 map filled with walls.
func NewMap(depth int) *Map {
	return NewMapWithDimensions(DefaultWidth, DefaultHeight, depth)
}

// NewMapWithDimensions creates a w by h map filled with walls.
// It panics if either dimension is not positive.
func NewMapWithDimensions(w, h, depth int) *Map {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("world: invalid map dimensions %dx%d", w, h))
	}

	// TileWall is the zero value, so fresh slices are already all wall.
	return &Map{
		Tiles:         make([]TileType, w*h),
		Rooms:         make([]Rect, 0),
		Width:         w,
		Height:        h,
		RevealedTiles: make([]bool, w*h),
		VisibleTiles:  make([]bool, w*h),
		Depth:         depth,
	}
}

// XYIdx converts grid coordinates to a tile index.
// Coordinates are not validated; indexing with the result panics when they are out of range.
func (m *Map) XYIdx(x, y int) int {
	return y*m.Width + x
}

// IdxXY converts a tile index back to grid coordinates.
func (m *Map) IdxXY(idx int) (int, int) {
	return idx % m.Width, idx / m.Width
}

// InBounds returns true if (x,y) lies on the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// TileAt returns the tile at the given position, or TileWall outside the grid.
func (m *Map) TileAt(x, y int) TileType {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[m.XYIdx(x, y)]
}

// IsPassable returns true if the given position can be walked on.
func (m *Map) IsPassable(x, y int) bool {
	return m.TileAt(x, y).IsPassable()
}

// Dimensions returns the map size as a point.
func (m *Map) Dimensions() Point {
	return Point{X: m.Width, Y: m.Height}
}

// IsOpaque returns true if the tile at idx blocks sight.
func (m *Map) IsOpaque(idx int) bool {
	return m.Tiles[idx] == TileWall
}

// FloorCount returns the number of floor tiles.
func (m *Map) FloorCount() int {
	n := 0
	for _, t := range m.Tiles {
		if t == TileFloor {
			n++
		}
	}
	return n
}

// RoomIndexAt returns the index of the first room containing the position, or -1.
func (m *Map) RoomIndexAt(x, y int) int {
	for i, room := range m.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// RevealAll marks every tile as revealed and visible.
func (m *Map) RevealAll() {
	for i := range m.RevealedTiles {
		m.RevealedTiles[i] = true
		m.VisibleTiles[i] = true
	}
}

// ValidateBorder checks that every edge cell is a wall.
func (m *Map) ValidateBorder() error {
	for idx, tile := range m.Tiles {
		if tile == TileWall {
			continue
		}
		x, y := m.IdxXY(idx)
		if x == 0 || x == m.Width-1 || y == 0 || y == m.Height-1 {
			return fmt.Errorf("tile (%d,%d): %w", x, y, ErrBorderNotWall)
		}
	}
	return nil
}

// ApplyRoomToMap carves every cell of room into floor.
func (m *Map) ApplyRoomToMap(room Room) {
	for _, p := range room.Spaces() {
		m.Tiles[m.XYIdx(p.X, p.Y)] = TileFloor
	}
}

// ApplyHorizontalTunnel carves floor from x1 to x2 along row y.
// Cells whose index falls off the tile slice are skipped.
func (m *Map) ApplyHorizontalTunnel(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.carve(m.XYIdx(x, y))
	}
}

// ApplyVerticalTunnel carves floor from y1 to y2 along column x.
// Cells whose index falls off the tile slice are skipped.
func (m *Map) ApplyVerticalTunnel(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.carve(m.XYIdx(x, y))
	}
}

func (m *Map) carve(idx int) {
	if idx >= 0 && idx < len(m.Tiles) {
		m.Tiles[idx] = TileFloor
	}
}
