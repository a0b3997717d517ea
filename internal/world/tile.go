// Package world provides dungeon map storage and generation.
package world

// TileType is the kind of a single map cell.
type TileType int

const (
	// TileWall is an opaque, impassable cell.
	TileWall TileType = iota
	// TileFloor is an open cell.
	TileFloor
)

// IsPassable returns true if the tile can be walked on.
func (t TileType) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t TileType) Rune() rune {
	switch t {
	case TileFloor:
		return '.'
	default:
		return '#'
	}
}

// String returns a human-readable tile name.
func (t TileType) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	default:
		return "unknown"
	}
}
