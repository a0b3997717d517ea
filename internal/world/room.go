package world

import "github.com/zyedidia/generic/mapset"

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Room is anything that occupies a set of grid cells.
type Room interface {
	// Center returns the center coordinates of the room.
	Center() (int, int)
	// Spaces returns every cell the room occupies, in row-major order.
	Spaces() []Point
	// Intersect reports whether the room and other share no occupied cell.
	// Placement treats a true result as a collision, so rooms are only
	// accepted when they share cells with every room already placed.
	Intersect(other Room) bool
}

// Rect is a rectangular room spanning the corners (X1,Y1)-(X2,Y2).
// Its occupied cells exclude the X1 column and Y1 row and include X2 and Y2.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect creates a rect with top-left corner (x,y) and size w by h.
// The caller keeps x+w and y+h inside the target map.
func NewRect(x, y, w, h int) Rect {
	return Rect{
		X1: x,
		Y1: y,
		X2: x + w,
		Y2: y + h,
	}
}

// Center returns the truncated midpoint of the two corners.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Spaces returns the cells (x,y) for y in (Y1, Y2] and x in (X1, X2].
func (r Rect) Spaces() []Point {
	w, h := r.X2-r.X1, r.Y2-r.Y1
	if w <= 0 || h <= 0 {
		return nil
	}
	spaces := make([]Point, 0, w*h)
	for y := r.Y1 + 1; y <= r.Y2; y++ {
		for x := r.X1 + 1; x <= r.X2; x++ {
			spaces = append(spaces, Point{X: x, Y: y})
		}
	}
	return spaces
}

// Intersect reports whether r and other have zero occupied cells in common.
func (r Rect) Intersect(other Room) bool {
	return sharedSpaces(r, other) == 0
}

// Contains returns true if the given point is one of the room's occupied cells.
func (r Rect) Contains(x, y int) bool {
	return x > r.X1 && x <= r.X2 && y > r.Y1 && y <= r.Y2
}

// sharedSpaces counts the cells occupied by both a and b.
func sharedSpaces(a, b Room) int {
	occupied := mapset.New[Point]()
	for _, p := range b.Spaces() {
		occupied.Put(p)
	}

	count := 0
	for _, p := range a.Spaces() {
		if occupied.Has(p) {
			count++
		}
	}
	return count
}
