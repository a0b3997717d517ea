package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonmap/internal/world"
)

// Palette holds the tile colors used by the renderer.
type Palette struct {
	Floor      tcell.Color
	Wall       tcell.Color
	Background tcell.Color
}

// DefaultPalette is teal floors and green walls on black.
var DefaultPalette = Palette{
	Floor:      MustParseHexColor("#008080"),
	Wall:       MustParseHexColor("#00FF00"),
	Background: tcell.ColorBlack,
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen, palette: DefaultPalette}
}

// Render draws the revealed part of the map, then the status line below it.
func (r *Renderer) Render(m *world.Map, status string) {
	r.screen.Clear()

	for idx := range m.Tiles {
		glyph, style, ok := r.cell(m, idx)
		if !ok {
			continue
		}
		x, y := m.IdxXY(idx)
		r.screen.SetContent(x, y, glyph, style)
	}

	r.RenderMessage(status, m.Height)
	r.screen.Show()
}

// cell returns the glyph and style for the tile at idx, or false if it is unrevealed.
// Revealed tiles outside the current view are drawn in grey.
func (r *Renderer) cell(m *world.Map, idx int) (rune, tcell.Style, bool) {
	if !m.RevealedTiles[idx] {
		return 0, tcell.StyleDefault, false
	}

	tile := m.Tiles[idx]
	fg := r.palette.Wall
	if tile == world.TileFloor {
		fg = r.palette.Floor
	}
	if !m.VisibleTiles[idx] {
		fg = Greyscale(fg)
	}

	style := tcell.StyleDefault.Foreground(fg).Background(r.palette.Background)
	return tile.Rune(), style, true
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
