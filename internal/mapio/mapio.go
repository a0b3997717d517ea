// Package mapio exports generated maps as text and YAML documents.
package mapio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/samdwyer/dungeonmap/internal/world"
)

// ErrMalformedDocument is returned when a document's rows do not match its dimensions.
var ErrMalformedDocument = errors.New("malformed map document")

// Document is the YAML form of a generated map.
type Document struct {
	ID          string    `yaml:"id"`
	Algorithm   string    `yaml:"algorithm"`
	Seed        int64     `yaml:"seed"`
	Depth       int       `yaml:"depth"`
	Width       int       `yaml:"width"`
	Height      int       `yaml:"height"`
	GeneratedAt time.Time `yaml:"generated_at"`
	Rooms       []RoomDoc `yaml:"rooms"`
	Rows        []string  `yaml:"rows"`
}

// RoomDoc is a placed room in a Document.
type RoomDoc struct {
	X1     int    `yaml:"x1"`
	Y1     int    `yaml:"y1"`
	X2     int    `yaml:"x2"`
	Y2     int    `yaml:"y2"`
	Center [2]int `yaml:"center,flow"`
}

// NewDocument describes m under a fresh ID.
func NewDocument(m *world.Map, algorithm string, seed int64) *Document {
	doc := &Document{
		ID:          uuid.NewString(),
		Algorithm:   algorithm,
		Seed:        seed,
		Depth:       m.Depth,
		Width:       m.Width,
		Height:      m.Height,
		GeneratedAt: time.Now().UTC(),
		Rooms:       make([]RoomDoc, 0, len(m.Rooms)),
		Rows:        Rows(m),
	}
	for _, r := range m.Rooms {
		cx, cy := r.Center()
		doc.Rooms = append(doc.Rooms, RoomDoc{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2, Center: [2]int{cx, cy}})
	}
	return doc
}

// Map rebuilds the tile grid and rooms described by the document.
func (d *Document) Map() (*world.Map, error) {
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrMalformedDocument, d.Width, d.Height)
	}
	if len(d.Rows) != d.Height {
		return nil, fmt.Errorf("%w: %d rows for height %d", ErrMalformedDocument, len(d.Rows), d.Height)
	}

	m := world.NewMapWithDimensions(d.Width, d.Height, d.Depth)
	for y, row := range d.Rows {
		if len(row) != d.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedDocument, y, len(row), d.Width)
		}
		for x, ch := range row {
			switch ch {
			case '.':
				m.Tiles[m.XYIdx(x, y)] = world.TileFloor
			case '#':
			default:
				return nil, fmt.Errorf("%w: unknown glyph %q at (%d,%d)", ErrMalformedDocument, ch, x, y)
			}
		}
	}
	for _, r := range d.Rooms {
		m.Rooms = append(m.Rooms, world.Rect{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2})
	}
	return m, nil
}

// Rows renders each map row as a string of tile glyphs.
func Rows(m *world.Map) []string {
	rows := make([]string, m.Height)
	var b strings.Builder
	for y := 0; y < m.Height; y++ {
		b.Reset()
		for x := 0; x < m.Width; x++ {
			b.WriteRune(m.Tiles[m.XYIdx(x, y)].Rune())
		}
		rows[y] = b.String()
	}
	return rows
}

// ASCII renders the whole map, one line per row, ignoring visibility.
func ASCII(m *world.Map) string {
	return strings.Join(Rows(m), "\n") + "\n"
}

// Write encodes doc as YAML.
func Write(w io.Writer, doc *Document) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode map %s: %w", doc.ID, err)
	}
	return encoder.Close()
}

// WriteFile writes doc to path with a short header comment.
func WriteFile(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "# Depth %d map (%s)\n", doc.Depth, doc.Algorithm)
	fmt.Fprintf(f, "# Generated with seed: %d\n", doc.Seed)
	fmt.Fprintf(f, "# Room count: %d\n\n", len(doc.Rooms))

	if err := Write(f, doc); err != nil {
		return err
	}
	return f.Close()
}

// Read decodes a YAML document.
func Read(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse map document: %w", err)
	}
	return &doc, nil
}
