package mapio

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/samdwyer/dungeonmap/internal/world"
)

func TestASCIIAllOpen(t *testing.T) {
	m := world.NewMapAllOpen(0)
	lines := strings.Split(strings.TrimSuffix(ASCII(m), "\n"), "\n")

	if len(lines) != m.Height {
		t.Fatalf("Expected %d lines, got %d", m.Height, len(lines))
	}
	wall := strings.Repeat("#", m.Width)
	inner := "#" + strings.Repeat(".", m.Width-2) + "#"
	if lines[0] != wall || lines[m.Height-1] != wall {
		t.Error("Top and bottom rows should be solid wall")
	}
	for y := 1; y < m.Height-1; y++ {
		if lines[y] != inner {
			t.Fatalf("Row %d = %q", y, lines[y])
		}
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	rng := world.NewRandomNumberGeneratorWithSeed(2024)
	m := world.GenerateRoomsAndCorridors(context.Background(), 3, rng)
	doc := NewDocument(m, world.AlgorithmRoomsAndCorridors, 2024)

	if _, err := uuid.Parse(doc.ID); err != nil {
		t.Errorf("Document ID %q is not a UUID: %v", doc.ID, err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	decoded, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if decoded.ID != doc.ID || decoded.Seed != 2024 || decoded.Depth != 3 {
		t.Errorf("Metadata mismatch: %+v", decoded)
	}

	got, err := decoded.Map()
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	if len(got.Rooms) != len(m.Rooms) {
		t.Fatalf("Room count mismatch: %d != %d", len(got.Rooms), len(m.Rooms))
	}
	for i := range m.Rooms {
		if got.Rooms[i] != m.Rooms[i] {
			t.Errorf("Room %d mismatch: %+v != %+v", i, got.Rooms[i], m.Rooms[i])
		}
	}
	for i := range m.Tiles {
		if got.Tiles[i] != m.Tiles[i] {
			x, y := m.IdxXY(i)
			t.Fatalf("Tile mismatch at (%d,%d)", x, y)
		}
	}
}

func TestDocumentMapMalformed(t *testing.T) {
	cases := []struct {
		name string
		doc  Document
	}{
		{"zero width", Document{Width: 0, Height: 1, Rows: []string{""}}},
		{"missing row", Document{Width: 2, Height: 2, Rows: []string{"##"}}},
		{"short row", Document{Width: 3, Height: 1, Rows: []string{"##"}}},
		{"bad glyph", Document{Width: 2, Height: 1, Rows: []string{"#x"}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := c.doc.Map(); !errors.Is(err, ErrMalformedDocument) {
				t.Errorf("Expected ErrMalformedDocument, got %v", err)
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.yaml")
	doc := NewDocument(world.NewMapAllOpen(1), world.AlgorithmAllOpen, 0)

	if err := WriteFile(path, doc); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	decoded, err := Read(f)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if decoded.Algorithm != world.AlgorithmAllOpen || len(decoded.Rooms) != 1 {
		t.Errorf("Unexpected document: %+v", decoded)
	}
	if decoded.Rooms[0].Center != [2]int{39, 24} {
		t.Errorf("Unexpected room center %v", decoded.Rooms[0].Center)
	}
}
