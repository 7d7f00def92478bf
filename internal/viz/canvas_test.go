package viz

import (
	"strings"
	"testing"
)

func countDots(c *Canvas) int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			pattern := int(r - 0x2800)
			for pattern != 0 {
				n += pattern & 1
				pattern >>= 1
			}
		}
	}
	return n
}

func TestCanvasSetPacksSubpixels(t *testing.T) {
	c := NewCanvas(4, 4)

	// All four corners of the first cell's 2x4 dot grid.
	c.Set(0, 0)
	c.Set(1, 0)
	c.Set(0, 3)
	c.Set(1, 3)

	if c.Grid[0][0] != rune(0x2800|0x1|0x8|0x40|0x80) {
		t.Errorf("unexpected cell pattern: %#x", c.Grid[0][0])
	}
	if countDots(c) != 4 {
		t.Errorf("expected 4 dots, got %d", countDots(c))
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -5)
	c.Set(4, 0)
	c.Set(0, 8)
	if countDots(c) != 0 {
		t.Errorf("out-of-range Set should be a no-op, got %d dots", countDots(c))
	}
}

func TestCanvasUnset(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(1, 1)
	c.Unset(1, 1)
	if c.Grid[0][0] != 0x2800 {
		t.Errorf("expected empty cell after Unset, got %#x", c.Grid[0][0])
	}
}

func TestCanvasDrawLineHorizontal(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0)

	if countDots(c) != 8 {
		t.Errorf("expected 8 dots on a straight line, got %d", countDots(c))
	}
	for col := 0; col < 4; col++ {
		if c.Grid[0][col] != rune(0x2800|0x1|0x8) {
			t.Errorf("cell %d: got %#x", col, c.Grid[0][col])
		}
	}
}

func TestCanvasBlob(t *testing.T) {
	c := NewCanvas(8, 4)

	c.Blob(8, 8, 2)
	// Dots inside x^2+y^2 <= 4: the centre, four at distance 1, four
	// diagonals, four at distance 2.
	if countDots(c) != 13 {
		t.Errorf("expected 13 dots in a radius-2 disc, got %d", countDots(c))
	}

	c.Clear()
	c.Blob(4, 4, 0)
	if countDots(c) != 1 {
		t.Errorf("radius 0 should be a single dot, got %d", countDots(c))
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.DrawLine(0, 0, 7, 15)
	c.Clear()
	if countDots(c) != 0 {
		t.Errorf("expected empty canvas after Clear, got %d dots", countDots(c))
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("row %d: expected 3 runes, got %d", i, len([]rune(line)))
		}
	}
}

func TestMarkerRadius(t *testing.T) {
	if r := markerRadius(1000, 1000); r != 4 {
		t.Errorf("heaviest body: got %d, want 4", r)
	}
	if r := markerRadius(5, 1000); r != 1 {
		t.Errorf("light body: got %d, want 1", r)
	}
	if r := markerRadius(1, 0); r != 1 {
		t.Errorf("degenerate max mass: got %d, want 1", r)
	}
}
