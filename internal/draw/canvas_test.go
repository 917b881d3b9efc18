package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

var red = Color{R: 255}

func pixelAt(c *Canvas, x, y int) bool {
	return c.pixels[y*c.termWidth+x]
}

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(20, 10)

	if c.logicalWidth != 20 || c.logicalHeight != 20 {
		t.Errorf("logical size = %vx%v, expected 20x20", c.logicalWidth, c.logicalHeight)
	}
	if c.TerminalWidth() != 20 || c.TerminalHeight() != 10 {
		t.Errorf("terminal size = %dx%d, expected 20x10", c.TerminalWidth(), c.TerminalHeight())
	}
}

func TestCanvas_FillCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.FillCircle(10, 10, 3, red)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{name: "center", x: 10, y: 10, expected: true},
		{name: "inside_edge", x: 12, y: 10, expected: true},
		{name: "outside_right", x: 14, y: 10, expected: false},
		{name: "corner", x: 0, y: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pixelAt(c, tt.x, tt.y); got != tt.expected {
				t.Errorf("pixel (%d,%d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestCanvas_StrokeCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.StrokeCircle(10, 10, 4, red)

	if pixelAt(c, 10, 10) {
		t.Error("stroked circle should leave the center empty")
	}
	for _, p := range [][2]int{{14, 10}, {6, 10}, {10, 14}, {10, 6}} {
		if !pixelAt(c, p[0], p[1]) {
			t.Errorf("expected outline pixel at %v", p)
		}
	}
}

func TestCanvas_ClipsOutOfBounds(t *testing.T) {
	c := NewCanvas(5, 5)

	// Must not panic when shapes extend past the edges
	c.FillCircle(0, 0, 10, red)
	c.StrokeCircle(-20, -20, 3, red)
	c.drawPixelLine(-5, -5, 50, 50, red)
	c.SetFloat(100, 100, red)

	if !pixelAt(c, 0, 0) {
		t.Error("expected visible part of the fill to be drawn")
	}
}

func TestCanvas_Clear(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillCircle(5, 5, 2, red)
	c.Clear()

	for i, set := range c.pixels {
		if set {
			t.Fatalf("pixel %d still set after Clear", i)
		}
	}
}

func TestCanvas_Render(t *testing.T) {
	c := NewCanvas(20, 10)
	c.FillCircle(10, 10, 2, red)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	if !strings.Contains(out, "\033[6;11H") {
		t.Errorf("expected cursor move to row 6 col 11, got %q", out)
	}
	if !strings.ContainsRune(out, BlockFull) {
		t.Errorf("expected full block for a cell with both sub-pixels set, got %q", out)
	}
	if !strings.Contains(out, "38;2;255;0;0") {
		t.Errorf("expected truecolor foreground sequence, got %q", out)
	}
}

func TestCanvas_RenderHalfBlocks(t *testing.T) {
	c := NewCanvas(4, 2)
	blue := Color{B: 255}
	c.setPixel(0, 0, red)
	c.setPixel(1, 1, red)
	c.setPixel(2, 0, red)
	c.setPixel(2, 1, blue)

	tests := []struct {
		name     string
		col      int
		expected rune
		hasBg    bool
	}{
		{name: "top_only", col: 0, expected: BlockUpperHalf},
		{name: "bottom_only", col: 1, expected: BlockLowerHalf},
		{name: "two_colors", col: 2, expected: BlockUpperHalf, hasBg: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, _, _, hasBg, ok := c.cell(tt.col, 0)
			if !ok {
				t.Fatal("expected cell to be drawn")
			}
			if ch != tt.expected || hasBg != tt.hasBg {
				t.Errorf("cell = %q (bg %v), expected %q (bg %v)", ch, hasBg, tt.expected, tt.hasBg)
			}
		})
	}

	if _, _, _, _, ok := c.cell(3, 0); ok {
		t.Error("expected empty cell to be skipped")
	}
}

func TestCanvas_RenderWithoutColor(t *testing.T) {
	c := NewCanvas(10, 5)
	c.SetProfile(termenv.Ascii)
	c.FillCircle(5, 5, 2, red)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	if strings.Contains(out, "38;") {
		t.Errorf("expected no color sequences, got %q", out)
	}
	if !strings.ContainsRune(out, BlockFull) {
		t.Errorf("expected shapes to still be drawn, got %q", out)
	}
}

func TestCanvas_ResizeLogical(t *testing.T) {
	c := NewCanvas(10, 5)
	c.ResizeLogical(30, 12)

	if c.logicalWidth != 30 || c.logicalHeight != 24 {
		t.Errorf("logical size = %vx%v, expected 30x24", c.logicalWidth, c.logicalHeight)
	}
	if len(c.pixels) != 30*24 || len(c.colors) != 30*24 {
		t.Errorf("buffers not reallocated: %d pixels", len(c.pixels))
	}

	// Degenerate sizes must not panic
	c.ResizeLogical(0, 0)
	c.FillCircle(1, 1, 1, red)
	c.Render(&bytes.Buffer{})
}

func TestCanvas_TerminalToLogical(t *testing.T) {
	c := NewCanvas(20, 10)

	x, y := c.TerminalToLogical(3, 2)
	if x != 3 || y != 4.5 {
		t.Errorf("TerminalToLogical(3,2) = (%v,%v), expected (3,4.5)", x, y)
	}
}
