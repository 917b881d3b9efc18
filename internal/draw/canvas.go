package draw

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []bool  // Flat slice: [y * termWidth + x] - true if pixel is set
	colors         []Color // Color of each set pixel, same layout as pixels

	// Scaling from logical to pixel coordinates
	logicalWidth  float64 // Target/logical width
	logicalHeight float64 // Target/logical height (in sub-pixels)
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	profile  termenv.Profile  // Color capability used by Render
	seqCache map[Color]string // Cached foreground/background SGR parameters per color

	renderBuf strings.Builder // Buffer for batching render output
	numBuf    [20]byte        // Scratch buffer for integer formatting
}

// NewCanvas creates a canvas for the given terminal dimensions.
// The canvas has 2x vertical resolution (height*2 sub-pixels).
// No scaling is applied (1:1 mapping).
func NewCanvas(width, height int) *Canvas {
	return NewScaledCanvas(width, height, float64(width), float64(height*2))
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	termWidth = max(termWidth, 0)
	termHeight = max(termHeight, 0)
	subPixelHeight := termHeight * 2
	c := &Canvas{
		termWidth:      termWidth,
		termHeight:     termHeight,
		subPixelHeight: subPixelHeight,
		pixels:         make([]bool, subPixelHeight*termWidth),
		colors:         make([]Color, subPixelHeight*termWidth),
		logicalWidth:   logicalWidth,
		logicalHeight:  logicalHeight,
		profile:        termenv.TrueColor,
		seqCache:       make(map[Color]string),
	}
	c.updateScale()
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 0)
	termHeight = max(termHeight, 0)
	subPixelHeight := termHeight * 2

	// Reallocate if size changed
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.colors = make([]Color, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.updateScale()
}

// ResizeLogical resizes the canvas and maps logical coordinates 1:1 onto pixels.
func (c *Canvas) ResizeLogical(termWidth, termHeight int) {
	c.logicalWidth = float64(max(termWidth, 0))
	c.logicalHeight = float64(max(termHeight, 0) * 2)
	c.Resize(termWidth, termHeight)
}

func (c *Canvas) updateScale() {
	c.scaleX, c.scaleY = 0, 0
	if c.logicalWidth > 0 {
		c.scaleX = float64(c.termWidth) / c.logicalWidth
	}
	if c.logicalHeight > 0 {
		c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
	}
}

// SetProfile sets the color capability used when rendering ANSI output.
// termenv.Ascii renders shapes without color.
func (c *Canvas) SetProfile(p termenv.Profile) {
	if p == c.profile {
		return
	}
	c.profile = p
	clear(c.seqCache)
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		idx := y*c.termWidth + x
		c.pixels[idx] = true
		c.colors[idx] = col
	}
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64, col Color) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	c.setPixel(px, py, col)
}

// drawPixelLine draws a line between two points in pixel space.
func (c *Canvas) drawPixelLine(x1, y1, x2, y2 int, col Color) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// StrokeCircle draws the outline of a circle centered at (cx, cy) in logical space.
// The outline is traced as a closed polyline in pixel space, so it stays connected
// at any scale.
func (c *Canvas) StrokeCircle(cx, cy, radius float64, col Color) {
	if radius <= 0 {
		return
	}

	pcx, pcy := cx*c.scaleX, cy*c.scaleY
	rx, ry := radius*c.scaleX, radius*c.scaleY

	// One segment per pixel of circumference keeps the outline smooth
	segments := max(int(math.Ceil(2*math.Pi*math.Max(rx, ry))), 8)

	prevX := int(math.Round(pcx + rx))
	prevY := int(math.Round(pcy))
	for i := 1; i <= segments; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(segments))
		x := int(math.Round(pcx + rx*cos))
		y := int(math.Round(pcy + ry*sin))
		c.drawPixelLine(prevX, prevY, x, y, col)
		prevX, prevY = x, y
	}
}

// FillCircle fills a circle centered at (cx, cy) in logical space.
// Works in pixel space with one scanline per sub-pixel row, sampling at pixel centers.
func (c *Canvas) FillCircle(cx, cy, radius float64, col Color) {
	if radius <= 0 {
		return
	}

	pcx, pcy := cx*c.scaleX, cy*c.scaleY
	rx, ry := radius*c.scaleX, radius*c.scaleY
	if rx <= 0 || ry <= 0 {
		return
	}

	yStart := int(math.Floor(pcy - ry))
	yEnd := int(math.Ceil(pcy + ry))

	for y := yStart; y <= yEnd; y++ {
		dy := (float64(y) + 0.5 - pcy) / ry
		if dy < -1 || dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		xStart := int(math.Ceil(pcx - half - 0.5))
		xEnd := int(math.Floor(pcx + half - 0.5))
		for x := xStart; x <= xEnd; x++ {
			c.setPixel(x, y, col)
		}
	}
}

// cell returns the glyph and colors for a terminal cell.
// ok is false for empty cells.
func (c *Canvas) cell(col, row int) (ch rune, fg, bg Color, hasBg, ok bool) {
	topIdx := row*2*c.termWidth + col
	bottomIdx := topIdx + c.termWidth
	top := c.pixels[topIdx]
	bottom := row*2+1 < c.subPixelHeight && c.pixels[bottomIdx]

	switch {
	case top && bottom:
		if c.colors[topIdx] == c.colors[bottomIdx] {
			return BlockFull, c.colors[topIdx], Color{}, false, true
		}
		return BlockUpperHalf, c.colors[topIdx], c.colors[bottomIdx], true, true
	case top:
		return BlockUpperHalf, c.colors[topIdx], Color{}, false, true
	case bottom:
		return BlockLowerHalf, c.colors[bottomIdx], Color{}, false, true
	default:
		return BlockEmpty, Color{}, Color{}, false, false
	}
}

// colorSeq returns the SGR parameters for col in the current profile,
// as foreground and background.
func (c *Canvas) colorSeq(col Color) (fg, bg string) {
	if cached, ok := c.seqCache[col]; ok {
		fg, bg, _ = strings.Cut(cached, "|")
		return fg, bg
	}
	tc := c.profile.Color(col.Hex())
	if tc != nil {
		fg = tc.Sequence(false)
		bg = tc.Sequence(true)
	}
	c.seqCache[col] = fg + "|" + bg
	return fg, bg
}

// Render outputs the canvas to the writer using half-block characters.
// Cursor positions are 1-based terminal coordinates.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 4)

	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			ch, fg, bg, hasBg, ok := c.cell(col, row)
			if !ok {
				continue // Skip empty cells
			}

			c.renderBuf.WriteString(termenv.CSI)
			c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row+1), 10))
			c.renderBuf.WriteByte(';')
			c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col+1), 10))
			c.renderBuf.WriteByte('H')

			fgSeq, _ := c.colorSeq(fg)
			styled := fgSeq != ""
			if styled {
				c.renderBuf.WriteString(termenv.CSI + fgSeq)
				if hasBg {
					if _, bgSeq := c.colorSeq(bg); bgSeq != "" {
						c.renderBuf.WriteByte(';')
						c.renderBuf.WriteString(bgSeq)
					}
				}
				c.renderBuf.WriteByte('m')
			}
			c.renderBuf.WriteRune(ch)
			if styled {
				c.renderBuf.WriteString(termenv.CSI + termenv.ResetSeq + "m")
			}
		}
	}

	io.WriteString(w, c.renderBuf.String())
}

// RenderScreen draws the canvas onto a tcell screen, overwriting every cell.
// The caller is responsible for calling Show.
func (c *Canvas) RenderScreen(s tcell.Screen) {
	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			ch, fg, bg, hasBg, ok := c.cell(col, row)
			style := tcell.StyleDefault
			if ok {
				style = style.Foreground(fg.Tcell())
				if hasBg {
					style = style.Background(bg.Tcell())
				}
			}
			s.SetContent(col, row, ch, nil, style)
		}
	}
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// TerminalToLogical converts a 0-based terminal cell (as reported by mouse events)
// to logical coordinates. The vertical position lies between the cell's two sub-pixels.
func (c *Canvas) TerminalToLogical(col, row int) (x, y float64) {
	px := float64(col)
	py := float64(row)*2 + 0.5
	if c.scaleX > 0 {
		x = px / c.scaleX
	}
	if c.scaleY > 0 {
		y = py / c.scaleY
	}
	return x, y
}
