package object

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Text is a styled text overlay.
// Coordinates are 1-based terminal positions.
type Text struct {
	X     int
	Y     int
	Value string
	Style lipgloss.Style
}

// Width returns the printed width of the text in terminal cells.
func (t Text) Width() int {
	return lipgloss.Width(t.Value)
}

// Draw writes the styled text at its position using ANSI cursor movement.
func (t Text) Draw(w io.Writer) error {
	if t.Value == "" {
		return nil
	}
	x := t.X
	y := t.Y
	if x < 1 {
		x = 1
	}
	if y < 1 {
		y = 1
	}
	if _, err := fmt.Fprintf(w, "\033[%d;%dH%s", y, x, t.Style.Render(t.Value)); err != nil {
		return err
	}
	return nil
}
