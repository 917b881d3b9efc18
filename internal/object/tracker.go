package object

import "github.com/tomz197/circles/internal/draw"

// Tracker is a filled circle that follows the pointer.
// It stays hidden until the first pointer report.
type Tracker struct {
	X, Y    float64
	Color   draw.Color
	Visible bool

	radius float64
}

// NewTracker creates a hidden tracker with the given radius.
func NewTracker(radius float64, color draw.Color) *Tracker {
	return &Tracker{Color: color, radius: radius}
}

// Radius returns the tracker radius.
func (t *Tracker) Radius() float64 {
	return t.radius
}

// Update moves the tracker to the current pointer position.
func (t *Tracker) Update(ctx UpdateContext) (bool, error) {
	if ctx.Pointer.Valid {
		t.X = ctx.Pointer.X
		t.Y = ctx.Pointer.Y
		t.Visible = true
	}
	return false, nil
}

// Draw renders the tracker when visible.
func (t *Tracker) Draw(ctx DrawContext) error {
	if !t.Visible {
		return nil
	}
	ctx.Canvas.FillCircle(t.X, t.Y, t.radius, t.Color)
	return nil
}
