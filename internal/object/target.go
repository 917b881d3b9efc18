package object

import (
	"github.com/tomz197/circles/internal/draw"
	"github.com/tomz197/circles/internal/physics"
)

// Target is a fixed filled circle that changes color while a tracker touches it.
type Target struct {
	X, Y      float64
	IdleColor draw.Color
	HitColor  draw.Color
	Touching  bool

	radius float64
}

// NewTarget creates a target centered at (x, y).
func NewTarget(x, y, radius float64, idle, hit draw.Color) *Target {
	return &Target{X: x, Y: y, radius: radius, IdleColor: idle, HitColor: hit}
}

// Radius returns the target radius.
func (t *Target) Radius() float64 {
	return t.radius
}

// Color returns the color the target is drawn with this frame.
func (t *Target) Color() draw.Color {
	if t.Touching {
		return t.HitColor
	}
	return t.IdleColor
}

// Contains reports whether the point (x, y) lies inside the target.
func (t *Target) Contains(x, y float64) bool {
	return physics.PointInCircle(x, y, t.X, t.Y, t.radius)
}

// Update checks every visible tracker for overlap. Trackers must be updated
// before the target within a frame so the check sees their new positions.
func (t *Target) Update(ctx UpdateContext) (bool, error) {
	t.Touching = false
	for _, obj := range ctx.Objects {
		tr, ok := obj.(*Tracker)
		if !ok || !tr.Visible {
			continue
		}
		if physics.CirclesOverlap(t.X, t.Y, t.radius, tr.X, tr.Y, tr.radius) {
			t.Touching = true
			break
		}
	}
	return false, nil
}

// Draw renders the target.
func (t *Target) Draw(ctx DrawContext) error {
	ctx.Canvas.FillCircle(t.X, t.Y, t.radius, t.Color())
	return nil
}
