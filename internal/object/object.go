// Package object defines the circles that live in a scene and how they update and draw.
package object

import (
	"io"

	"github.com/tomz197/circles/internal/draw"
)

// Pointer is the last known pointer position in logical coordinates.
// Valid is false until the first pointer report arrives.
type Pointer struct {
	X, Y  float64
	Valid bool
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Frame   uint64
	Pointer Pointer
	Bounds  Screen
	Objects []Object
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // High-resolution canvas (2x vertical)
	Writer io.Writer    // Direct terminal output (for text overlays)
}

// Screen represents the logical drawing area.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen returns a screen of the given logical size.
func NewScreen(width, height int) Screen {
	return Screen{Width: width, Height: height, CenterX: width / 2, CenterY: height / 2}
}

// Object is a drawable and updatable scene entity.
type Object interface {
	// Update updates the object state. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object. Use ctx.Canvas for shapes, ctx.Writer for text.
	Draw(ctx DrawContext) error
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// FilterParticles returns all Particle objects from the given object slice.
// dst is reused to avoid allocations.
func FilterParticles(dst []*Particle, objects []Object) []*Particle {
	dst = dst[:0]
	for _, obj := range objects {
		if p, ok := obj.(*Particle); ok {
			dst = append(dst, p)
		}
	}
	return dst
}
