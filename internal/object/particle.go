package object

import (
	"math/rand"
	"sync"

	"github.com/tomz197/circles/internal/draw"
	"github.com/tomz197/circles/internal/physics"
)

// particlePool is a sync.Pool for reusing Particle objects across scene rebuilds.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a moving circle that bounces off the scene edges.
// Radius and mass are fixed at creation.
type Particle struct {
	X, Y   float64    // Position (center)
	VX, VY float64    // Velocity in logical units per frame
	Color  draw.Color // Outline color

	radius      float64
	mass        float64
	flash       int        // Frames of collision highlight remaining
	flashFrames int        // Length of the current highlight
	flashC      draw.Color // Highlight color
}

// NewParticle creates a particle from the pool.
func NewParticle(x, y, vx, vy, radius, mass float64, color draw.Color) *Particle {
	p := particlePool.Get().(*Particle)
	*p = Particle{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Color:  color,
		radius: radius,
		mass:   mass,
	}
	return p
}

// NewDriftingParticle creates a particle with a random velocity whose components
// are drawn from [-0.5, 0.5) and multiplied by speed.
func NewDriftingParticle(x, y, radius, mass, speed float64, color draw.Color, rng *rand.Rand) *Particle {
	vx := (rng.Float64() - 0.5) * speed
	vy := (rng.Float64() - 0.5) * speed
	return NewParticle(x, y, vx, vy, radius, mass, color)
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the scene.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Radius returns the particle radius.
func (p *Particle) Radius() float64 {
	return p.radius
}

// Mass returns the particle mass.
func (p *Particle) Mass() float64 {
	return p.mass
}

// Position returns the particle center.
func (p *Particle) Position() physics.Vector {
	return physics.Vector{X: p.X, Y: p.Y}
}

// Velocity returns the particle velocity.
func (p *Particle) Velocity() physics.Vector {
	return physics.Vector{X: p.VX, Y: p.VY}
}

// SetVelocity replaces the particle velocity.
func (p *Particle) SetVelocity(v physics.Vector) {
	p.VX, p.VY = v.X, v.Y
}

// Body returns the particle state for collision math.
func (p *Particle) Body() physics.Body {
	return physics.Body{Position: p.Position(), Velocity: p.Velocity(), Mass: p.mass}
}

// Overlaps reports whether the two particles' circles overlap.
func (p *Particle) Overlaps(o *Particle) bool {
	return physics.Separation(p.X, p.Y, p.radius, o.X, o.Y, o.radius) < 0
}

// Flash highlights the particle with color c for the given number of frames.
func (p *Particle) Flash(c draw.Color, frames int) {
	p.flashC = c
	p.flash = frames
	p.flashFrames = frames
}

// Update reflects the velocity at the scene edges, then moves the particle
// by one velocity step.
func (p *Particle) Update(ctx UpdateContext) (bool, error) {
	p.reflect(ctx.Bounds)

	p.X += p.VX
	p.Y += p.VY

	if p.flash > 0 {
		p.flash--
	}
	return false, nil
}

// reflect negates each velocity component whose next step would carry the
// particle's edge past the scene bounds. Particles already outside and heading
// back in keep their velocity, so they cannot get stuck flipping at a wall.
func (p *Particle) reflect(bounds Screen) {
	w := float64(bounds.Width)
	h := float64(bounds.Height)

	nextX := p.X + p.VX
	if (nextX < p.radius && p.VX < 0) || (nextX > w-p.radius && p.VX > 0) {
		p.VX = -p.VX
	}

	nextY := p.Y + p.VY
	if (nextY < p.radius && p.VY < 0) || (nextY > h-p.radius && p.VY > 0) {
		p.VY = -p.VY
	}
}

// Draw renders the particle outline, tinted while a collision highlight is active.
func (p *Particle) Draw(ctx DrawContext) error {
	col := p.Color
	if p.flash > 0 && p.flashFrames > 0 {
		col = p.Color.Blend(p.flashC, float64(p.flash)/float64(p.flashFrames))
	}
	ctx.Canvas.StrokeCircle(p.X, p.Y, p.radius, col)
	return nil
}

// ResolveCollision applies an elastic collision response to two particles.
// Returns false, leaving both velocities untouched, when the particles are not
// approaching each other.
func ResolveCollision(a, b *Particle) bool {
	va, vb, ok := physics.Elastic(a.Body(), b.Body())
	if !ok {
		return false
	}
	a.SetVelocity(va)
	b.SetVelocity(vb)
	return true
}
