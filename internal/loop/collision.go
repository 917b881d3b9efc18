package loop

import (
	"github.com/tomz197/circles/internal/config"
	"github.com/tomz197/circles/internal/object"
)

// checkCollisions scans every unordered particle pair once. In the elastic
// scene overlapping pairs that approach each other bounce; in the overlap
// scene they are only reported.
func (s *State) checkCollisions(hooks Hooks) {
	ps := s.particles
	for i := 0; i < len(ps); i++ {
		a := ps[i]
		for j := i + 1; j < len(ps); j++ {
			b := ps[j]
			if !a.Overlaps(b) {
				continue
			}

			switch s.Scene {
			case config.SceneElastic:
				speed := b.Velocity().Sub(a.Velocity()).Len()
				if !object.ResolveCollision(a, b) {
					continue
				}
				s.Collisions++
				a.Flash(s.colors.flash, config.FlashFrames)
				b.Flash(s.colors.flash, config.FlashFrames)
				if hooks.Collided != nil {
					hooks.Collided(i, j, speed)
				}
			case config.SceneOverlap:
				s.Collisions++
				if hooks.Overlapped != nil {
					hooks.Overlapped(i, j)
				}
			}
		}
	}
}
