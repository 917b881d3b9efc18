package loop

import "github.com/tomz197/circles/internal/object"

// Step advances the session by one frame: every object updates with the
// current pointer, then particle pairs are checked for overlap.
// Paused or stopped sessions are left untouched.
func (s *State) Step(hooks Hooks) error {
	if !s.Running || s.Paused {
		return nil
	}

	ctx := object.UpdateContext{
		Frame:   s.Frame,
		Pointer: s.Pointer,
		Bounds:  s.Bounds,
		Objects: s.Objects,
	}

	kept := s.Objects[:0]
	for _, obj := range s.Objects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return err
		}
		if remove {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	s.Objects = kept

	s.particles = object.FilterParticles(s.particles, s.Objects)
	s.checkCollisions(hooks)

	s.Frame++
	return nil
}
