package loop

import (
	"github.com/tomz197/circles/internal/config"
	"github.com/tomz197/circles/internal/object"
)

// Init (re)builds the current scene for the current bounds. Particles of the
// previous scene go back to their pool. On failure the scene is left empty and
// the error is kept in s.Err until the next successful build.
func (s *State) Init() error {
	s.release()
	s.built = true
	s.Frame = 0
	s.Collisions = 0
	s.Err = nil

	var err error
	switch s.Scene {
	case config.SceneProximity:
		s.Objects = s.proximityScene()
	default:
		s.Objects, err = s.particleScene()
	}
	if err != nil {
		s.Err = err
		return err
	}

	s.particles = object.FilterParticles(s.particles, s.Objects)
	return nil
}

// Resize sets new logical bounds and rebuilds the scene from scratch.
// Resizing to the current bounds after a build is a no-op.
func (s *State) Resize(width, height int) error {
	bounds := object.NewScreen(width, height)
	if s.built && bounds == s.Bounds {
		return nil
	}
	s.Bounds = bounds
	return s.Init()
}

// release returns pooled objects and empties the scene.
func (s *State) release() {
	for _, obj := range s.Objects {
		object.ReleaseObject(obj)
	}
	s.Objects = nil
	s.particles = s.particles[:0]
}

// particleScene places Count drifting particles without overlap.
func (s *State) particleScene() ([]object.Object, error) {
	st := s.Settings
	centers, err := object.Place(s.Bounds, st.Count, st.Radius, s.rng, st.MaxAttempts)
	if err != nil {
		return nil, err
	}

	objects := make([]object.Object, 0, len(centers))
	for _, c := range centers {
		color := s.palette.Random(s.rng)
		objects = append(objects, object.NewDriftingParticle(c.X, c.Y, st.Radius, st.Mass, st.Speed, color, s.rng))
	}
	return objects, nil
}

// proximityScene places the target at the center and a hidden tracker.
// The tracker comes first so the target sees its position from the same frame.
func (s *State) proximityScene() []object.Object {
	w := float64(s.Bounds.Width)
	h := float64(s.Bounds.Height)
	radius := config.TargetRadiusFraction * min(w, h)

	tracker := object.NewTracker(config.TrackerRadius, s.colors.tracker)
	target := object.NewTarget(w/2, h/2, radius, s.colors.targetIdle, s.colors.targetHit)
	return []object.Object{tracker, target}
}
