package loop

import (
	"fmt"
	"math/rand"

	"github.com/tomz197/circles/internal/config"
	"github.com/tomz197/circles/internal/draw"
	"github.com/tomz197/circles/internal/input"
	"github.com/tomz197/circles/internal/object"
)

// State holds one simulation session: the scene, its objects and the
// per-session counters shown in the HUD. Each terminal gets its own State.
type State struct {
	Settings   config.Settings
	Scene      config.Scene
	Objects    []object.Object
	Bounds     object.Screen  // Logical drawing area
	Pointer    object.Pointer // Last pointer position in logical coordinates
	Frame      uint64
	Collisions int // Resolved collisions (elastic) or overlapping pair-frames (overlap)
	Paused     bool
	Running    bool
	Err        error // Last scene build failure, cleared by the next successful build

	particles []*object.Particle // Particles in Objects order, rebuilt every frame
	built     bool               // A build was attempted for the current bounds
	rng       *rand.Rand
	palette   object.Palette
	colors    sceneColors
}

type sceneColors struct {
	targetIdle draw.Color
	targetHit  draw.Color
	tracker    draw.Color
	flash      draw.Color
}

// Hooks receive simulation events from Step. Nil hooks are skipped.
type Hooks struct {
	// Collided is called after the pair (i, j) was resolved in the elastic scene.
	// speed is their relative speed before the bounce.
	Collided func(i, j int, speed float64)
	// Overlapped is called for every overlapping pair in the overlap scene.
	Overlapped func(i, j int)
}

// NewState creates a session for the given settings. The scene is built on
// the first Resize, once the drawing area is known.
func NewState(settings config.Settings, rng *rand.Rand) (*State, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	palette, err := object.NewPalette(config.Palette)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}

	return &State{
		Settings: settings,
		Scene:    settings.Scene,
		Running:  true,
		rng:      rng,
		palette:  palette,
		colors: sceneColors{
			targetIdle: draw.MustColor(config.TargetIdleColor),
			targetHit:  draw.MustColor(config.TargetHitColor),
			tracker:    draw.MustColor(config.TrackerColor),
			flash:      draw.MustColor(config.FlashColor),
		},
	}, nil
}

// Particles returns the particles of the current scene.
func (s *State) Particles() []*object.Particle {
	return s.particles
}

// Apply updates the session from one frame of key input.
// Returns true when the scene has to be rebuilt.
func (s *State) Apply(in input.Input) (rebuild bool) {
	if in.Quit || in.Escape {
		s.Running = false
		return false
	}
	if in.Pause {
		s.Paused = !s.Paused
	}
	if in.NextScene {
		s.Scene = s.Scene.Next()
		rebuild = true
	}
	if in.Number > 0 && s.Scene != config.SceneProximity {
		s.Settings.Count = in.Number
		rebuild = true
	}
	if in.Reset {
		rebuild = true
	}
	return rebuild
}
