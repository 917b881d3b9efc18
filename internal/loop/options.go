package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/tomz197/circles/internal/config"
	"github.com/tomz197/circles/internal/draw"
	"github.com/tomz197/circles/internal/input"
	"github.com/tomz197/circles/internal/object"
)

// Player reacts to collisions with sound.
type Player interface {
	// Collide plays a tone for a collision at the given relative speed.
	Collide(speed float64)
}

type silentPlayer struct{}

func (silentPlayer) Collide(float64) {}

// Options configures a frontend run.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Terminal size source for Run (defaults to stdout)
	Settings     config.Settings   // Zero value means config.Defaults()
	Logger       *log.Logger       // Nil discards logs
	Sound        Player            // Nil plays nothing
	Rand         *rand.Rand        // Nil seeds from Settings.Seed or the clock
}

func (o Options) withDefaults() Options {
	if o.TermSizeFunc == nil {
		o.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if o.Settings == (config.Settings{}) {
		o.Settings = config.Defaults()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Sound == nil {
		o.Sound = silentPlayer{}
	}
	if o.Rand == nil {
		seed := o.Settings.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		o.Rand = rand.New(rand.NewSource(seed))
	}
	return o
}

// hooks routes simulation events to the sound player and the logger.
func (o Options) hooks() Hooks {
	return Hooks{
		Collided: func(i, j int, speed float64) {
			o.Sound.Collide(speed)
		},
		Overlapped: func(i, j int) {
			o.Logger.Debug("has collided", "a", i, "b", j)
		},
	}
}

// colorProfile maps a CIRCLES_COLOR value to a termenv profile.
func colorProfile(name string) termenv.Profile {
	switch name {
	case "256":
		return termenv.ANSI256
	case "none":
		return termenv.Ascii
	default:
		return termenv.TrueColor
	}
}

// handleInput applies one frame of input. Pointer reports arrive in terminal
// cells and are converted with toLogical.
func handleInput(s *State, in input.Input, toLogical func(col, row int) (float64, float64), logger *log.Logger) {
	if in.Pointer.Moved {
		x, y := toLogical(in.Pointer.Col, in.Pointer.Row)
		s.Pointer = object.Pointer{X: x, Y: y, Valid: true}
	}
	if s.Apply(in) {
		rebuild(s, logger)
	}
}

// rebuild reinitializes the scene, logging a failed build.
func rebuild(s *State, logger *log.Logger) {
	if err := s.Init(); err != nil {
		logger.Warn("scene build failed", "scene", s.Scene, "err", err)
		return
	}
	logger.Debug("scene built", "scene", s.Scene, "bounds", s.Bounds, "objects", len(s.Objects))
}

// resize applies new logical bounds, logging a failed build.
func resize(s *State, width, height int, logger *log.Logger) {
	if err := s.Resize(width, height); err != nil {
		logger.Warn("scene build failed", "scene", s.Scene, "width", width, "height", height, "err", err)
	}
}
