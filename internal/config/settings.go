package config

import (
	"errors"
	"fmt"
	"strings"
)

// Scene selects which demo runs.
type Scene string

const (
	SceneElastic   Scene = "elastic"   // Particles bounce off walls and each other
	SceneOverlap   Scene = "overlap"   // Particles pass through each other, overlaps are logged
	SceneProximity Scene = "proximity" // A target lights up while the pointer circle touches it
)

// Scenes lists all scenes in cycling order.
var Scenes = []Scene{SceneElastic, SceneOverlap, SceneProximity}

// ParseScene parses a scene name (case-insensitive).
func ParseScene(s string) (Scene, error) {
	for _, scene := range Scenes {
		if strings.EqualFold(strings.TrimSpace(s), string(scene)) {
			return scene, nil
		}
	}
	return "", fmt.Errorf("unknown scene %q", s)
}

// Next returns the scene after s in cycling order.
func (s Scene) Next() Scene {
	for i, scene := range Scenes {
		if scene == s {
			return Scenes[(i+1)%len(Scenes)]
		}
	}
	return Scenes[0]
}

// Settings holds runtime configuration for a simulation session.
type Settings struct {
	Scene        Scene
	Count        int     // Particles in the elastic and overlap scenes
	Radius       float64 // Particle radius in logical units
	Mass         float64 // Mass of every particle
	Speed        float64 // Scale of the initial random velocity
	MaxAttempts  int     // Placement attempts per particle before giving up
	FPS          int
	Sound        bool
	ColorProfile string // truecolor, 256 or none
	LogLevel     string
	LogFile      string
	Seed         int64 // 0 picks a time-based seed
}

// Defaults returns settings with every field at its default value.
func Defaults() Settings {
	return Settings{
		Scene:        SceneElastic,
		Count:        DefaultCount,
		Radius:       DefaultRadius,
		Mass:         DefaultMass,
		Speed:        DefaultSpeed,
		MaxAttempts:  DefaultMaxAttempts,
		FPS:          DefaultFPS,
		ColorProfile: "truecolor",
		LogLevel:     "info",
	}
}

// Load reads settings from CIRCLES_* environment variables on top of the defaults.
func Load() (Settings, error) {
	s := Defaults()
	var errs []error

	scene, err := ParseScene(GetEnv("CIRCLES_SCENE", string(s.Scene)))
	if err != nil {
		errs = append(errs, fmt.Errorf("CIRCLES_SCENE: %w", err))
	} else {
		s.Scene = scene
	}

	s.Count, err = GetEnvInt("CIRCLES_COUNT", s.Count)
	errs = append(errs, err)
	s.Radius, err = GetEnvFloat("CIRCLES_RADIUS", s.Radius)
	errs = append(errs, err)
	s.Mass, err = GetEnvFloat("CIRCLES_MASS", s.Mass)
	errs = append(errs, err)
	s.Speed, err = GetEnvFloat("CIRCLES_SPEED", s.Speed)
	errs = append(errs, err)
	s.MaxAttempts, err = GetEnvInt("CIRCLES_MAX_ATTEMPTS", s.MaxAttempts)
	errs = append(errs, err)
	s.FPS, err = GetEnvInt("CIRCLES_FPS", s.FPS)
	errs = append(errs, err)
	s.Sound, err = GetEnvBool("CIRCLES_SOUND", s.Sound)
	errs = append(errs, err)

	var seed int
	seed, err = GetEnvInt("CIRCLES_SEED", 0)
	errs = append(errs, err)
	s.Seed = int64(seed)

	s.ColorProfile = strings.ToLower(GetEnv("CIRCLES_COLOR", s.ColorProfile))
	s.LogLevel = GetEnv("CIRCLES_LOG_LEVEL", s.LogLevel)
	s.LogFile = GetEnv("CIRCLES_LOG_FILE", s.LogFile)

	if err := errors.Join(errs...); err != nil {
		return s, err
	}
	return s, s.Validate()
}

// Validate reports every setting that is out of range.
func (s Settings) Validate() error {
	var errs []error
	if _, err := ParseScene(string(s.Scene)); err != nil {
		errs = append(errs, err)
	}
	if s.Count < 1 {
		errs = append(errs, fmt.Errorf("count must be at least 1, got %d", s.Count))
	}
	if s.Radius <= 0 {
		errs = append(errs, fmt.Errorf("radius must be positive, got %v", s.Radius))
	}
	if s.Mass <= 0 {
		errs = append(errs, fmt.Errorf("mass must be positive, got %v", s.Mass))
	}
	if s.Speed < 0 {
		errs = append(errs, fmt.Errorf("speed must not be negative, got %v", s.Speed))
	}
	if s.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("max attempts must be at least 1, got %d", s.MaxAttempts))
	}
	if s.FPS < 1 {
		errs = append(errs, fmt.Errorf("fps must be at least 1, got %d", s.FPS))
	}
	switch s.ColorProfile {
	case "truecolor", "256", "none":
	default:
		errs = append(errs, fmt.Errorf("unknown color profile %q", s.ColorProfile))
	}
	return errors.Join(errs...)
}
