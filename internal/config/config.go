package config

import "time"

// Simulation defaults.
const (
	DefaultCount       = 4
	DefaultRadius      = 6.0
	DefaultMass        = 1.0
	DefaultSpeed       = 1.0
	DefaultMaxAttempts = 10000
	DefaultFPS         = 60
)

// Proximity scene.
const (
	TargetRadiusFraction = 0.25 // Target radius relative to the shorter viewport side
	TrackerRadius        = 3.0
)

// Colors (hex). The palette is the set particles pick from at random.
var Palette = []string{
	"#fbf8cc",
	"#fde4cf",
	"#ffcfd2",
	"#f1c0e8",
	"#cfbaf0",
	"#a3c4f3",
	"#90dbf4",
	"#8eecf5",
	"#98f5e1",
	"#b9fbc0",
}

const (
	TargetIdleColor = "#a3c4f3"
	TargetHitColor  = "#fde4cf"
	TrackerColor    = "#98f5e1"
	FlashColor      = "#ffffff"
	HUDColor        = "#cfbaf0"
	ErrorColor      = "#ffcfd2"
)

// Effects
const (
	FlashFrames = 8 // Frames a particle stays highlighted after a collision
)

// Sound
const (
	SoundBaseFrequency = 440.0                 // Hz for the slowest audible impact
	SoundMaxFrequency  = 1760.0                // Hz cap for fast impacts
	SoundDuration      = 40 * time.Millisecond // Length of one collision tone
	SoundSampleRate    = 44100
)

// Shutdown
const (
	ShutdownTimeout = 5 * time.Second
)

// FrameTime returns the target duration of a single frame.
func FrameTime(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
