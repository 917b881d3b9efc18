// Package audio plays short tones for collisions.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/tomz197/circles/internal/config"
)

// Frequency maps an impact speed to a tone pitch. Faster impacts sound
// higher, up to SoundMaxFrequency.
func Frequency(speed float64) float64 {
	if math.IsNaN(speed) || speed < 0 {
		speed = 0
	}
	f := config.SoundBaseFrequency * math.Pow(2, speed/2)
	return min(f, config.SoundMaxFrequency)
}

// Speaker plays collision tones on the local sound device.
type Speaker struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	mixer  *beep.Mixer
	minGap time.Duration
	last   time.Time
	now    func() time.Time
}

// NewSpeaker initializes the sound device. At most one tone starts per minGap.
func NewSpeaker(minGap time.Duration) (*Speaker, error) {
	rate := beep.SampleRate(config.SoundSampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, err
	}

	s := newSpeaker(rate, minGap)
	speaker.Play(s.mixer)
	return s, nil
}

func newSpeaker(rate beep.SampleRate, minGap time.Duration) *Speaker {
	return &Speaker{
		rate:   rate,
		mixer:  &beep.Mixer{},
		minGap: minGap,
		now:    time.Now,
	}
}

// Collide queues a short sine tone pitched by speed.
// Calls closer together than the minimum gap are dropped.
func (s *Speaker) Collide(speed float64) {
	if !s.allow() {
		return
	}
	tone, err := s.tone(Frequency(speed))
	if err != nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(tone)
	speaker.Unlock()
}

// Close stops playback and releases the sound device.
func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

func (s *Speaker) allow() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !s.last.IsZero() && now.Sub(s.last) < s.minGap {
		return false
	}
	s.last = now
	return true
}

// tone returns a quiet sine wave of the given frequency lasting SoundDuration.
func (s *Speaker) tone(freq float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(s.rate, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(s.rate.N(config.SoundDuration), sine),
		Base:     2,
		Volume:   -2,
	}, nil
}
