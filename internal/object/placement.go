package object

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/tomz197/circles/internal/physics"
)

// ErrPlacement is returned when circles cannot be placed without overlap.
var ErrPlacement = errors.New("placement failed")

// Place picks n random centers inside bounds for circles of the given radius so that
// no two circles overlap (center distance >= 2*radius). Each circle gets up to
// maxAttempts random candidates before Place gives up with an error wrapping
// ErrPlacement.
func Place(bounds Screen, n int, radius float64, rng *rand.Rand, maxAttempts int) ([]physics.Vector, error) {
	if n <= 0 {
		return nil, nil
	}

	w := float64(bounds.Width)
	h := float64(bounds.Height)
	fail := func() error {
		return fmt.Errorf("%w: cannot place %d non-overlapping circles of radius %g in bounds %dx%d",
			ErrPlacement, n, radius, bounds.Width, bounds.Height)
	}

	if radius <= 0 || w < 2*radius || h < 2*radius || maxAttempts < 1 {
		return nil, fail()
	}

	placed := make([]physics.Vector, 0, n)
	for len(placed) < n {
		found := false
		for attempt := 0; attempt < maxAttempts; attempt++ {
			candidate := physics.Vector{
				X: randomInRange(rng, radius, w-radius),
				Y: randomInRange(rng, radius, h-radius),
			}
			if fitsAmong(candidate, placed, radius) {
				placed = append(placed, candidate)
				found = true
				break
			}
		}
		if !found {
			return nil, fail()
		}
	}

	return placed, nil
}

// fitsAmong reports whether a circle at c keeps clear of every placed circle.
func fitsAmong(c physics.Vector, placed []physics.Vector, radius float64) bool {
	for _, p := range placed {
		if physics.CirclesOverlap(c.X, c.Y, radius, p.X, p.Y, radius) {
			return false
		}
	}
	return true
}

// randomInRange returns a value in [lo, hi].
func randomInRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
