package object

import (
	"errors"
	"math/rand"

	"github.com/tomz197/circles/internal/draw"
)

// Palette is a set of colors particles are painted with.
type Palette []draw.Color

// NewPalette parses hex colors into a palette.
func NewPalette(hexes []string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, errors.New("palette needs at least one color")
	}
	p := make(Palette, 0, len(hexes))
	for _, hex := range hexes {
		c, err := draw.ParseColor(hex)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

// Random returns a uniformly chosen color from the palette.
func (p Palette) Random(rng *rand.Rand) draw.Color {
	return p[rng.Intn(len(p))]
}
