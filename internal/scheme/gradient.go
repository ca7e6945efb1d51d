package scheme

import (
	"sync"

	"github.com/mazznoer/colorgrad"
)

// GradientName identifies one of the continuous perceptual gradients.
type GradientName uint8

const (
	GradientMagma GradientName = iota
	GradientPlasma
	GradientViridis
	GradientRainbow

	numGradients
)

var gradientNames = [numGradients]string{"magma", "plasma", "viridis", "rainbow"}

func (g GradientName) String() string {
	if g < numGradients {
		return gradientNames[g]
	}
	return "unknown"
}

func (g GradientName) gradient() colorgrad.Gradient {
	switch g {
	case GradientPlasma:
		return colorgrad.Plasma()
	case GradientViridis:
		return colorgrad.Viridis()
	case GradientRainbow:
		return colorgrad.Rainbow()
	default:
		return colorgrad.Magma()
	}
}

type gradientTable struct {
	once sync.Once
	lut  [256]RGBA
}

var gradientTables [numGradients]gradientTable

// Gradient samples g at b/255. Tables are built on first use and read-only afterwards,
// so concurrent callers are safe.
func Gradient(g GradientName, b byte) RGBA {
	if g >= numGradients {
		g = GradientMagma
	}
	t := &gradientTables[g]
	t.once.Do(func() {
		grad := g.gradient()
		for i := range t.lut {
			t.lut[i] = sampleGradient(grad, byte(i))
		}
	})
	return t.lut[b]
}

// sampleGradient quantizes by truncating channel*255. Rounding would shift
// boundary values by one and break pixel-exact comparisons.
func sampleGradient(grad colorgrad.Gradient, b byte) RGBA {
	c := grad.At(float64(b) / 255.0).Clamped()
	return RGBA{
		uint8(c.R * 255.0),
		uint8(c.G * 255.0),
		uint8(c.B * 255.0),
		255,
	}
}
