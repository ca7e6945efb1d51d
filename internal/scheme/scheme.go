package scheme

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrUnknownScheme = errors.New("scheme: unknown color scheme")

// RGBA is one output pixel, 4 bytes in canvas order.
type RGBA [4]uint8

// Transparent is emitted for pixels that map outside the row or past the end of the buffer.
var Transparent = RGBA{0, 0, 0, 0}

// Scheme selects the byte-to-color mapping used for a frame.
type Scheme uint8

const (
	Category Scheme = iota
	Colorful
	Grayscale
	Magma
	Plasma
	Viridis
	Rainbow

	numSchemes
)

var schemeNames = [numSchemes]string{
	Category:  "category",
	Colorful:  "colorful",
	Grayscale: "grayscale",
	Magma:     "magma",
	Plasma:    "plasma",
	Viridis:   "viridis",
	Rainbow:   "rainbow",
}

// Map returns the color of b under s.
func (s Scheme) Map(b byte) RGBA {
	switch s {
	case Category:
		return CategoryColor(b)
	case Colorful:
		return ColorfulColor(b)
	case Magma:
		return Gradient(GradientMagma, b)
	case Plasma:
		return Gradient(GradientPlasma, b)
	case Viridis:
		return Gradient(GradientViridis, b)
	case Rainbow:
		return Gradient(GradientRainbow, b)
	default:
		return GrayscaleColor(b)
	}
}

func (s Scheme) String() string {
	if s < numSchemes {
		return schemeNames[s]
	}
	return fmt.Sprintf("scheme(%d)", uint8(s))
}

// Valid reports whether s is one of the declared schemes.
func (s Scheme) Valid() bool { return s < numSchemes }

// Next returns the scheme after s, wrapping around.
func (s Scheme) Next() Scheme {
	if !s.Valid() {
		return Category
	}
	return (s + 1) % numSchemes
}

// Prev returns the scheme before s, wrapping around.
func (s Scheme) Prev() Scheme {
	if !s.Valid() || s == 0 {
		return numSchemes - 1
	}
	return s - 1
}

// All lists every scheme in declaration order.
func All() []Scheme {
	out := make([]Scheme, numSchemes)
	for i := range out {
		out[i] = Scheme(i)
	}
	return out
}

// Names lists every scheme name in declaration order.
func Names() []string {
	return slices.Clone(schemeNames[:])
}

// ParseScheme accepts a scheme name, case-insensitively. The "gradient-" prefix is optional.
func ParseScheme(name string) (Scheme, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "gradient-")
	n = strings.TrimPrefix(n, "gradient_")
	if n == "gray" || n == "greyscale" {
		n = "grayscale"
	}
	for i, candidate := range schemeNames {
		if candidate == n {
			return Scheme(i), nil
		}
	}
	return Grayscale, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScheme, name, strings.Join(Names(), ", "))
}

func (s Scheme) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScheme, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Scheme) UnmarshalText(text []byte) error {
	parsed, err := ParseScheme(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
