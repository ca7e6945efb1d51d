package scheme

// GrayscaleColor maps b to an opaque gray of the same intensity.
func GrayscaleColor(b byte) RGBA {
	return RGBA{b, b, b, 255}
}

// ColorfulColor spreads b across the channels with wrapping multiplication.
// The overflow of b*2 and b*4 is intended.
func ColorfulColor(b byte) RGBA {
	return RGBA{b, b * 2, b * 4, 255}
}

// Class is the category a byte falls into for the category scheme.
type Class uint8

const (
	ClassNull Class = iota
	ClassGraphic
	ClassWhitespace
	ClassASCII
	ClassHigh

	NumClasses
)

var classNames = [NumClasses]string{"null", "graphic", "whitespace", "ascii", "high"}

func (c Class) String() string {
	if c < NumClasses {
		return classNames[c]
	}
	return "unknown"
}

var (
	ColorNull       = RGBA{0, 0, 0, 255}
	ColorGraphic    = RGBA{60, 255, 96, 255}
	ColorWhitespace = RGBA{240, 240, 240, 255}
	ColorASCII      = RGBA{60, 178, 255, 255}
	ColorHigh       = RGBA{249, 53, 94, 255}
)

var classColors = [NumClasses]RGBA{ColorNull, ColorGraphic, ColorWhitespace, ColorASCII, ColorHigh}

// Classify checks the classes in priority order; 0x00 wins over "other ASCII".
func Classify(b byte) Class {
	switch {
	case b == 0x00:
		return ClassNull
	case b >= 0x21 && b <= 0x7e:
		return ClassGraphic
	case isWhitespace(b):
		return ClassWhitespace
	case b < 0x80:
		return ClassASCII
	default:
		return ClassHigh
	}
}

// isWhitespace matches space, tab, line feed, form feed and carriage return.
// Vertical tab (0x0b) is not whitespace here.
func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// CategoryColor colors b by its Class.
func CategoryColor(b byte) RGBA {
	return classColors[Classify(b)]
}

// ClassColor returns the fixed color of c.
func ClassColor(c Class) RGBA {
	if c < NumClasses {
		return classColors[c]
	}
	return Transparent
}
