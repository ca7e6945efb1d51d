package view

import "errors"

// Settings validation errors.
var (
	// ErrInvalidZoom indicates a zoom factor below 1.
	ErrInvalidZoom = errors.New("view: zoom must be at least 1")

	// ErrInvalidRowWidth indicates a row width below 1.
	ErrInvalidRowWidth = errors.New("view: row width must be at least 1")

	// ErrInvalidStride indicates a stride below 1.
	ErrInvalidStride = errors.New("view: stride must be at least 1")

	// ErrNegativeOffset indicates a negative scan offset.
	ErrNegativeOffset = errors.New("view: offset must not be negative")

	// ErrInvalidScheme indicates a scheme value outside the enumeration.
	ErrInvalidScheme = errors.New("view: unknown color scheme")

	// ErrCanvasSize indicates non-positive canvas dimensions.
	ErrCanvasSize = errors.New("view: canvas dimensions must be positive")
)
