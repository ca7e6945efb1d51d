package view

import (
	"errors"

	"github.com/san-kum/bytelens/internal/scheme"
)

const (
	DefaultZoom         = 1
	DefaultRowWidth     = 804
	DefaultStride       = 1
	DefaultCanvasWidth  = 1024
	DefaultCanvasHeight = 1024

	MaxZoom = 64
)

// DefaultScheme is the scheme selected at startup.
const DefaultScheme = scheme.Colorful

// Settings is the view state shared between the mapper and the control surface.
// BufferLength and CanvasWidth are carried for display only.
type Settings struct {
	Zoom       int
	RowWidth   int
	Offset     int
	OffsetFine int
	Stride     int
	Scheme     scheme.Scheme

	BufferLength int
	CanvasWidth  int
}

func DefaultSettings(bufferLength, canvasWidth int) Settings {
	return Settings{
		Zoom:         DefaultZoom,
		RowWidth:     DefaultRowWidth,
		Stride:       DefaultStride,
		Scheme:       DefaultScheme,
		BufferLength: bufferLength,
		CanvasWidth:  canvasWidth,
	}
}

// Validate reports every broken invariant, joined.
func (s Settings) Validate() error {
	var errs []error
	if s.Zoom < 1 {
		errs = append(errs, ErrInvalidZoom)
	}
	if s.RowWidth < 1 {
		errs = append(errs, ErrInvalidRowWidth)
	}
	if s.Stride < 1 {
		errs = append(errs, ErrInvalidStride)
	}
	if s.Offset < 0 || s.OffsetFine < 0 {
		errs = append(errs, ErrNegativeOffset)
	}
	if !s.Scheme.Valid() {
		errs = append(errs, ErrInvalidScheme)
	}
	return errors.Join(errs...)
}

// BaseOffset is the buffer index of logical row 0, column 0.
func (s Settings) BaseOffset() int {
	return s.Offset + s.OffsetFine
}

// BytesPerRow is the number of buffer bytes one logical row advances.
func (s Settings) BytesPerRow() int {
	n := s.normalized()
	return n.RowWidth * n.Stride
}

// VisibleBytes is the span of the buffer covered by a canvas of the given size.
func (s Settings) VisibleBytes(canvasWidth, canvasHeight int) int {
	n := s.normalized()
	if canvasWidth <= 0 || canvasHeight <= 0 {
		return 0
	}
	rows := (canvasHeight + n.Zoom - 1) / n.Zoom
	return rows * n.RowWidth * n.Stride
}

// normalized raises the divisors to 1 so the mapper stays total.
func (s Settings) normalized() Settings {
	if s.Zoom < 1 {
		s.Zoom = 1
	}
	if s.RowWidth < 1 {
		s.RowWidth = 1
	}
	if s.Stride < 1 {
		s.Stride = 1
	}
	return s
}

// Clamp restores the invariants and keeps the scan offset inside the buffer.
func (s *Settings) Clamp() {
	*s = s.normalized()
	if s.Zoom > MaxZoom {
		s.Zoom = MaxZoom
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
	if s.OffsetFine < 0 {
		s.OffsetFine = 0
	}
	if s.BufferLength > 0 && s.Offset >= s.BufferLength {
		s.Offset = s.BufferLength - 1
	}
	if !s.Scheme.Valid() {
		s.Scheme = DefaultScheme
	}
}

// ZoomBy changes the zoom by delta, keeping it within [1, MaxZoom].
func (s *Settings) ZoomBy(delta int) {
	s.Zoom += delta
	s.Clamp()
}

// ScrollBytes moves the coarse offset by n bytes.
func (s *Settings) ScrollBytes(n int) {
	s.Offset += n
	s.Clamp()
}

// ScrollRows moves the coarse offset by whole logical rows.
func (s *Settings) ScrollRows(rows int) {
	s.ScrollBytes(rows * s.BytesPerRow())
}

// NudgeFine moves the fine offset by n bytes.
func (s *Settings) NudgeFine(n int) {
	s.OffsetFine += n
	s.Clamp()
}

func (s *Settings) SetRowWidth(w int) {
	s.RowWidth = w
	s.Clamp()
}

func (s *Settings) SetStride(stride int) {
	s.Stride = stride
	s.Clamp()
}

// CycleScheme steps forward (dir > 0) or backward through the schemes.
func (s *Settings) CycleScheme(dir int) {
	if dir >= 0 {
		s.Scheme = s.Scheme.Next()
	} else {
		s.Scheme = s.Scheme.Prev()
	}
}

// Progress is the scan offset as a fraction of the buffer, in [0, 1].
func (s Settings) Progress() float64 {
	if s.BufferLength <= 0 {
		return 0
	}
	p := float64(s.BaseOffset()) / float64(s.BufferLength)
	if p > 1 {
		return 1
	}
	return p
}
