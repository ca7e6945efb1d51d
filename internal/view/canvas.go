package view

import (
	"fmt"
	"image"

	"github.com/san-kum/bytelens/internal/scheme"
)

// Canvas is a caller-owned RGBA pixel buffer, 4 bytes per pixel, row-major.
type Canvas struct {
	Width, Height int
	Pix           []byte
}

func NewCanvas(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrCanvasSize, w, h)
	}
	return &Canvas{
		Width:  w,
		Height: h,
		Pix:    make([]byte, w*h*4),
	}, nil
}

// Resize changes the dimensions, reusing the backing array when it is large enough.
func (c *Canvas) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrCanvasSize, w, h)
	}
	need := w * h * 4
	if cap(c.Pix) >= need {
		c.Pix = c.Pix[:need]
	} else {
		c.Pix = make([]byte, need)
	}
	c.Width, c.Height = w, h
	return nil
}

// At returns the pixel at (x, y), or transparent outside the canvas.
func (c *Canvas) At(x, y int) scheme.RGBA {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return scheme.Transparent
	}
	o := (y*c.Width + x) * 4
	return scheme.RGBA{c.Pix[o], c.Pix[o+1], c.Pix[o+2], c.Pix[o+3]}
}

// Render draws buf into the canvas. Rows are fanned out over goroutines unless
// workers is 1; workers <= 0 uses one per CPU.
func (c *Canvas) Render(buf []byte, s Settings, workers int) {
	if fansOut(workers) {
		DrawParallel(c.Pix, buf, s, c.Width, workers)
		return
	}
	Draw(c.Pix, buf, s, c.Width)
}

// Image wraps the pixels as a non-premultiplied image without copying.
// Transparent pixels are (0,0,0,0), which is valid in either alpha model.
func (c *Canvas) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    c.Pix,
		Stride: c.Width * 4,
		Rect:   image.Rect(0, 0, c.Width, c.Height),
	}
}

func fansOut(workers int) bool {
	return workers != 1
}
