package view

import "github.com/san-kum/bytelens/internal/scheme"

// minRowsPerWorker keeps tiny canvases on a single goroutine.
const minRowsPerWorker = 32

// PixelAt computes the color of linear pixel index i on a canvas of the given width.
// It is total: degenerate settings or indices yield the transparent sentinel.
func PixelAt(buf []byte, s Settings, width, i int) scheme.RGBA {
	if width <= 0 || i < 0 {
		return scheme.Transparent
	}
	return pixel(buf, s.normalized(), width, i)
}

// pixel expects normalized settings and width > 0.
func pixel(buf []byte, s Settings, width, i int) scheme.RGBA {
	x := (i % width) / s.Zoom
	y := (i / width) / s.Zoom

	// Strictly greater: column x == RowWidth is still drawn, one past the
	// configured width. Changing this moves the right edge of every frame.
	if x > s.RowWidth {
		return scheme.Transparent
	}

	index, ok := byteIndex(s, x, y, len(buf))
	if !ok {
		return scheme.Transparent
	}
	return s.Scheme.Map(buf[index])
}

// byteIndex computes Offset+OffsetFine+(y*RowWidth+x)*Stride, reporting false
// when the true value lies outside [0, n). No intermediate step can overflow.
func byteIndex(s Settings, x, y, n int) (int, bool) {
	base := s.Offset + s.OffsetFine
	if s.Offset < 0 || s.OffsetFine < 0 || base < 0 || base >= n {
		return 0, false
	}
	// highest cell whose first byte is still inside the buffer
	last := (n - 1 - base) / s.Stride
	if y > 0 && s.RowWidth > last/y {
		return 0, false
	}
	cell := y*s.RowWidth + x
	if cell > last {
		return 0, false
	}
	return base + cell*s.Stride, true
}

// Draw fills every 4-byte pixel of frame. The frame height is len(frame)/(4*width);
// a trailing partial row is filled as well.
func Draw(frame, buf []byte, s Settings, width int) {
	if width <= 0 {
		return
	}
	drawRange(frame, buf, s.normalized(), width, 0, len(frame)/4)
}

// DrawParallel produces the same frame as Draw using up to workers goroutines,
// each owning a band of whole rows.
func DrawParallel(frame, buf []byte, s Settings, width, workers int) {
	if width <= 0 {
		return
	}
	n := len(frame) / 4
	rows := (n + width - 1) / width
	ns := s.normalized()
	ParallelFor(rows, workers, minRowsPerWorker, func(start, end int) {
		last := end * width
		if last > n {
			last = n
		}
		drawRange(frame, buf, ns, width, start*width, last)
	})
}

func drawRange(frame, buf []byte, s Settings, width, from, to int) {
	for i := from; i < to; i++ {
		c := pixel(buf, s, width, i)
		o := i * 4
		frame[o] = c[0]
		frame[o+1] = c[1]
		frame[o+2] = c[2]
		frame[o+3] = c[3]
	}
}
