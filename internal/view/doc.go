// Package view turns a byte buffer into a pixel canvas.
//
// The mapping is a pure function of the buffer, a [Settings] record and the
// canvas width. For a linear pixel index i on a canvas of width W:
//
//	x := (i % W) / zoom
//	y := (i / W) / zoom
//	index := offset + offsetFine + (y*rowWidth + x) * stride
//
// Pixels past the configured row width or past the end of the buffer are
// fully transparent. Nothing in this package allocates per pixel, mutates
// the buffer or mutates the settings.
//
// # Thread Safety
//
// [Draw] runs on the calling goroutine. [DrawParallel] splits the frame into
// row bands; workers only read the buffer and settings and write disjoint
// parts of the frame.
package view
