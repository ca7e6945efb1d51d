// Package scheme maps single byte values to RGBA colors.
//
// Every scheme is a pure function of the byte:
//
//   - [Grayscale]: (b, b, b, 255)
//   - [Colorful]: (b, 2b mod 256, 4b mod 256, 255)
//   - [Category]: one fixed color per byte class (null, graphic, whitespace, ascii, high)
//   - [Magma], [Plasma], [Viridis], [Rainbow]: perceptual gradients sampled at b/255
//
// Schemes form a closed enumeration dispatched by [Scheme.Map]; there is no
// per-pixel allocation or indirect call.
package scheme
