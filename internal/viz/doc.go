// Package viz is the terminal presenter for bytelens.
//
// The byte canvas is drawn with upper half blocks: each terminal cell shows
// two vertically stacked pixels, the top one as the foreground color and the
// bottom one as the background. A side panel lists the view settings, the
// position in the file and the entropy profile.
//
// # Key Bindings
//
//	= or + / -  zoom in / out
//	j / k      scroll one row (also arrows and mouse wheel)
//	J / K      scroll one page (also PgDn / PgUp)
//	l / h      fine offset +1 / -1
//	] / [      row width +1 / -1
//	} / {      row width x2 / /2
//	s / d      stride +1 / -1
//	c / C      next / previous scheme
//	w          detect row width
//	r          reset view
//	t          cycle theme
//	p          toggle panel
//	?          help
//	q, Esc     quit
package viz
