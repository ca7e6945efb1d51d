package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/bytelens/internal/scheme"
	"github.com/san-kum/bytelens/internal/view"
)

const halfBlock = "▀"

// cell is one terminal character: two stacked pixels.
type cell struct {
	top, bottom lipgloss.Color
}

// RenderHalfBlocks draws the canvas as ceil(Height/2) lines of Width cells.
// Runs of identical cells share one styled span. Transparent pixels take the
// empty color.
func RenderHalfBlocks(c *view.Canvas, empty lipgloss.Color) string {
	var b strings.Builder
	for y := 0; y < c.Height; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		run, n := cell{}, 0
		for x := 0; x < c.Width; x++ {
			cur := cell{
				top:    pixelColor(c.At(x, y), empty),
				bottom: pixelColor(c.At(x, y+1), empty),
			}
			if n > 0 && cur != run {
				b.WriteString(renderRun(run, n))
				n = 0
			}
			run = cur
			n++
		}
		if n > 0 {
			b.WriteString(renderRun(run, n))
		}
	}
	return b.String()
}

func renderRun(c cell, n int) string {
	return lipgloss.NewStyle().
		Foreground(c.top).
		Background(c.bottom).
		Render(strings.Repeat(halfBlock, n))
}

// pixelColor converts a canvas pixel to a terminal color. Alpha is either 0 or 255.
func pixelColor(p scheme.RGBA, empty lipgloss.Color) lipgloss.Color {
	if p[3] == 0 {
		return empty
	}
	return lipgloss.Color(hexColor(p))
}

func hexColor(p scheme.RGBA) string {
	return colorful.Color{
		R: float64(p[0]) / 255,
		G: float64(p[1]) / 255,
		B: float64(p[2]) / 255,
	}.Hex()
}
