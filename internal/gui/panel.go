package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/bytelens/internal/scheme"
	"github.com/san-kum/bytelens/internal/view"
)

const (
	panelWidth   = 280
	panelPadding = 16
	sliderHeight = 14
	rowHeight    = 44
	schemeRow    = 22
	fontSize     = 14
)

// slider is one immediate-mode control bound to a settings field.
type slider struct {
	label string
	min   func(view.Settings) int
	max   func(view.Settings) int
	get   func(view.Settings) int
	set   func(*view.Settings, int)
}

func constant(v int) func(view.Settings) int {
	return func(view.Settings) int { return v }
}

var sliders = []slider{
	{
		label: "zoom",
		min:   constant(1),
		max:   constant(view.MaxZoom),
		get:   func(s view.Settings) int { return s.Zoom },
		set:   func(s *view.Settings, v int) { s.Zoom = v },
	},
	{
		label: "width",
		min:   constant(1),
		max:   constant(4096),
		get:   func(s view.Settings) int { return s.RowWidth },
		set:   func(s *view.Settings, v int) { s.RowWidth = v },
	},
	{
		label: "offset",
		min:   constant(0),
		max:   func(s view.Settings) int { return max(s.BufferLength-1, 0) },
		get:   func(s view.Settings) int { return s.Offset },
		set:   func(s *view.Settings, v int) { s.Offset = v },
	},
	{
		label: "fine offset",
		min:   constant(0),
		max:   func(s view.Settings) int { return s.BytesPerRow() },
		get:   func(s view.Settings) int { return s.OffsetFine },
		set:   func(s *view.Settings, v int) { s.OffsetFine = v },
	},
	{
		label: "stride",
		min:   constant(1),
		max:   constant(64),
		get:   func(s view.Settings) int { return s.Stride },
		set:   func(s *view.Settings, v int) { s.Stride = v },
	},
}

// sliderValue maps a mouse x position over a track to a value in [lo, hi].
func sliderValue(mouseX, trackX, trackW float32, lo, hi int) int {
	if trackW <= 0 || hi <= lo {
		return lo
	}
	t := (mouseX - trackX) / trackW
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lo + int(t*float32(hi-lo)+0.5)
}

// sliderFraction is the filled share of a track for value v.
func sliderFraction(v, lo, hi int) float32 {
	if hi <= lo {
		return 0
	}
	f := float32(v-lo) / float32(hi-lo)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// panel holds the drag state between frames.
type panel struct {
	x      int32
	active int
}

func newPanel() *panel {
	return &panel{active: -1}
}

func (p *panel) trackRect(i int) rl.Rectangle {
	y := float32(panelPadding + 40 + i*rowHeight + 20)
	return rl.NewRectangle(float32(p.x+panelPadding), y, panelWidth-2*panelPadding, sliderHeight)
}

func (p *panel) schemeRect(i int) rl.Rectangle {
	y := float32(panelPadding + 40 + len(sliders)*rowHeight + 24 + i*schemeRow)
	return rl.NewRectangle(float32(p.x+panelPadding), y, panelWidth-2*panelPadding, schemeRow)
}

// update applies mouse input to s and reports whether anything changed.
func (p *panel) update(s *view.Settings) bool {
	mouse := rl.GetMousePosition()
	down := rl.IsMouseButtonDown(rl.MouseLeftButton)
	if !down {
		p.active = -1
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		for i := range sliders {
			if rl.CheckCollisionPointRec(mouse, p.trackRect(i)) {
				p.active = i
			}
		}
		for i, sc := range scheme.All() {
			if rl.CheckCollisionPointRec(mouse, p.schemeRect(i)) && s.Scheme != sc {
				s.Scheme = sc
				return true
			}
		}
	}

	if p.active < 0 {
		return false
	}
	sl := sliders[p.active]
	r := p.trackRect(p.active)
	v := sliderValue(mouse.X, r.X, r.Width, sl.min(*s), sl.max(*s))
	if v == sl.get(*s) {
		return false
	}
	sl.set(s, v)
	return true
}

func (p *panel) draw(s view.Settings, status []string) {
	rl.DrawRectangle(p.x, 0, panelWidth, int32(rl.GetScreenHeight()), ColPanel)
	rl.DrawLine(p.x, 0, p.x, int32(rl.GetScreenHeight()), ColGrid)

	x := p.x + panelPadding
	rl.DrawText("bytelens", x, panelPadding, 24, ColSelect)

	for i, sl := range sliders {
		r := p.trackRect(i)
		v := sl.get(s)
		label := fmt.Sprintf("%-12s %d", sl.label, v)
		col := ColText
		if i == p.active {
			col = ColSelect
		}
		rl.DrawText(label, x, int32(r.Y)-18, fontSize, col)
		rl.DrawRectangleRec(r, ColGrid)
		filled := r
		filled.Width = r.Width * sliderFraction(v, sl.min(s), sl.max(s))
		rl.DrawRectangleRec(filled, ColAccent)
	}

	for i, sc := range scheme.All() {
		r := p.schemeRect(i)
		if sc == s.Scheme {
			rl.DrawRectangleRec(r, ColGrid)
			rl.DrawText("> "+sc.String(), int32(r.X)+4, int32(r.Y)+4, fontSize, ColSelect)
			continue
		}
		rl.DrawText("  "+sc.String(), int32(r.X)+4, int32(r.Y)+4, fontSize, ColText)
	}

	y := int32(p.schemeRect(len(scheme.All())).Y) + 16
	for _, line := range status {
		rl.DrawText(line, x, y, fontSize, ColTextDim)
		y += 20
	}
}
