package session

import (
	"github.com/rs/zerolog/log"

	"github.com/san-kum/bytelens/internal/analysis"
	"github.com/san-kum/bytelens/internal/source"
	"github.com/san-kum/bytelens/internal/view"
)

// autoWidthWindow is how many bytes from the current offset AutoWidth inspects.
const autoWidthWindow = 1 << 16

// Session is the state one presenter owns: the loaded file, the mutable view
// settings and the canvas they are drawn into. It is not safe for concurrent use;
// the presenter's event loop is its only caller.
type Session struct {
	File     *source.File
	Settings view.Settings
	Canvas   *view.Canvas
	Workers  int

	initial view.Settings
	dirty   bool
	frames  int
}

func New(file *source.File, settings view.Settings, width, height, workers int) (*Session, error) {
	canvas, err := view.NewCanvas(width, height)
	if err != nil {
		return nil, err
	}
	settings.BufferLength = file.Len()
	settings.CanvasWidth = width
	settings.Clamp()
	return &Session{
		File:     file,
		Settings: settings,
		Canvas:   canvas,
		Workers:  workers,
		initial:  settings,
		dirty:    true,
	}, nil
}

// Apply performs a, returning true when the presenter should exit.
func (s *Session) Apply(a Action) bool {
	st := &s.Settings
	switch a {
	case ActionNone:
		return false
	case Quit:
		return true
	case ZoomIn:
		st.ZoomBy(1)
	case ZoomOut:
		st.ZoomBy(-1)
	case ScrollDown:
		st.ScrollRows(1)
	case ScrollUp:
		st.ScrollRows(-1)
	case PageDown:
		st.ScrollRows(s.pageRows())
	case PageUp:
		st.ScrollRows(-s.pageRows())
	case FineForward:
		st.NudgeFine(1)
	case FineBack:
		st.NudgeFine(-1)
	case WidenRow:
		st.SetRowWidth(st.RowWidth + 1)
	case NarrowRow:
		st.SetRowWidth(st.RowWidth - 1)
	case DoubleWidth:
		st.SetRowWidth(st.RowWidth * 2)
	case HalveWidth:
		st.SetRowWidth(st.RowWidth / 2)
	case StrideUp:
		st.SetStride(st.Stride + 1)
	case StrideDown:
		st.SetStride(st.Stride - 1)
	case NextScheme:
		st.CycleScheme(1)
	case PrevScheme:
		st.CycleScheme(-1)
	case AutoWidth:
		s.autoWidth()
	case Reset:
		*st = s.initial
		st.CanvasWidth = s.Canvas.Width
	}
	log.Trace().Str("action", a.String()).Msg("view changed")
	s.dirty = true
	return false
}

// SetSettings replaces the settings wholesale, as the control panel does after a drag.
func (s *Session) SetSettings(v view.Settings) {
	v.BufferLength = s.File.Len()
	v.CanvasWidth = s.Canvas.Width
	v.Clamp()
	if v != s.Settings {
		s.Settings = v
		s.dirty = true
	}
}

// Resize changes the canvas between frames.
func (s *Session) Resize(width, height int) error {
	if width == s.Canvas.Width && height == s.Canvas.Height {
		return nil
	}
	if err := s.Canvas.Resize(width, height); err != nil {
		return err
	}
	s.Settings.CanvasWidth = width
	s.dirty = true
	log.Debug().Int("width", width).Int("height", height).Msg("canvas resized")
	return nil
}

// Redraw renders the frame if anything changed since the last call and
// reports whether it did.
func (s *Session) Redraw() bool {
	if !s.dirty {
		return false
	}
	s.Canvas.Render(s.File.Data, s.Settings, s.Workers)
	s.dirty = false
	s.frames++
	return true
}

// Invalidate forces the next Redraw to render.
func (s *Session) Invalidate() { s.dirty = true }

// Frames counts rendered frames.
func (s *Session) Frames() int { return s.frames }

func (s *Session) pageRows() int {
	z := s.Settings.Zoom
	if z < 1 {
		z = 1
	}
	rows := s.Canvas.Height / z
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (s *Session) autoWidth() {
	start := s.Settings.BaseOffset()
	if start >= s.File.Len() {
		return
	}
	end := start + autoWidthWindow
	if end > s.File.Len() {
		end = s.File.Len()
	}
	w := analysis.DetectPeriod(s.File.Data[start:end], analysis.PeriodOptions{})
	if w == 0 {
		log.Debug().Int("offset", start).Msg("no row width detected")
		return
	}
	log.Debug().Int("width", w).Msg("row width detected")
	s.Settings.SetRowWidth(w)
}
